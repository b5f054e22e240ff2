package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencart/internal/catalog"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.NewIndex(nil, time.Hour))
}

func TestEvaluateOrganicMilk(t *testing.T) {
	engine := newTestEngine()

	eval := engine.Evaluate("Bio Melk")

	require.NotNil(t, eval.Matched)
	assert.Equal(t, "organic_milk", eval.Matched.ID)
	assert.Equal(t, 5, eval.Matched.Rank)
	assert.Equal(t, 4, eval.BaseScore)

	// base -1, organic +5, methane -2, legacy local +3, keyword bio +2
	assert.Equal(t, 10, eval.Score)
	assert.Equal(t, 10.0, eval.RawScore)
	assert.Contains(t, eval.Keywords, "keyword_bio")
	assert.Contains(t, eval.Rating, "Excellent")

	codes := make([]string, 0, len(eval.Adjustments))
	for _, adj := range eval.Adjustments {
		codes = append(codes, adj.Code)
	}
	assert.Equal(t, []string{
		"catalog_base",
		"category_organic",
		"trait_high_methane",
		"category_local",
		"keyword_bio",
	}, codes)
}

func TestEvaluateBeef(t *testing.T) {
	engine := newTestEngine()

	eval := engine.Evaluate("rundvlees")

	require.NotNil(t, eval.Matched)
	assert.Equal(t, "beef_steak", eval.Matched.ID)

	// base +1, meat -3, methane -2, emissions -2, keyword meat -3
	assert.Equal(t, 0, eval.Score)
	assert.Equal(t, 0.0, eval.RawScore)
	assert.Contains(t, eval.Rating, "Needs work")

	// entry suggestions override the generic keyword tips
	require.NotEmpty(t, eval.Suggestions)
	assert.Contains(t, eval.Suggestions[0], "Beter Leven")
}

func TestEvaluateUnknownProduct(t *testing.T) {
	engine := newTestEngine()

	eval := engine.Evaluate("xyzzy frobnicator")

	assert.Nil(t, eval.Matched)
	assert.Equal(t, 5, eval.BaseScore)
	assert.Equal(t, 5, eval.Score)
	assert.Empty(t, eval.Adjustments)
	assert.Empty(t, eval.Categories)
	assert.Contains(t, eval.Rating, "Average")
}

func TestEvaluateExactMatchWins(t *testing.T) {
	engine := newTestEngine()

	// "havermelk" contains "melk", but the exact oat milk name must win
	// over cow milk's substring hit.
	eval := engine.Evaluate("havermelk")

	require.NotNil(t, eval.Matched)
	assert.Equal(t, "oat_milk", eval.Matched.ID)
	assert.Equal(t, "havermelk", eval.Matched.MatchedName)
	assert.Equal(t, 5, eval.Matched.Rank)
}

func TestEvaluateCategoryDedup(t *testing.T) {
	engine := newTestEngine()

	// organic comes from both the catalogue entry and the legacy table.
	eval := engine.Evaluate("bio melk")

	count := 0
	for _, cat := range eval.Categories {
		if cat.Category == "organic" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestEvaluateScoreBounds(t *testing.T) {
	engine := newTestEngine()

	names := []string{
		"bio melk", "rundvlees", "kip", "tofu", "bananen fair trade",
		"plastic verpakte kip", "biologische lokale plant tofu",
		"appels", "", "!!!",
	}
	for _, name := range names {
		eval := engine.Evaluate(name)
		assert.GreaterOrEqual(t, eval.Score, 0, "score for %q", name)
		assert.LessOrEqual(t, eval.Score, 10, "score for %q", name)
		assert.GreaterOrEqual(t, eval.RawScore, 0.0, "raw score for %q", name)
		assert.LessOrEqual(t, eval.RawScore, 10.0, "raw score for %q", name)
	}
}

func TestRatingTiers(t *testing.T) {
	assert.Contains(t, Rating(8), "Excellent")
	assert.Contains(t, Rating(7.9), "Good")
	assert.Contains(t, Rating(6), "Good")
	assert.Contains(t, Rating(5), "Average")
	assert.Contains(t, Rating(4), "Average")
	assert.Contains(t, Rating(3.9), "Needs work")
	assert.Contains(t, Rating(0), "Needs work")
}
