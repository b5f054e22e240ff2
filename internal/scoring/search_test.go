package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greencart/internal/catalog"
)

func TestSearchExactFirst(t *testing.T) {
	engine := newTestEngine()

	results := engine.Search("melk")

	require.NotEmpty(t, results)
	assert.Equal(t, "cow_milk", results[0].ID)
	assert.Equal(t, 5, results[0].Rank)
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i].Rank, results[i-1].Rank)
	}
}

func TestSearchCapsAtTen(t *testing.T) {
	engine := newTestEngine()

	results := engine.Search("a")

	assert.Len(t, results, 10)
}

func TestSearchDedupesEntries(t *testing.T) {
	engine := newTestEngine()

	// cow_milk has several names containing "melk"; it must appear once.
	results := engine.Search("melk")

	seen := map[string]int{}
	for _, res := range results {
		seen[res.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "duplicate result for %s", id)
	}
}

func TestSearchNoResults(t *testing.T) {
	engine := newTestEngine()

	assert.Empty(t, engine.Search("zzzqqq"))
	assert.Empty(t, engine.Search(""))
	assert.Empty(t, engine.Search("   "))
}

func TestSearchCategoriesNeverNil(t *testing.T) {
	engine := newTestEngine()

	for _, res := range engine.Search("melk") {
		assert.NotNil(t, res.Categories)
	}
}

func TestSearchUsesCurrentSnapshot(t *testing.T) {
	idx := catalog.NewIndex(nil, time.Hour)
	engine := NewEngine(idx)

	// nil provider keeps the bundled catalogue; the search must see it
	results := engine.Search("tofu")
	require.NotEmpty(t, results)
	assert.Equal(t, "tofu", results[0].ID)
}
