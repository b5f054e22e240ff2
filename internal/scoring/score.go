package scoring

import (
	"math"
	"strings"

	"greencart/internal"
	"greencart/internal/catalog"
	"greencart/internal/util"
)

// Engine scores product names against the current catalogue snapshot. It
// never mutates the index; evaluation is deterministic for a given snapshot.
type Engine struct {
	index *catalog.Index
}

func NewEngine(index *catalog.Index) *Engine {
	return &Engine{index: index}
}

// Evaluate composes the sustainability score for a free-text product name:
// catalogue base delta, category deltas, entry adjustments, legacy table
// categories, then keyword rules. The working score accumulates unclamped;
// only the recorded resultingScore per step and the final values clamp to
// [0,10].
func (e *Engine) Evaluate(productName string) internal.Evaluation {
	normalized := util.Normalize(productName)
	lower := strings.ToLower(productName)

	workingScore := 5.0
	adjustments := []internal.ScoreAdjustment{}
	matchedCategories := []internal.MatchedCategory{}
	matchedKeywords := []string{}
	seen := map[string]struct{}{}
	suggestions := Suggestions(productName)
	var notes *string
	var matched *internal.MatchedProduct

	applyCategory := func(category string) {
		if category == "" {
			return
		}
		if _, dup := seen[category]; dup {
			return
		}
		cat, ok := Categories[category]
		if !ok {
			return
		}
		seen[category] = struct{}{}
		matchedCategories = append(matchedCategories, internal.MatchedCategory{
			Category:       category,
			Icon:           cat.Icon,
			ReferenceScore: cat.ReferenceScore,
		})
		delta := float64(cat.ReferenceScore - 5)
		if delta != 0 {
			workingScore += delta
			adjustments = append(adjustments, internal.ScoreAdjustment{
				Type:           "category",
				Code:           "category_" + category,
				Category:       category,
				Delta:          delta,
				ResultingScore: clamp(workingScore),
			})
		}
	}

	applyDelta := func(adjType, code string, delta float64) {
		if delta == 0 {
			return
		}
		workingScore += delta
		adjustments = append(adjustments, internal.ScoreAdjustment{
			Type:           adjType,
			Code:           code,
			Delta:          delta,
			ResultingScore: clamp(workingScore),
		})
	}

	if m := FindBestMatch(productName, e.index.Entries()); m != nil {
		entry := m.Entry
		matched = &internal.MatchedProduct{
			ID:            entry.ID,
			CanonicalName: entry.Names[0],
			MatchedName:   m.MatchedName,
			Rank:          m.Rank,
			BaseScore:     entry.BaseScore,
		}
		if entry.Notes != nil {
			notes = entry.Notes
		}
		if len(entry.Suggestions) > 0 {
			suggestions = entry.Suggestions
		}

		applyDelta("catalog", "catalog_base", float64(entry.BaseScore-5))
		for _, category := range entry.Categories {
			applyCategory(category)
		}
		for _, adj := range entry.Adjustments {
			applyDelta("catalog", adj.Code, adj.Delta)
		}
	}

	// The legacy table contributes independently of the catalogue match;
	// the seen-set keeps shared categories from counting twice.
	product, ok := legacyProducts[normalized]
	if !ok {
		product, ok = legacyProducts[lower]
	}
	if ok {
		for _, category := range product.Categories {
			applyCategory(category)
		}
	}

	for _, rule := range KeywordRules {
		if rule.Match(lower) {
			applyDelta("keyword", rule.Code, rule.Delta)
			matchedKeywords = append(matchedKeywords, rule.Code)
		}
	}

	rawScore := clamp(workingScore)
	finalScore := int(math.Round(rawScore))

	baseScore := 5
	if matched != nil {
		baseScore = matched.BaseScore
	}

	return internal.Evaluation{
		Product:     productName,
		Normalized:  normalized,
		BaseScore:   baseScore,
		RawScore:    rawScore,
		Score:       finalScore,
		Adjustments: adjustments,
		Categories:  matchedCategories,
		Keywords:    matchedKeywords,
		Suggestions: suggestions,
		Rating:      Rating(float64(finalScore)),
		Notes:       notes,
		Matched:     matched,
	}
}

// Score is a shorthand for Evaluate(...).Score.
func (e *Engine) Score(productName string) int {
	return e.Evaluate(productName).Score
}

// Rating maps a score (or an average over purchases) to its display tier.
func Rating(score float64) string {
	switch {
	case score >= 8:
		return "🌟 Excellent! You're making great sustainable choices!"
	case score >= 6:
		return "👍 Good! Room for improvement though."
	case score >= 4:
		return "😐 Average. Consider more sustainable alternatives."
	default:
		return "⚠️ Needs work. Let's find better options!"
	}
}

func clamp(value float64) float64 {
	return math.Max(0, math.Min(10, value))
}
