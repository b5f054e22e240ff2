package scoring

import (
	"sort"
	"strings"

	"greencart/internal"
	"greencart/internal/util"
)

const maxSearchResults = 10

// Search lists every catalogue entry matching the partial query, scored via
// its canonical display name. Unlike FindBestMatch it keeps the best rank
// per entry instead of one global best. When nothing in the catalogue
// matches, the legacy table is scanned by substring as a last resort.
func (e *Engine) Search(query string) []internal.SearchResult {
	normalized := util.Normalize(query)
	if normalized == "" {
		return []internal.SearchResult{}
	}

	results := []internal.SearchResult{}
	seen := map[string]struct{}{}
	for _, entry := range e.index.Entries() {
		bestRank := 0
		for _, candidate := range entry.NormalizedNames {
			if candidate == "" {
				continue
			}
			if rank := rankMatch(candidate, normalized); rank > bestRank {
				bestRank = rank
			}
		}
		if bestRank == 0 {
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			continue
		}
		seen[entry.ID] = struct{}{}

		displayName := entry.Names[0]
		results = append(results, internal.SearchResult{
			Name:       displayName,
			Score:      e.Evaluate(displayName).Score,
			Categories: orEmpty(entry.Categories),
			Rank:       bestRank,
			ID:         entry.ID,
		})
	}

	if len(results) == 0 {
		for name, product := range legacyProducts {
			if !strings.Contains(util.Normalize(name), normalized) {
				continue
			}
			results = append(results, internal.SearchResult{
				Name:       name,
				Score:      e.Evaluate(name).Score,
				Categories: orEmpty(product.Categories),
				Rank:       1,
				ID:         "legacy-" + name,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Rank != results[j].Rank {
			return results[i].Rank > results[j].Rank
		}
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Name < results[j].Name
	})

	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results
}

func orEmpty(categories []string) []string {
	if categories == nil {
		return []string{}
	}
	return categories
}
