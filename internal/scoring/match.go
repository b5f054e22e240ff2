package scoring

import (
	"strings"

	"greencart/internal"
	"greencart/internal/util"
)

// Match is the best catalogue hit for a query. A nil Match is the normal
// "nothing matched" outcome, not an error.
type Match struct {
	Entry           internal.IndexedEntry
	MatchedName     string
	Rank            int
	NormalizedQuery string
}

// FindBestMatch scans every candidate name of every entry and keeps the
// highest rank seen. Ties go to the first entry in collection order. The
// catalogue is small (hundreds of entries), so the nested scan is fine and
// no inverted index is kept.
func FindBestMatch(query string, entries []internal.IndexedEntry) *Match {
	normalized := util.Normalize(query)
	if normalized == "" {
		return nil
	}

	var best *Match
	bestRank := 0
	for i := range entries {
		entry := entries[i]
		for _, candidate := range entry.NormalizedNames {
			if candidate == "" {
				continue
			}
			rank := rankMatch(candidate, normalized)
			if rank > bestRank {
				bestRank = rank
				best = &Match{
					Entry:           entry,
					MatchedName:     candidate,
					Rank:            rank,
					NormalizedQuery: normalized,
				}
			}
		}
	}
	return best
}

// rankMatch grades how strongly a normalized candidate name relates to a
// normalized query:
//
//	5 exact, 4 prefix either way, 3 substring either way,
//	2 all tokens of a multi-token query contained, 1 any token contained.
func rankMatch(candidate, query string) int {
	if candidate == query {
		return 5
	}
	if strings.HasPrefix(candidate, query) || strings.HasPrefix(query, candidate) {
		return 4
	}
	if strings.Contains(candidate, query) || strings.Contains(query, candidate) {
		return 3
	}

	tokens := util.Tokenize(query)
	if len(tokens) > 1 {
		all := true
		for _, token := range tokens {
			if !strings.Contains(candidate, token) {
				all = false
				break
			}
		}
		if all {
			return 2
		}
	}
	for _, token := range tokens {
		if strings.Contains(candidate, token) {
			return 1
		}
	}
	return 0
}
