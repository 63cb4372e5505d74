package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// BestMatchIndex returns the key that best matches the query, preferring
// exact, then prefix, then substring, then fuzzy rank. Used by jump-to
// searches where a loose query should still land somewhere sensible.
// Returns -1 only when keys is empty.
func BestMatchIndex(keys []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(keys) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, k := range keys {
		if strings.EqualFold(k, trimmed) {
			return i
		}
	}
	for i, k := range keys {
		if strings.HasPrefix(strings.ToLower(k), lower) {
			return i
		}
	}
	for i, k := range keys {
		if strings.Contains(strings.ToLower(k), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, keys)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(keys) {
		return 0
	}
	return best.OriginalIndex
}
