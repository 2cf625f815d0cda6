package match

import (
	"strings"

	"foodatlas/internal/model"
)

// MatchesCuisine is the hard filter: when a cuisine criterion is set, the
// restaurant name must contain it, case-insensitively. Matching is literal
// byte substring with no diacritic folding, so "pho" will not match "Phở";
// that mirrors the source data entry conventions and is deliberate.
func MatchesCuisine(cuisine, name string) bool {
	if !model.HasCriterion(cuisine) {
		return true
	}
	return containsFold(name, cuisine)
}

// MatchesTag is the soft counterpart for the category/tag criterion: a miss
// produces a TAG_NOT_FOUND warning rather than excluding the candidate
// (unless the pipeline runs in strict-tags mode).
func MatchesTag(category, tags string) bool {
	if !model.HasCriterion(category) {
		return true
	}
	return containsFold(tags, category)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(
		strings.ToLower(haystack),
		strings.ToLower(strings.TrimSpace(needle)),
	)
}
