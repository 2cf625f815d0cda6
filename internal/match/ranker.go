package match

import (
	"sort"

	"foodatlas/internal/model"
)

// SentinelDistanceKm stands in for a distance that could not be computed,
// so broken-coordinate candidates sort after everything that resolved.
const SentinelDistanceKm = 9999.0

// Ranker orders surviving candidates and truncates to the caller's topN.
type Ranker struct{}

// NewRanker creates a ranker.
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank sorts candidates by (fewest warnings, highest rating, shortest
// distance) and cuts to topN. The sort is stable so remaining ties keep
// retrieval order, which keeps output deterministic. Rank positions are
// assigned starting at 1.
func (r *Ranker) Rank(candidates []model.RankedCandidate, topN int) []model.RankedCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].Warnings) != len(candidates[j].Warnings) {
			return len(candidates[i].Warnings) < len(candidates[j].Warnings)
		}
		if candidates[i].RatingValue != candidates[j].RatingValue {
			return candidates[i].RatingValue > candidates[j].RatingValue
		}
		return sortDistance(candidates[i]) < sortDistance(candidates[j])
	})

	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	for i := range candidates {
		candidates[i].Rank = i + 1
	}
	return candidates
}

func sortDistance(c model.RankedCandidate) float64 {
	if c.DistanceKm == nil {
		return SentinelDistanceKm
	}
	return *c.DistanceKm
}
