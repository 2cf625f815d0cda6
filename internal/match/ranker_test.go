package match

import (
	"testing"

	"foodatlas/internal/model"
)

func cand(name string, warnings int, rating float64, distanceKm *float64) model.RankedCandidate {
	c := model.RankedCandidate{
		Restaurant:  model.Restaurant{Name: name},
		RatingValue: rating,
		DistanceKm:  distanceKm,
	}
	for i := 0; i < warnings; i++ {
		c.Warnings = append(c.Warnings, model.WarnClosedNow)
	}
	return c
}

func km(v float64) *float64 { return &v }

func assertOrder(t *testing.T, got []model.RankedCandidate, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, got[i].Name, name)
		}
		if got[i].Rank != i+1 {
			t.Errorf("position %d: rank = %d, want %d", i, got[i].Rank, i+1)
		}
	}
}

func TestRank_WarningsBeatRating(t *testing.T) {
	in := []model.RankedCandidate{
		cand("one warning", 1, 3.0, nil),
		cand("clean four", 0, 4.0, nil),
		cand("clean five", 0, 5.0, nil),
	}

	got := NewRanker().Rank(in, 0)
	assertOrder(t, got, []string{"clean five", "clean four", "one warning"})
}

func TestRank_DistanceBreaksRatingTie(t *testing.T) {
	in := []model.RankedCandidate{
		cand("far", 0, 4.5, km(5.0)),
		cand("near", 0, 4.5, km(2.0)),
	}

	got := NewRanker().Rank(in, 0)
	assertOrder(t, got, []string{"near", "far"})
}

func TestRank_NilDistanceSortsLast(t *testing.T) {
	in := []model.RankedCandidate{
		cand("unresolved", 0, 4.5, nil),
		cand("resolved", 0, 4.5, km(8.0)),
	}

	got := NewRanker().Rank(in, 0)
	assertOrder(t, got, []string{"resolved", "unresolved"})
}

func TestRank_StableOnFullTie(t *testing.T) {
	in := []model.RankedCandidate{
		cand("retrieved first", 0, 4.0, km(1.0)),
		cand("retrieved second", 0, 4.0, km(1.0)),
	}

	got := NewRanker().Rank(in, 0)
	assertOrder(t, got, []string{"retrieved first", "retrieved second"})
}

func TestRank_Truncation(t *testing.T) {
	in := []model.RankedCandidate{
		cand("a", 0, 5.0, nil),
		cand("b", 0, 4.0, nil),
		cand("c", 0, 3.0, nil),
	}

	got := NewRanker().Rank(in, 2)
	assertOrder(t, got, []string{"a", "b"})
}
