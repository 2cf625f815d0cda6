package service

import (
	"context"
	"fmt"
	"strings"

	"foodatlas/internal/match"
	"foodatlas/internal/model"
)

// Summarizer turns a ranked result into user-facing reply text. The
// generative implementation lives outside this service; it receives the
// ranked list unmodified and must treat NoMatch as its trigger for a
// generic response.
type Summarizer interface {
	Summarize(ctx context.Context, req *model.RecommendRequest, result *match.Result) (string, error)
}

// TextSummarizer is the deterministic plain-text fallback renderer.
type TextSummarizer struct{}

// Summarize formats the top candidates as a short readable list.
func (TextSummarizer) Summarize(_ context.Context, req *model.RecommendRequest, result *match.Result) (string, error) {
	if result.NoMatch {
		if model.HasCriterion(req.Cuisine) {
			return fmt.Sprintf("No restaurants matching %q were found near %q. Try another area or dish.",
				req.Cuisine, req.Location), nil
		}
		return "No restaurants were found for that search. Try another area.", nil
	}

	var b strings.Builder
	b.WriteString("Here are a few suggestions:\n\n")
	for _, c := range result.Candidates {
		fmt.Fprintf(&b, "%d. %s\n", c.Rank, c.Name)
		if c.Address != "" {
			fmt.Fprintf(&b, "   Address: %s\n", c.Address)
		}
		if c.OpeningHours != "" {
			fmt.Fprintf(&b, "   Hours: %s\n", c.OpeningHours)
		}
		if c.DistanceKm != nil && *c.DistanceKm != match.SentinelDistanceKm {
			fmt.Fprintf(&b, "   Distance: %.2f km\n", *c.DistanceKm)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
