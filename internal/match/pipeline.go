package match

import (
	"context"
	"math"
	"strings"
	"time"

	"foodatlas/internal/geo"
	"foodatlas/internal/model"
)

// Store fetches restaurants, optionally pre-filtered by a bounding box.
// A nil box means the unfiltered set. Implementations must be safe for
// concurrent reads; the pipeline itself holds no state across requests.
type Store interface {
	Query(ctx context.Context, box *geo.BoundingBox) ([]model.Restaurant, error)
}

// Options configures a pipeline. All knobs are explicit so tests can
// inject deterministic values; there is no ambient configuration.
type Options struct {
	// RadiusKm is the default geofilter radius when the request does not
	// carry one.
	RadiusKm float64
	// TopN is the default result cap when the request does not carry one.
	TopN int
	// StrictTags turns the tag criterion into a hard filter. The default
	// soft behavior only warns on a miss.
	StrictTags bool
}

// Criteria is the pipeline input. Coordinate is attached by the caller
// from the geocoder; the pipeline never resolves text locations itself.
type Criteria struct {
	Location   string
	Coordinate *geo.Coordinate
	Cuisine    string
	Category   string
	Budget     string
	RadiusKm   float64
	TopN       int
}

// Result is a ranked candidate list. NoMatch is true when nothing survived
// the hard filters; the caller uses it to switch to a generic fallback
// reply. An empty result is a normal outcome, not an error.
type Result struct {
	Candidates []model.RankedCandidate
	NoMatch    bool
}

// Pipeline turns search criteria into a ranked, annotated candidate list.
type Pipeline struct {
	store  Store
	ranker *Ranker
	opts   Options
}

// NewPipeline creates a pipeline over the given store.
func NewPipeline(store Store, opts Options) *Pipeline {
	if opts.RadiusKm <= 0 {
		opts.RadiusKm = 10
	}
	if opts.TopN <= 0 {
		opts.TopN = 50
	}
	return &Pipeline{store: store, ranker: NewRanker(), opts: opts}
}

// FindCandidates retrieves, filters, annotates and ranks restaurants for
// the given criteria. The instant used for opening-hours checks is injected
// by the caller. A store failure propagates as a hard error; a bad field on
// a single record only degrades that record.
func (p *Pipeline) FindCandidates(ctx context.Context, criteria Criteria, now time.Time) (*Result, error) {
	var box *geo.BoundingBox
	if criteria.Coordinate != nil {
		radius := criteria.RadiusKm
		if radius <= 0 {
			radius = p.opts.RadiusKm
		}
		b := geo.BoxAround(*criteria.Coordinate, radius)
		box = &b
	}

	rows, err := p.store.Query(ctx, box)
	if err != nil {
		return nil, err
	}

	candidates := make([]model.RankedCandidate, 0, len(rows))
	for _, rest := range rows {
		if !MatchesCuisine(criteria.Cuisine, rest.Name) {
			continue
		}

		tagMiss := !MatchesTag(criteria.Category, rest.Tags)
		if tagMiss && p.opts.StrictTags {
			continue
		}

		cand := model.RankedCandidate{Restaurant: rest}

		rating := model.ParseFloatField(rest.Rating, 0.0)
		cand.RatingValue = rating.Value
		cand.RatingDefaulted = rating.Defaulted

		cand.DistanceKm = distanceTo(criteria.Coordinate, rest)

		if !IsOpenAt(rest.OpeningHours, now) {
			cand.Warnings = append(cand.Warnings, model.WarnClosedNow)
		}
		if tagMiss {
			cand.Warnings = append(cand.Warnings, model.WarnTagNotFound)
		}
		if strings.EqualFold(strings.TrimSpace(rest.PriceRange), model.PriceUpdatingSentinel) {
			cand.Warnings = append(cand.Warnings, model.WarnPriceUpdating)
		}

		candidates = append(candidates, cand)
	}

	if len(candidates) == 0 {
		return &Result{Candidates: []model.RankedCandidate{}, NoMatch: true}, nil
	}

	topN := criteria.TopN
	if topN <= 0 {
		topN = p.opts.TopN
	}
	return &Result{Candidates: p.ranker.Rank(candidates, topN)}, nil
}

// distanceTo computes the user-to-restaurant distance, nil without a user
// coordinate and the sentinel when the record's own coordinates are bad.
func distanceTo(user *geo.Coordinate, rest model.Restaurant) *float64 {
	if user == nil {
		return nil
	}
	lat := model.ParseFloatField(rest.Latitude, 0)
	lon := model.ParseFloatField(rest.Longitude, 0)
	if lat.Defaulted || lon.Defaulted {
		d := SentinelDistanceKm
		return &d
	}
	d := roundKm(geo.HaversineKm(*user, geo.Coordinate{Lat: lat.Value, Lon: lon.Value}))
	return &d
}

func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
