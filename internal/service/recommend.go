package service

import (
	"context"
	"log"
	"time"

	"foodatlas/internal/match"
	"foodatlas/internal/model"
)

// RestaurantGetter is the lookup slice of the repository the service needs
// beyond what the pipeline's store interface covers.
type RestaurantGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Restaurant, error)
}

// RecommendService handles recommendation business logic: resolve the
// location, run the matching pipeline, render the reply.
type RecommendService struct {
	pipeline   *match.Pipeline
	geocoder   Geocoder
	summarizer Summarizer
	getter     RestaurantGetter
}

// NewRecommendService creates a new recommendation service.
func NewRecommendService(
	pipeline *match.Pipeline,
	geocoder Geocoder,
	summarizer Summarizer,
	getter RestaurantGetter,
) *RecommendService {
	return &RecommendService{
		pipeline:   pipeline,
		geocoder:   geocoder,
		summarizer: summarizer,
		getter:     getter,
	}
}

// Recommend performs a complete recommendation request.
func (s *RecommendService) Recommend(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error) {
	startTime := time.Now()

	criteria := match.Criteria{
		Location: req.Location,
		Cuisine:  req.Cuisine,
		Category: req.Category,
		Budget:   req.Budget,
		TopN:     req.TopN,
	}

	resolved := false
	if model.HasCriterion(req.Location) {
		if coord, ok := s.geocoder.Resolve(ctx, req.Location); ok {
			criteria.Coordinate = &coord
			resolved = true
		} else {
			log.Printf("location %q did not resolve, searching without geofilter", req.Location)
		}
	}

	result, err := s.pipeline.FindCandidates(ctx, criteria, time.Now())
	if err != nil {
		return nil, err
	}

	reply, err := s.summarizer.Summarize(ctx, req, result)
	if err != nil {
		return nil, err
	}

	return &model.RecommendResponse{
		Reply:    reply,
		Results:  result.Candidates,
		Total:    len(result.Candidates),
		NoMatch:  result.NoMatch,
		Location: req.Location,
		Resolved: resolved,
		Took:     time.Since(startTime).Milliseconds(),
	}, nil
}

// GetRestaurant retrieves a single restaurant by ID.
func (s *RecommendService) GetRestaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	return s.getter.GetByID(ctx, id)
}
