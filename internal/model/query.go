package model

import "strings"

// CriterionNone is how the upstream intent extractor reports an absent
// field; it is equivalent to leaving the field empty.
const CriterionNone = "none"

// RecommendRequest is a restaurant recommendation query.
type RecommendRequest struct {
	Location string `json:"location,omitempty"`
	Cuisine  string `json:"cuisine,omitempty"`
	Category string `json:"category,omitempty"`
	// Budget is carried through for display only, never filtered on.
	Budget string `json:"budget,omitempty"`
	TopN   int    `json:"top_n,omitempty"`
}

// HasCriterion reports whether a free-text criterion is actually set,
// treating "" and the "none" sentinel as absent.
func HasCriterion(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && !strings.EqualFold(s, CriterionNone)
}

// RecommendResponse is what the recommend endpoint returns.
type RecommendResponse struct {
	Reply    string            `json:"reply"`
	Results  []RankedCandidate `json:"results"`
	Total    int               `json:"total"`
	NoMatch  bool              `json:"no_match"`
	Location string            `json:"location,omitempty"`
	Resolved bool              `json:"resolved"`
	Took     int64             `json:"took_ms"`
}
