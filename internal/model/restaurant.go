package model

// Warning codes attached to candidates by the soft checks
const (
	WarnClosedNow     = "CLOSED_NOW"
	WarnTagNotFound   = "TAG_NOT_FOUND"
	WarnPriceUpdating = "PRICE_UPDATING"
)

// PriceUpdatingSentinel marks a price the upstream crawler has not filled in yet.
const PriceUpdatingSentinel = "updating"

// Restaurant represents one row of the scraped restaurant dataset.
// Latitude, Longitude and Rating stay raw strings: the source data is
// crawler output and any of them can be empty or garbage, so parsing is
// deferred to the pipeline and done defensively per record.
type Restaurant struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Address      string `json:"address" db:"address"`
	Latitude     string `json:"latitude" db:"latitude"`
	Longitude    string `json:"longitude" db:"longitude"`
	Rating       string `json:"rating" db:"rating"`
	OpeningHours string `json:"opening_hours" db:"opening_hours"`
	Tags         string `json:"tags" db:"tags"`
	PriceRange   string `json:"price_range" db:"price_range"`
	ImagePath    string `json:"img,omitempty" db:"img"`
}

// RankedCandidate is a restaurant that survived the hard filters, annotated
// with everything the ranking decided on.
type RankedCandidate struct {
	Restaurant
	// DistanceKm is nil when no user coordinate was resolved. When the
	// record's own coordinates are unparseable it holds the 9999 sentinel
	// so the candidate sorts last instead of aborting the batch.
	DistanceKm      *float64 `json:"distance_km,omitempty"`
	RatingValue     float64  `json:"rating_value"`
	RatingDefaulted bool     `json:"rating_defaulted,omitempty"`
	Warnings        []string `json:"warnings"`
	Rank            int      `json:"rank"`
}
