package places

import (
	"context"
	"net/http"

	"github.com/tripcompass/tripcompass/internal/models"
)

// NearbyQuery describes one page request against a nearby-search provider.
type NearbyQuery struct {
	Center    models.Coordinate // Center of the search circle.
	Radius    uint              // Radius of the search circle in meters.
	Category  string            // Category is the provider place type to search for.
	PageToken string            // PageToken is the continuation token, empty for the first page.
}

// NearbyPage is one page of normalized search results. NextPageToken is empty
// when the provider has no further pages.
type NearbyPage struct {
	Candidates    []models.Candidate
	NextPageToken string
}

// RawReview is an unfiltered provider review. Quality filtering happens in
// the ranking core, not at the adapter boundary.
type RawReview struct {
	Text         string
	Rating       float64
	RelativeTime string
}

// RawDetail is the unfiltered extended record for one place, validated and
// defaulted at the adapter boundary so the core never sees missing-key
// failures.
type RawDetail struct {
	Name            string
	Address         string
	Location        models.Coordinate
	OpeningHours    []string
	Rating          float64
	ReviewCount     int
	Reviews         []RawReview
	PriceLevel      *int
	PhotoReferences []string
	Website         string
	Phone           string
	MapsURL         string
}

// Geocoder resolves the bounding box of the locality enclosing a coordinate.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, center models.Coordinate) (*models.BoundingBox, error)
}

// Searcher issues one page of a paginated nearby search.
type Searcher interface {
	NearbySearch(ctx context.Context, query NearbyQuery) (*NearbyPage, error)
}

// Detailer fetches the extended record for one place.
type Detailer interface {
	PlaceDetails(ctx context.Context, placeID string) (*RawDetail, error)
}

// PhotoResolver resolves an opaque photo reference to a concrete image URL.
type PhotoResolver interface {
	PhotoURL(ctx context.Context, photoReference string, maxWidth int) (string, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
