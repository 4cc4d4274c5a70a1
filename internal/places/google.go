package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/tripcompass/tripcompass/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider is a struct that holds the client for the Google Maps
// Platform and a logger. It implements the Geocoder, Searcher and Detailer
// interfaces against the Places and Geocoding APIs.
type GoogleProvider struct {
	client   GoogleAPIClient // client is the Google Maps API client
	language string          // language requested for provider results
	log      *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of the Google Maps client used by the
// provider, extracted for mocking in tests.
type GoogleAPIClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
	PlaceDetails(ctx context.Context, r *maps.PlaceDetailsRequest) (maps.PlaceDetailsResult, error)
}

// Common errors for the Google provider.
var (
	// ErrNoLocality is returned when reverse geocoding finds no locality-typed result.
	ErrNoLocality = errors.New("no locality found for coordinate")
)

// localityType is the Google result type for the smallest named
// administrative area enclosing a coordinate.
const localityType = "locality"

// detailFields is the explicit field mask requested from the Place Details API.
var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskGeometry,
	maps.PlaceDetailsFieldMaskOpeningHours,
	maps.PlaceDetailsFieldMaskRatings,
	maps.PlaceDetailsFieldMaskUserRatingsTotal,
	maps.PlaceDetailsFieldMaskReviews,
	maps.PlaceDetailsFieldMaskPriceLevel,
	maps.PlaceDetailsFieldMaskPhotos,
	maps.PlaceDetailsFieldMaskURL,
	maps.PlaceDetailsFieldMaskWebsite,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
}

// NewGoogleClient creates a Google Maps client with API key authentication
// and optional client-side rate limiting.
func NewGoogleClient(apiKey string, rateLimit int) (*maps.Client, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
	}
	if rateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(rateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return client, nil
}

// NewGoogleProvider initializes a new GoogleProvider with the given API
// client, result language and logger.
func NewGoogleProvider(client GoogleAPIClient, language string, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, language: language, log: log}
}

// ReverseGeocode looks up the locality enclosing the given coordinate and
// returns its bounding box. It returns ErrNoLocality when no locality-typed
// result exists for the coordinate.
func (gp *GoogleProvider) ReverseGeocode(
	ctx context.Context,
	center models.Coordinate,
) (*models.BoundingBox, error) {
	gp.log.DebugContext(ctx, "Reverse geocoding locality", "lat", center.Latitude, "lng", center.Longitude)

	req := maps.GeocodingRequest{
		LatLng:     &maps.LatLng{Lat: center.Latitude, Lng: center.Longitude},
		ResultType: []string{localityType},
	}
	results, err := gp.client.ReverseGeocode(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode coordinate: %w", err)
	}

	for _, result := range results {
		if !slices.Contains(result.Types, localityType) {
			continue
		}

		bounds := result.Geometry.Bounds
		if bounds.NorthEast.Lat == 0 && bounds.NorthEast.Lng == 0 &&
			bounds.SouthWest.Lat == 0 && bounds.SouthWest.Lng == 0 {
			// Some localities carry no explicit bounds, only a viewport.
			bounds = result.Geometry.Viewport
		}

		return &models.BoundingBox{
			NorthEast: models.Coordinate{Latitude: bounds.NorthEast.Lat, Longitude: bounds.NorthEast.Lng},
			SouthWest: models.Coordinate{Latitude: bounds.SouthWest.Lat, Longitude: bounds.SouthWest.Lng},
		}, nil
	}

	return nil, ErrNoLocality
}

// NearbySearch issues one page of a nearby search and normalizes the raw
// results into candidates annotated with the query category.
func (gp *GoogleProvider) NearbySearch(ctx context.Context, query NearbyQuery) (*NearbyPage, error) {
	gp.log.DebugContext(ctx, "Nearby search",
		"category", query.Category, "radius", query.Radius, "page_token", query.PageToken != "")

	req := maps.NearbySearchRequest{
		Location:  &maps.LatLng{Lat: query.Center.Latitude, Lng: query.Center.Longitude},
		Radius:    query.Radius,
		Type:      maps.PlaceType(query.Category),
		Language:  gp.language,
		PageToken: query.PageToken,
	}
	resp, err := gp.client.NearbySearch(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby places: %w", err)
	}

	candidates := make([]models.Candidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidate := models.Candidate{
			PlaceID:     result.PlaceID,
			Name:        result.Name,
			Location:    toCoordinate(result.Geometry.Location),
			Rating:      float64(result.Rating),
			ReviewCount: result.UserRatingsTotal,
			CategoryTag: query.Category,
			PriceLevel:  priceLevel(result.PriceLevel),
		}
		if len(result.Photos) > 0 {
			candidate.PhotoReference = result.Photos[0].PhotoReference
		}
		candidates = append(candidates, candidate)
	}

	return &NearbyPage{Candidates: candidates, NextPageToken: resp.NextPageToken}, nil
}

// PlaceDetails fetches the extended record for one place using an explicit
// field mask and normalizes it, leaving review filtering to the caller.
func (gp *GoogleProvider) PlaceDetails(ctx context.Context, placeID string) (*RawDetail, error) {
	gp.log.DebugContext(ctx, "Fetching place details", "place_id", placeID)

	req := maps.PlaceDetailsRequest{
		PlaceID:  placeID,
		Language: gp.language,
		Fields:   detailFields,
	}
	result, err := gp.client.PlaceDetails(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch place details: %w", err)
	}

	detail := &RawDetail{
		Name:        result.Name,
		Address:     result.FormattedAddress,
		Location:    toCoordinate(result.Geometry.Location),
		Rating:      float64(result.Rating),
		ReviewCount: result.UserRatingsTotal,
		PriceLevel:  priceLevel(result.PriceLevel),
		Website:     result.Website,
		Phone:       result.FormattedPhoneNumber,
		MapsURL:     result.URL,
	}
	if result.OpeningHours != nil {
		detail.OpeningHours = result.OpeningHours.WeekdayText
	}
	for _, review := range result.Reviews {
		detail.Reviews = append(detail.Reviews, RawReview{
			Text:         review.Text,
			Rating:       float64(review.Rating),
			RelativeTime: review.RelativeTimeDescription,
		})
	}
	for _, photo := range result.Photos {
		detail.PhotoReferences = append(detail.PhotoReferences, photo.PhotoReference)
	}

	return detail, nil
}

// toCoordinate converts a provider LatLng into the domain coordinate type.
func toCoordinate(loc maps.LatLng) models.Coordinate {
	return models.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
}

// priceLevel maps the provider's price level to an optional value. The typed
// client reports a missing price level as zero, which is indistinguishable
// from "free"; both are treated as absent.
func priceLevel(level int) *int {
	if level == 0 {
		return nil
	}

	return &level
}
