package ranking

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/places"
)

// Review quality gates. A review survives when its text is longer than 30
// characters and its rating is at least 4; at most the first three survivors
// are kept in provider order.
const (
	minReviewLength = 30
	minReviewRating = 4.0
	maxReviews      = 3
	maxPhotos       = 5
)

// Enricher fetches and normalizes the extended record for one selected
// candidate, applying the review-quality filters.
type Enricher struct {
	detailer places.Detailer
	log      *slog.Logger
}

// NewEnricher creates a detail enricher backed by the given detail provider.
func NewEnricher(detailer places.Detailer, log *slog.Logger) *Enricher {
	return &Enricher{detailer: detailer, log: log}
}

// Details returns the filtered detail record for one place. On fetch failure
// no partial record is returned; the error is reported and not retried.
func (e *Enricher) Details(ctx context.Context, placeID string) (*models.DetailRecord, error) {
	raw, err := e.detailer.PlaceDetails(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to enrich place %q: %w", placeID, err)
	}

	photos := raw.PhotoReferences
	if len(photos) > maxPhotos {
		photos = photos[:maxPhotos]
	}

	return &models.DetailRecord{
		Name:            raw.Name,
		Address:         raw.Address,
		Location:        raw.Location,
		OpeningHours:    raw.OpeningHours,
		Rating:          raw.Rating,
		Reviews:         FilterReviews(raw.Reviews),
		PriceLevel:      raw.PriceLevel,
		PhotoReferences: photos,
		Website:         raw.Website,
		Phone:           raw.Phone,
		MapsURL:         raw.MapsURL,
	}, nil
}

// FilterReviews applies the quality gates to raw reviews. Length is measured
// in runes so multi-byte scripts are not over-counted.
func FilterReviews(raw []places.RawReview) []models.Review {
	var kept []models.Review
	for _, review := range raw {
		if utf8.RuneCountInString(review.Text) <= minReviewLength {
			continue
		}
		if review.Rating < minReviewRating {
			continue
		}

		kept = append(kept, models.Review{
			Text:         review.Text,
			Rating:       review.Rating,
			RelativeTime: review.RelativeTime,
		})
		if len(kept) == maxReviews {
			break
		}
	}

	return kept
}
