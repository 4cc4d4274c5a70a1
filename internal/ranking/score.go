package ranking

import (
	"math"

	"github.com/tripcompass/tripcompass/internal/models"
)

// DisqualifiedScore marks a candidate excluded from ranking regardless of its
// other signals. Disqualified candidates never appear in final output.
const DisqualifiedScore float64 = -1

// Place scoring thresholds and weights.
const (
	minPlaceReviews = 100
	minPlaceRating  = 4.0

	maxReviewBasis = 5000.0 // review count that saturates the review weight
	reviewWeight   = 0.6
	ratingWeight   = 0.4
)

// Hotel scoring weights. Component maxima bound typical inputs to a soft
// maximum near 100; the sum is not clamped.
const (
	hotelMaxReviewScore    = 50.0
	hotelReviewsPerPoint   = 20.0
	hotelTrustBasis        = 1000.0
	hotelMinTrustWeight    = 0.2
	hotelRatingScale       = 6.0
	hotelMaxDistanceScore  = 15.0
	hotelDistancePenalty   = 0.75 // points lost per kilometer
	hotelMaxPriceScore     = 5.0
	hotelPricePenalty      = 1.5
	hotelDefaultPriceLevel = 2
)

// PlaceScore computes the bounded composite relevance score for a place.
// Candidates with fewer than 100 reviews or a rating below 4.0 are
// disqualified and score DisqualifiedScore. Otherwise the score blends the
// normalized review volume (60%) with the normalized rating (40%), scaled to
// [0,100] and rounded to one decimal.
func PlaceScore(candidate models.Candidate) float64 {
	if candidate.ReviewCount < minPlaceReviews || candidate.Rating < minPlaceRating {
		return DisqualifiedScore
	}

	volume := math.Min(float64(candidate.ReviewCount)/maxReviewBasis, 1.0)
	rating := candidate.Rating / 5

	return round1((volume*reviewWeight + rating*ratingWeight) * 100)
}

// HotelScore computes the composite relevance score for a hotel. There is no
// disqualification gate; every hotel produces a usable value. Missing inputs
// contribute zero (or the documented default for price level).
func HotelScore(candidate models.Candidate) float64 {
	reviews := float64(candidate.ReviewCount)

	// Review volume, capped at 50 points: 1000 reviews reach the cap.
	score := math.Min(hotelMaxReviewScore, reviews/hotelReviewsPerPoint)

	// Rating worth up to 30 points, discounted by a trust weight that grows
	// with review volume.
	trust := clamp(reviews/hotelTrustBasis, hotelMinTrustWeight, 1.0)
	score += candidate.Rating * hotelRatingScale * trust

	// Proximity worth up to 15 points, fading by 0.75 per kilometer.
	distanceKm := candidate.DistanceMeters / 1000
	score += math.Max(0, hotelMaxDistanceScore-distanceKm*hotelDistancePenalty)

	// Mid-range pricing worth up to 5 points.
	priceLevel := hotelDefaultPriceLevel
	if candidate.PriceLevel != nil {
		priceLevel = *candidate.PriceLevel
	}
	deviation := math.Abs(float64(hotelDefaultPriceLevel - priceLevel))
	score += math.Max(0, hotelMaxPriceScore-deviation*hotelPricePenalty)

	return score
}

// round1 rounds to one decimal place.
func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// clamp bounds value to [low, high].
func clamp(value, low, high float64) float64 {
	return math.Max(low, math.Min(value, high))
}
