package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/tripcompass/tripcompass/internal/metrics"
	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/places"
	"github.com/tripcompass/tripcompass/internal/ranking"
)

// Hotel search policy. Lodging hits below these floors are skipped before
// the expensive per-hotel detail fetch.
const (
	lodgingCategory = "lodging"

	minHotelReviews = 50
	minHotelRating  = 3.5
)

// Planner exposes the travel-planning core: ranked place search, ranked
// hotel search, on-demand detail enrichment and photo resolution. Each
// ranking pass is a self-contained sequential computation over its inputs
// plus sequential provider calls; nothing is cached between calls.
type Planner struct {
	log       *slog.Logger
	estimator *ranking.RadiusEstimator
	fetcher   *ranking.Fetcher
	enricher  *ranking.Enricher
	detailer  places.Detailer
	photos    places.PhotoResolver
	metrics   *metrics.Metrics
}

// NewPlanner creates a planner from its collaborators.
func NewPlanner(
	log *slog.Logger,
	estimator *ranking.RadiusEstimator,
	fetcher *ranking.Fetcher,
	enricher *ranking.Enricher,
	detailer places.Detailer,
	photos places.PhotoResolver,
	m *metrics.Metrics,
) *Planner {
	return &Planner{
		log:       log,
		estimator: estimator,
		fetcher:   fetcher,
		enricher:  enricher,
		detailer:  detailer,
		photos:    photos,
		metrics:   m,
	}
}

// RankPlaces searches the selected themes around the given center and
// returns up to 50 places ordered by descending relevance score.
// Disqualified candidates (fewer than 100 reviews or rating below 4.0)
// never appear in the output. Themes that are unknown contribute nothing;
// an empty result is a valid outcome, not an error.
func (p *Planner) RankPlaces(
	ctx context.Context,
	center models.Coordinate,
	themes []string,
) ([]models.ScoredCandidate, error) {
	start := time.Now()

	categories := PlaceTypesFor(themes)
	if len(categories) == 0 {
		p.log.InfoContext(ctx, "No known themes selected, nothing to search", "themes", themes)
		p.metrics.RankingPasses.WithLabelValues("places", "empty").Inc()
		return []models.ScoredCandidate{}, nil
	}

	radius := p.estimator.Estimate(ctx, center)
	raw := p.fetcher.FetchAll(ctx, center, categories, radius, true)
	unique := ranking.Deduplicate(raw)

	scored := make([]models.ScoredCandidate, 0, len(unique))
	for _, candidate := range unique {
		score := ranking.PlaceScore(candidate)
		if score == ranking.DisqualifiedScore {
			continue
		}
		scored = append(scored, models.ScoredCandidate{Candidate: candidate, Score: score})
	}

	ranked := ranking.Rank(scored, ranking.TopPlaces)

	status := "success"
	if len(ranked) == 0 {
		status = "empty"
	}
	p.metrics.RankingPasses.WithLabelValues("places", status).Inc()
	p.metrics.RequestSeconds.WithLabelValues("places_pass").Observe(time.Since(start).Seconds())

	p.log.InfoContext(ctx, "Ranked nearby places",
		"themes", themes, "raw", len(raw), "unique", len(unique), "ranked", len(ranked))

	return ranked, nil
}

// RankHotels searches lodging around the given center and returns up to 10
// hotels ordered by descending relevance score. Hotels run in the reduced
// fetch mode: fixed default radius, two-page cap, no radius shrink. Weak
// hits are skipped before detail enrichment, and an enrichment failure
// skips only that hotel.
func (p *Planner) RankHotels(
	ctx context.Context,
	center models.Coordinate,
) ([]models.ScoredCandidate, error) {
	start := time.Now()

	raw := p.fetcher.FetchAll(ctx, center, []string{lodgingCategory}, ranking.DefaultRadius, false)
	unique := ranking.Deduplicate(raw)

	scored := make([]models.ScoredCandidate, 0, len(unique))
	for _, candidate := range unique {
		if candidate.ReviewCount < minHotelReviews || candidate.Rating < minHotelRating {
			continue
		}

		detail, err := p.detailer.PlaceDetails(ctx, candidate.PlaceID)
		if err != nil {
			p.log.WarnContext(ctx, "Skipping hotel after failed detail fetch",
				"place_id", candidate.PlaceID, "error", err)
			p.metrics.ProviderErrors.WithLabelValues("details").Inc()
			continue
		}

		// The detail record carries the fresher snapshot of the signals the
		// hotel scorer reads.
		candidate.Name = detail.Name
		candidate.Rating = detail.Rating
		if detail.ReviewCount > 0 {
			candidate.ReviewCount = detail.ReviewCount
		}
		candidate.PriceLevel = detail.PriceLevel
		candidate.DistanceMeters = center.DistanceTo(candidate.Location)

		scored = append(scored, models.ScoredCandidate{
			Candidate: candidate,
			Score:     ranking.HotelScore(candidate),
		})
	}

	ranked := ranking.Rank(scored, ranking.TopHotels)

	status := "success"
	if len(ranked) == 0 {
		status = "empty"
	}
	p.metrics.RankingPasses.WithLabelValues("hotels", status).Inc()
	p.metrics.RequestSeconds.WithLabelValues("hotels_pass").Observe(time.Since(start).Seconds())

	p.log.InfoContext(ctx, "Ranked nearby hotels",
		"raw", len(raw), "unique", len(unique), "ranked", len(ranked))

	return ranked, nil
}

// GetDetails fetches the filtered detail record for one place. On failure no
// partial record is returned.
func (p *Planner) GetDetails(ctx context.Context, placeID string) (*models.DetailRecord, error) {
	return p.enricher.Details(ctx, placeID)
}

// ResolvePhoto resolves an opaque photo reference to a concrete image URL.
func (p *Planner) ResolvePhoto(ctx context.Context, photoReference string, maxWidth int) (string, error) {
	return p.photos.PhotoURL(ctx, photoReference, maxWidth)
}
