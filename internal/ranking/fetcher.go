package ranking

import (
	"context"
	"log/slog"
	"time"

	"github.com/tripcompass/tripcompass/internal/metrics"
	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/places"
)

// Fetcher pagination policy.
const (
	// categoryCap is the maximum number of raw results accumulated per
	// category before the fetch stops and the radius shrinks.
	categoryCap = 60

	// shrinkFactor scales the shared radius down after a category saturates
	// its cap, narrowing subsequent fetches. It is never applied retroactively.
	shrinkFactor = 0.8

	// pageDelay is the fixed pause between result pages. The provider needs a
	// moment before a continuation token becomes valid.
	pageDelay = 2 * time.Second

	// retryBackoff is the pause before the single retry of a failed page.
	retryBackoff = time.Second

	// reducedModePages caps pagination when adaptive radius is off.
	reducedModePages = 2
)

// Sleeper is the injectable delay dependency, letting tests run without real
// waiting. It must respect context cancellation.
type Sleeper func(ctx context.Context, d time.Duration)

// sleepContext is the default Sleeper.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Fetcher accumulates raw candidates from paginated nearby searches, one
// category at a time, sequentially. A transport failure in one category is
// logged and abandoned without affecting the others.
type Fetcher struct {
	searcher places.Searcher
	log      *slog.Logger
	metrics  *metrics.Metrics
	sleep    Sleeper
}

// NewFetcher creates a fetcher with the default context-aware sleeper.
func NewFetcher(searcher places.Searcher, log *slog.Logger, m *metrics.Metrics) *Fetcher {
	return &Fetcher{searcher: searcher, log: log, metrics: m, sleep: sleepContext}
}

// NewFetcherWithSleeper allows injecting a custom delay dependency.
// Useful for testing pagination without real waiting.
func NewFetcherWithSleeper(
	searcher places.Searcher,
	log *slog.Logger,
	m *metrics.Metrics,
	sleep Sleeper,
) *Fetcher {
	return &Fetcher{searcher: searcher, log: log, metrics: m, sleep: sleep}
}

// FetchAll runs one nearby-search pass over the given categories and returns
// the flat concatenation of every category's results, each annotated with the
// category that produced it.
//
// In adaptive mode a category that saturates its cap shrinks the shared
// radius for the categories that follow. In reduced mode (adaptive=false) the
// radius is fixed and pagination stops after two pages; both modes produce
// the same downstream contract.
func (f *Fetcher) FetchAll(
	ctx context.Context,
	center models.Coordinate,
	categories []string,
	radius uint,
	adaptive bool,
) []models.Candidate {
	current := radius
	var all []models.Candidate

	for _, category := range categories {
		results, saturated, err := f.fetchCategory(ctx, center, category, current, adaptive)
		if err != nil {
			// Partial-failure isolation: this category is abandoned, the
			// others proceed with the radius unchanged.
			f.log.ErrorContext(ctx, "Abandoning category after failed fetch",
				"category", category, "error", err)
			f.metrics.ProviderErrors.WithLabelValues("places").Inc()
			continue
		}

		f.metrics.CandidatesFetched.WithLabelValues(category).Add(float64(len(results)))
		all = append(all, results...)

		if saturated && adaptive {
			current = uint(float64(current) * shrinkFactor)
			f.log.DebugContext(ctx, "Category saturated result cap, shrinking radius",
				"category", category, "radius", current)
		}
	}

	return all
}

// fetchCategory pages through one category until the provider runs out of
// continuation tokens or the category cap is reached. It reports whether the
// cap was hit so the caller can shrink the radius for subsequent categories.
func (f *Fetcher) fetchCategory(
	ctx context.Context,
	center models.Coordinate,
	category string,
	radius uint,
	adaptive bool,
) ([]models.Candidate, bool, error) {
	var (
		results []models.Candidate
		token   string
		pages   int
	)

	for {
		page, err := f.searchWithRetry(ctx, places.NearbyQuery{
			Center:    center,
			Radius:    radius,
			Category:  category,
			PageToken: token,
		})
		if err != nil {
			return nil, false, err
		}

		results = append(results, page.Candidates...)
		pages++

		if len(results) >= categoryCap {
			return results[:categoryCap], true, nil
		}
		if page.NextPageToken == "" {
			return results, false, nil
		}
		if !adaptive && pages >= reducedModePages {
			return results, false, nil
		}

		token = page.NextPageToken
		f.sleep(ctx, pageDelay)
	}
}

// searchWithRetry issues one page request with a single retry after a short
// backoff for transient transport errors.
func (f *Fetcher) searchWithRetry(ctx context.Context, query places.NearbyQuery) (*places.NearbyPage, error) {
	page, err := f.searcher.NearbySearch(ctx, query)
	if err == nil {
		return page, nil
	}

	f.log.WarnContext(ctx, "Nearby search failed, retrying once",
		"category", query.Category, "error", err)
	f.sleep(ctx, retryBackoff)

	return f.searcher.NearbySearch(ctx, query)
}
