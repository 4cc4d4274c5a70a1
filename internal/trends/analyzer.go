package trends

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/tripcompass/tripcompass/internal/models"
	"golang.org/x/sync/errgroup"
)

// trendKeywords are the travel keywords whose search volume is compared to
// surface trending destinations.
var trendKeywords = []string{
	"관광지", "여행지", "관광명소", "여행명소",
	"박물관", "미술관", "유적지", "문화재",
}

// ageBands are the Naver DataLab age filter values, 10s through 60s.
var ageBands = []string{"1", "2", "3", "4", "5", "6"}

const (
	trendWindowDays = 30
	dateLayout      = "2006-01-02"

	currentHotCount = 4
	perSegmentCount = 2
)

// TrendAPI is the Naver capability the analyzer depends on.
type TrendAPI interface {
	TrendSearch(ctx context.Context, query TrendQuery) ([]models.TrendPoint, error)
	LocalSearch(ctx context.Context, query string) ([]models.Listing, error)
}

// Analyzer builds trend reports for travel destinations from DataLab search
// volumes, enriched with local-search details. A failure in one segment
// degrades only that segment.
type Analyzer struct {
	client TrendAPI
	log    *slog.Logger
	now    func() time.Time // now is injectable so tests control date windows.
}

// NewAnalyzer creates a trend analyzer backed by the given client.
func NewAnalyzer(client TrendAPI, log *slog.Logger) *Analyzer {
	return &Analyzer{client: client, log: log, now: time.Now}
}

// NewAnalyzerWithClock allows injecting the clock used to compute date windows.
func NewAnalyzerWithClock(client TrendAPI, log *slog.Logger, now func() time.Time) *Analyzer {
	return &Analyzer{client: client, log: log, now: now}
}

// TopLocations collects the currently trending destinations over the last 30
// days, the top destinations per age band, and per season.
func (a *Analyzer) TopLocations(ctx context.Context) (*models.TrendReport, error) {
	end := a.now()
	start := end.AddDate(0, 0, -trendWindowDays)

	report := &models.TrendReport{
		ByAge:    make(map[string][]models.TrendingLocation),
		Seasonal: make(map[string][]models.TrendingLocation),
	}

	hot, err := a.segment(ctx, start, end, nil, currentHotCount)
	if err != nil {
		// Without the headline segment the report is not worth returning.
		return nil, fmt.Errorf("failed to collect current trends: %w", err)
	}
	report.CurrentHot = hot

	// Age bands are independent queries; fan them out. The client's rate
	// limiter keeps the provider quota honest.
	group, groupCtx := errgroup.WithContext(ctx)
	byAge := make([][]models.TrendingLocation, len(ageBands))
	for idx, age := range ageBands {
		group.Go(func() error {
			locations, segErr := a.segment(groupCtx, start, end, []string{age}, perSegmentCount)
			if segErr != nil {
				a.log.WarnContext(groupCtx, "Skipping age segment after failed trend fetch",
					"age", age, "error", segErr)
				return nil
			}
			byAge[idx] = locations
			return nil
		})
	}
	_ = group.Wait()

	for idx, age := range ageBands {
		if byAge[idx] != nil {
			report.ByAge[age+"0s"] = byAge[idx]
		}
	}

	for season, window := range a.seasonWindows() {
		locations, segErr := a.segment(ctx, window[0], window[1], nil, perSegmentCount)
		if segErr != nil {
			a.log.WarnContext(ctx, "Skipping seasonal segment after failed trend fetch",
				"season", season, "error", segErr)
			continue
		}
		report.Seasonal[season] = locations
	}

	return report, nil
}

// segment runs one trend query and returns the topN keywords by mean ratio,
// each enriched with local-search details when available.
func (a *Analyzer) segment(
	ctx context.Context,
	start, end time.Time,
	ages []string,
	topN int,
) ([]models.TrendingLocation, error) {
	groups := make([]models.KeywordGroup, 0, len(trendKeywords))
	for _, keyword := range trendKeywords {
		groups = append(groups, models.KeywordGroup{Name: keyword, Keywords: []string{keyword}})
	}

	points, err := a.client.TrendSearch(ctx, TrendQuery{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
		TimeUnit:  "date",
		Groups:    groups,
		Ages:      ages,
	})
	if err != nil {
		return nil, err
	}

	top := topByMeanRatio(points, topN)
	for idx := range top {
		listings, lookupErr := a.client.LocalSearch(ctx, top[idx].Location)
		if lookupErr != nil || len(listings) == 0 {
			a.log.DebugContext(ctx, "No local details for trending location",
				"location", top[idx].Location, "error", lookupErr)
			continue
		}
		top[idx].Details = &listings[0]
	}

	return top, nil
}

// seasonWindows returns the fixed seasonal date ranges for the current year.
// Winter spills into the following year.
func (a *Analyzer) seasonWindows() map[string][2]time.Time {
	year := a.now().Year()
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return map[string][2]time.Time{
		"spring": {day(year, time.March, 1), day(year, time.May, 31)},
		"summer": {day(year, time.June, 1), day(year, time.August, 31)},
		"autumn": {day(year, time.September, 1), day(year, time.November, 30)},
		"winter": {day(year, time.December, 1), day(year+1, time.February, 28)},
	}
}

// topByMeanRatio averages each group's ratio across its samples and returns
// the topN groups by descending mean.
func topByMeanRatio(points []models.TrendPoint, topN int) []models.TrendingLocation {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, point := range points {
		if _, seen := counts[point.Group]; !seen {
			order = append(order, point.Group)
		}
		sums[point.Group] += point.Ratio
		counts[point.Group]++
	}

	locations := make([]models.TrendingLocation, 0, len(order))
	for _, group := range order {
		locations = append(locations, models.TrendingLocation{
			Location: group,
			Score:    sums[group] / float64(counts[group]),
		})
	}

	sort.SliceStable(locations, func(i, j int) bool {
		return locations[i].Score > locations[j].Score
	})

	if len(locations) > topN {
		locations = locations[:topN]
	}

	return locations
}
