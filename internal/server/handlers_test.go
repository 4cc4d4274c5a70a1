package server_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tripcompass/tripcompass/internal/metrics"
	"github.com/tripcompass/tripcompass/internal/models"
	"github.com/tripcompass/tripcompass/internal/server"
)

// mockPlanner is a mock implementation of PlannerAPI for testing.
type mockPlanner struct {
	rankPlacesFunc   func(ctx context.Context, center models.Coordinate, themes []string) ([]models.ScoredCandidate, error)
	rankHotelsFunc   func(ctx context.Context, center models.Coordinate) ([]models.ScoredCandidate, error)
	getDetailsFunc   func(ctx context.Context, placeID string) (*models.DetailRecord, error)
	resolvePhotoFunc func(ctx context.Context, photoReference string, maxWidth int) (string, error)
}

func (m *mockPlanner) RankPlaces(ctx context.Context, center models.Coordinate, themes []string) ([]models.ScoredCandidate, error) {
	return m.rankPlacesFunc(ctx, center, themes)
}

func (m *mockPlanner) RankHotels(ctx context.Context, center models.Coordinate) ([]models.ScoredCandidate, error) {
	return m.rankHotelsFunc(ctx, center)
}

func (m *mockPlanner) GetDetails(ctx context.Context, placeID string) (*models.DetailRecord, error) {
	return m.getDetailsFunc(ctx, placeID)
}

func (m *mockPlanner) ResolvePhoto(ctx context.Context, photoReference string, maxWidth int) (string, error) {
	return m.resolvePhotoFunc(ctx, photoReference, maxWidth)
}

// mockTrendReporter is a mock implementation of TrendReporter for testing.
type mockTrendReporter struct {
	topLocationsFunc func(ctx context.Context) (*models.TrendReport, error)
}

func (m *mockTrendReporter) TopLocations(ctx context.Context) (*models.TrendReport, error) {
	return m.topLocationsFunc(ctx)
}

func newTestServer(planner *mockPlanner, trends *mockTrendReporter) http.Handler {
	log := slog.Default()
	srv := server.New(log, metrics.NewMetrics(prometheus.NewRegistry()))
	srv.MountHandlers(&server.Handlers{Planner: planner, Trends: trends, Log: log})
	return srv.Mux()
}

func doRequest(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	handler := newTestServer(&mockPlanner{}, &mockTrendReporter{})

	rec := doRequest(t, handler, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRankPlacesHandler(t *testing.T) {
	t.Run("returns ranked places as JSON", func(t *testing.T) {
		planner := &mockPlanner{
			rankPlacesFunc: func(_ context.Context, center models.Coordinate, themes []string) ([]models.ScoredCandidate, error) {
				assert.InEpsilon(t, 37.5665, center.Latitude, 1e-9)
				assert.Equal(t, []string{"museum", "food"}, themes)
				return []models.ScoredCandidate{
					{Candidate: models.Candidate{PlaceID: "p1", Name: "Palace"}, Score: 88.8},
				}, nil
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places?lat=37.5665&lng=126.9780&themes=museum,food")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Results []models.ScoredCandidate `json:"results"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Results, 1)
		assert.Equal(t, "Palace", body.Results[0].Name)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		handler := newTestServer(&mockPlanner{}, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places?lat=abc&lng=126.9780&themes=museum")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	})

	t.Run("missing themes", func(t *testing.T) {
		handler := newTestServer(&mockPlanner{}, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places?lat=37.5&lng=127.0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("upstream failure maps to bad gateway", func(t *testing.T) {
		planner := &mockPlanner{
			rankPlacesFunc: func(_ context.Context, _ models.Coordinate, _ []string) ([]models.ScoredCandidate, error) {
				return nil, assert.AnError
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places?lat=37.5&lng=127.0&themes=museum")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("csv format streams a download", func(t *testing.T) {
		planner := &mockPlanner{
			rankPlacesFunc: func(_ context.Context, _ models.Coordinate, _ []string) ([]models.ScoredCandidate, error) {
				return []models.ScoredCandidate{
					{Candidate: models.Candidate{PlaceID: "p1", Name: "Palace"}, Score: 88.8},
				}, nil
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places?lat=37.5&lng=127.0&themes=museum&format=csv")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "place_id,"))
		assert.Contains(t, lines[1], "Palace")
	})
}

func TestRankHotelsHandler(t *testing.T) {
	t.Run("returns ranked hotels", func(t *testing.T) {
		planner := &mockPlanner{
			rankHotelsFunc: func(_ context.Context, _ models.Coordinate) ([]models.ScoredCandidate, error) {
				return []models.ScoredCandidate{
					{Candidate: models.Candidate{PlaceID: "h1", Name: "Grand"}, Score: 95.5},
				}, nil
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/hotels?lat=37.5&lng=127.0")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Grand")
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		handler := newTestServer(&mockPlanner{}, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/hotels?lat=37.5")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDetailsHandler(t *testing.T) {
	t.Run("returns the detail record", func(t *testing.T) {
		planner := &mockPlanner{
			getDetailsFunc: func(_ context.Context, placeID string) (*models.DetailRecord, error) {
				assert.Equal(t, "abc123", placeID)
				return &models.DetailRecord{Name: "Gyeongbokgung"}, nil
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places/abc123")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Gyeongbokgung")
	})

	t.Run("lookup failure maps to not found", func(t *testing.T) {
		planner := &mockPlanner{
			getDetailsFunc: func(_ context.Context, _ string) (*models.DetailRecord, error) {
				return nil, assert.AnError
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/places/missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResolvePhotoHandler(t *testing.T) {
	t.Run("resolves with the default width", func(t *testing.T) {
		planner := &mockPlanner{
			resolvePhotoFunc: func(_ context.Context, ref string, maxWidth int) (string, error) {
				assert.Equal(t, "ref-1", ref)
				assert.Equal(t, 400, maxWidth)
				return "https://img.example/1.jpg", nil
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/photos/ref-1")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://img.example/1.jpg")
	})

	t.Run("rejects a non-positive maxwidth", func(t *testing.T) {
		handler := newTestServer(&mockPlanner{}, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/photos/ref-1?maxwidth=-5")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unresolved reference maps to not found", func(t *testing.T) {
		planner := &mockPlanner{
			resolvePhotoFunc: func(_ context.Context, _ string, _ int) (string, error) {
				return "", assert.AnError
			},
		}
		handler := newTestServer(planner, &mockTrendReporter{})

		rec := doRequest(t, handler, "/v1/photos/stale-ref")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestTopTrendsHandler(t *testing.T) {
	t.Run("returns the report", func(t *testing.T) {
		trends := &mockTrendReporter{
			topLocationsFunc: func(_ context.Context) (*models.TrendReport, error) {
				return &models.TrendReport{
					CurrentHot: []models.TrendingLocation{{Location: "관광지", Score: 80.5}},
				}, nil
			},
		}
		handler := newTestServer(&mockPlanner{}, trends)

		rec := doRequest(t, handler, "/v1/trends/top")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "관광지")
	})

	t.Run("collection failure maps to bad gateway", func(t *testing.T) {
		trends := &mockTrendReporter{
			topLocationsFunc: func(_ context.Context) (*models.TrendReport, error) {
				return nil, assert.AnError
			},
		}
		handler := newTestServer(&mockPlanner{}, trends)

		rec := doRequest(t, handler, "/v1/trends/top")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
