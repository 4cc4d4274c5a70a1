package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/tripcompass/tripcompass/internal/export"
	"github.com/tripcompass/tripcompass/internal/models"
)

// PlannerAPI is the planning capability the handlers expose over HTTP.
type PlannerAPI interface {
	RankPlaces(ctx context.Context, center models.Coordinate, themes []string) ([]models.ScoredCandidate, error)
	RankHotels(ctx context.Context, center models.Coordinate) ([]models.ScoredCandidate, error)
	GetDetails(ctx context.Context, placeID string) (*models.DetailRecord, error)
	ResolvePhoto(ctx context.Context, photoReference string, maxWidth int) (string, error)
}

// TrendReporter is the trend-analysis capability the handlers expose.
type TrendReporter interface {
	TopLocations(ctx context.Context) (*models.TrendReport, error)
}

// Handlers holds the service dependencies of the HTTP surface.
type Handlers struct {
	Planner PlannerAPI
	Trends  TrendReporter
	Log     *slog.Logger
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// defaultPhotoWidth matches the provider's common thumbnail size.
const defaultPhotoWidth = 400

// MountHandlers registers all routes on the server.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Get("/v1/places", h.rankPlaces)
	s.mux.Get("/v1/hotels", h.rankHotels)
	s.mux.Get("/v1/places/{id}", h.getDetails)
	s.mux.Get("/v1/photos/{ref}", h.resolvePhoto)
	s.mux.Get("/v1/trends/top", h.topTrends)
}

func (h *Handlers) writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		h.Log.Error("failed to write problem response", "error", err)
	}
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Log.Error("failed to write JSON response", "error", err)
	}
}

// parseCenter reads lat/lng query parameters into a coordinate.
func parseCenter(r *http.Request) (models.Coordinate, bool) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if latErr != nil || lngErr != nil {
		return models.Coordinate{}, false
	}

	return models.Coordinate{Latitude: lat, Longitude: lng}, true
}

func (h *Handlers) rankPlaces(w http.ResponseWriter, r *http.Request) {
	center, ok := parseCenter(r)
	if !ok {
		h.writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "lat and lng must be valid numbers")
		return
	}

	var themes []string
	if raw := r.URL.Query().Get("themes"); raw != "" {
		themes = strings.Split(raw, ",")
	}
	if len(themes) == 0 {
		h.writeProblem(w, http.StatusBadRequest, "Missing themes", "at least one theme must be selected")
		return
	}

	ranked, err := h.Planner.RankPlaces(r.Context(), center, themes)
	if err != nil {
		h.writeProblem(w, http.StatusBadGateway, "Search failed", "could not rank nearby places")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		if err := export.WriteCandidates(w, ranked); err != nil {
			h.Log.Error("failed to stream CSV response", "error", err)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"results": ranked})
}

func (h *Handlers) rankHotels(w http.ResponseWriter, r *http.Request) {
	center, ok := parseCenter(r)
	if !ok {
		h.writeProblem(w, http.StatusBadRequest, "Invalid coordinates", "lat and lng must be valid numbers")
		return
	}

	ranked, err := h.Planner.RankHotels(r.Context(), center)
	if err != nil {
		h.writeProblem(w, http.StatusBadGateway, "Search failed", "could not rank nearby hotels")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"results": ranked})
}

func (h *Handlers) getDetails(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	detail, err := h.Planner.GetDetails(r.Context(), placeID)
	if err != nil {
		h.writeProblem(w, http.StatusNotFound, "Not Found", "no details for this place")
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

func (h *Handlers) resolvePhoto(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	maxWidth := defaultPhotoWidth
	if raw := r.URL.Query().Get("maxwidth"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.writeProblem(w, http.StatusBadRequest, "Invalid maxwidth", "maxwidth must be a positive integer")
			return
		}
		maxWidth = parsed
	}

	url, err := h.Planner.ResolvePhoto(r.Context(), ref, maxWidth)
	if err != nil {
		h.writeProblem(w, http.StatusNotFound, "Not Found", "photo reference did not resolve")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (h *Handlers) topTrends(w http.ResponseWriter, r *http.Request) {
	report, err := h.Trends.TopLocations(r.Context())
	if err != nil {
		h.writeProblem(w, http.StatusBadGateway, "Trend lookup failed", "could not collect trend data")
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}
