package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RankingPasses     *prometheus.CounterVec
	CandidatesFetched *prometheus.CounterVec
	ProviderErrors    *prometheus.CounterVec
	RequestSeconds    *prometheus.HistogramVec
	HTTPSeconds       *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		RankingPasses: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "tripcompass_ranking_passes_total",
			Help: "Total number of completed ranking passes.",
		}, []string{"kind", "status"}),
		CandidatesFetched: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "tripcompass_candidates_fetched_total",
			Help: "Total number of raw candidates fetched, before deduplication.",
		}, []string{"category"}),
		ProviderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "tripcompass_provider_api_errors_total",
			Help: "Total number of errors received from external provider APIs.",
		}, []string{"provider"}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tripcompass_provider_request_duration_seconds",
			Help:    "Duration of requests to external provider APIs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		HTTPSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tripcompass_http_request_duration_seconds",
			Help:    "Duration of handled HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}
