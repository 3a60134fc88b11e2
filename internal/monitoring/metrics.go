package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BatchRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adrecon_batch_runs_total",
			Help: "Total number of batch reconciliation runs",
		},
		[]string{"origin", "status"},
	)

	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "adrecon_batch_duration_seconds",
			Help:    "Batch run duration in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		},
	)

	BatchUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adrecon_batch_units_total",
			Help: "Processed reconciliation units by outcome",
		},
		[]string{"outcome"},
	)

	PlatformFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adrecon_platform_fetch_errors_total",
			Help: "Platform API fetch failures by platform",
		},
		[]string{"platform"},
	)

	TokenRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adrecon_token_refresh_total",
			Help: "Google token refresh attempts by outcome",
		},
		[]string{"outcome"},
	)
)
