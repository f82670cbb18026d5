package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests.
	// Labels: entity (articles, artworks, exhibitions), status (HTTP status code)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fineart_list_requests_total",
			Help: "Total number of paginated list requests",
		},
		[]string{"entity", "status"},
	)

	// DurationSeconds tracks list request duration distribution.
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fineart_list_duration_seconds",
			Help:    "Paginated list request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"entity"},
	)

	// TotalCount tracks the filtered total reported by the latest COUNT query.
	TotalCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fineart_list_total_count",
			Help: "Filtered total reported by the most recent list query",
		},
		[]string{"entity"},
	)

	// ErrorsTotal counts list errors by type.
	// Labels: entity, type (database, timeout)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fineart_list_errors_total",
			Help: "Total number of paginated list errors",
		},
		[]string{"entity", "type"},
	)
)

// RecordRequest records a completed list request.
func RecordRequest(entity string, statusCode int) {
	RequestsTotal.WithLabelValues(entity, strconv.Itoa(statusCode)).Inc()
}

// RecordDuration records list duration in seconds.
func RecordDuration(entity string, seconds float64) {
	DurationSeconds.WithLabelValues(entity).Observe(seconds)
}

// UpdateTotalCount updates the filtered-total gauge.
func UpdateTotalCount(entity string, total int64) {
	TotalCount.WithLabelValues(entity).Set(float64(total))
}

// RecordError records a list error. errorType should be "database" or "timeout".
func RecordError(entity, errorType string) {
	ErrorsTotal.WithLabelValues(entity, errorType).Inc()
}
