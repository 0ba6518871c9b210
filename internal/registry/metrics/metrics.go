package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry module.
// Tracks query volume, dashboard computation cost, and import outcomes.
type Metrics struct {
	QueriesTotal      prometheus.Counter
	QueryDuration     prometheus.Histogram
	DashboardDuration prometheus.Histogram
	ExportsTotal      *prometheus.CounterVec
	ImportRows        *prometheus.CounterVec
}

// New creates a new Metrics instance with all registry module metrics registered.
func New() *Metrics {
	return &Metrics{
		QueriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "murima_registry_queries_total",
			Help: "Total number of record list queries served",
		}),
		QueryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "murima_registry_query_duration_seconds",
			Help:    "Duration of the filter/search/sort/paginate pipeline",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		DashboardDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "murima_registry_dashboard_duration_seconds",
			Help:    "Duration of full dashboard aggregation over the record set",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ExportsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "murima_registry_exports_total",
			Help: "Total number of export requests by column set",
		}, []string{"columns"}),
		ImportRows: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "murima_registry_import_rows_total",
			Help: "Total imported rows by outcome (imported, duplicate, error)",
		}, []string{"outcome"}),
	}
}

// IncrementQueries records one served list query.
func (m *Metrics) IncrementQueries() {
	m.QueriesTotal.Inc()
}

// ObserveQuery records the duration of a list query.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveQuery(start time.Time) {
	m.QueryDuration.Observe(time.Since(start).Seconds())
}

// ObserveDashboard records the duration of a dashboard computation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDashboard(start time.Time) {
	m.DashboardDuration.Observe(time.Since(start).Seconds())
}

// IncrementExport records an export request for the given column set.
func (m *Metrics) IncrementExport(columns string) {
	m.ExportsTotal.WithLabelValues(columns).Inc()
}

// AddImportOutcome records how many rows of a batch landed in one outcome.
func (m *Metrics) AddImportOutcome(outcome string, n int) {
	m.ImportRows.WithLabelValues(outcome).Add(float64(n))
}
