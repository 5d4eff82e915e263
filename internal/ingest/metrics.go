package ingest

import "github.com/prometheus/client_golang/prometheus"

// Failure reason labels.
const (
	reasonParse = "parse_error"
	reasonStore = "store_error"
)

// Metrics holds the loader's Prometheus counters.
type Metrics struct {
	recordsProcessed *prometheus.CounterVec
	recordsFailed    *prometheus.CounterVec
}

// NewMetrics registers ingestion counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		recordsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog_loader",
			Name:      "records_processed_total",
			Help:      "Total records successfully ingested",
		}, []string{"collection"}),

		recordsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "catalog_loader",
			Name:      "records_failed_total",
			Help:      "Total records failed during ingestion",
		}, []string{"collection", "reason"}),
	}

	reg.MustRegister(m.recordsProcessed, m.recordsFailed)
	return m
}
