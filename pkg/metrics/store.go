package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const blobstoreSubsystem = "blobstore"

// StoreMetrics collects statistics of the blob storage operations.
type StoreMetrics struct {
	putDuration prometheus.Histogram

	puts    *prometheus.CounterVec
	gets    *prometheus.CounterVec
	deletes *prometheus.CounterVec
}

// NewStoreMetrics creates blob storage metrics and registers them in r.
func NewStoreMetrics(r prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		putDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: blobstoreSubsystem,
			Name:      "put_time",
			Help:      "Blob storage 'put' operations handling time",
		}),
		puts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: blobstoreSubsystem,
			Name:      "put_total",
			Help:      "Number of blob storage 'put' operations",
		}, []string{resultLabelKey}),
		gets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: blobstoreSubsystem,
			Name:      "get_total",
			Help:      "Number of blob storage 'get' operations",
		}, []string{resultLabelKey}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: blobstoreSubsystem,
			Name:      "delete_total",
			Help:      "Number of blob storage 'delete' operations",
		}, []string{resultLabelKey}),
	}

	r.MustRegister(m.putDuration, m.puts, m.gets, m.deletes)

	return m
}

// AddPut counts 'put' operation and its duration.
func (m *StoreMetrics) AddPut(success bool, d time.Duration) {
	m.puts.With(prometheus.Labels{resultLabelKey: result(success)}).Inc()
	m.putDuration.Observe(d.Seconds())
}

// AddGet counts 'get' operation.
func (m *StoreMetrics) AddGet(success bool) {
	m.gets.With(prometheus.Labels{resultLabelKey: result(success)}).Inc()
}

// AddDelete counts 'delete' operation.
func (m *StoreMetrics) AddDelete(success bool) {
	m.deletes.With(prometheus.Labels{resultLabelKey: result(success)}).Inc()
}
