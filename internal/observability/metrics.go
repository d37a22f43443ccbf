package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "eplpal"

// NewMetricsRegistry returns a registry preloaded with the Go runtime and
// process collectors.
func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

// JoinMetrics counts annotations that degraded to absent and times each
// fan-out batch, labelled by join kind.
type JoinMetrics struct {
	misses    *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	batchSize *prometheus.HistogramVec
}

func NewJoinMetrics(reg prometheus.Registerer) (*JoinMetrics, error) {
	m := &JoinMetrics{
		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "join_miss_total",
			Help:      "Secondary lookups that left an annotation absent.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fanout_duration_seconds",
			Help:      "Wall time of one fan-out batch until every lookup settled.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"kind"}),
		batchSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "fanout_batch_size",
			Help:      "Number of lookups issued by one fan-out batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}, []string{"kind"}),
	}

	for _, collector := range []prometheus.Collector{m.misses, m.duration, m.batchSize} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *JoinMetrics) JoinMiss(kind string) {
	m.misses.WithLabelValues(kind).Inc()
}

func (m *JoinMetrics) ObserveFanout(kind string, size int, elapsed time.Duration) {
	m.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	m.batchSize.WithLabelValues(kind).Observe(float64(size))
}
