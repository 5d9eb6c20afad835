package httpadapter

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics instruments solve calls. Each Handler owns its registry so tests
// can spin up handlers without double-registration panics.
type metrics struct {
	registry *prometheus.Registry
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kakuro",
			Name:      "solves_total",
			Help:      "Solve requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "kakuro",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of solve calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	m.registry.MustRegister(m.solves, m.duration)
	return m
}

func (m *metrics) observeSolve(outcome string, d time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	if d > 0 {
		m.duration.Observe(d.Seconds())
	}
}

func (m *metrics) handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
