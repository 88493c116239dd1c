package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lunarbyte-dev/member-credits/internal/domain/port/core"
)

// Prometheus gathers HTTP and reconciliation metrics on a private registry
type Prometheus struct {
	registry *prometheus.Registry

	reqCnt *prometheus.CounterVec
	reqDur *prometheus.HistogramVec

	tagRemovals *prometheus.CounterVec
	reconciles  *prometheus.CounterVec
}

// NewPrometheus creates the metric collectors and registers them
func NewPrometheus(subsystem string) *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		reqCnt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "req_total",
				Help:      "How many HTTP requests processed, partitioned by status code, method and route.",
			},
			[]string{"code", "method", "url"},
		),
		reqDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Subsystem: subsystem,
				Name:      "req_dur_ms",
				Help:      "The HTTP request latencies in milliseconds.",
			},
			[]string{"code", "method", "url"},
		),
		tagRemovals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "tag_removal_total",
				Help:      "Purchase tag removal attempts against the platform, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		reconciles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: subsystem,
				Name:      "reconcile_total",
				Help:      "Credit reconciliation ledger operations, partitioned by path.",
			},
			[]string{"path"},
		),
	}

	p.registry.MustRegister(p.reqCnt, p.reqDur, p.tagRemovals, p.reconciles)
	return p
}

var _ core.Metrics = (*Prometheus)(nil)

// RecordTagRemoval counts one tag removal attempt by outcome
func (p *Prometheus) RecordTagRemoval(outcome string) {
	p.tagRemovals.WithLabelValues(outcome).Inc()
}

// RecordReconcile counts one reconciliation ledger operation by path
func (p *Prometheus) RecordReconcile(path string) {
	p.reconciles.WithLabelValues(path).Inc()
}

// Handler exposes the registry for the /metrics endpoint
func (p *Prometheus) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// HandlerFunc instruments every request with a counter and latency histogram.
// The route template keeps label cardinality bounded on parameterized paths.
func (p *Prometheus) HandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		url := c.FullPath()
		if url == "" {
			url = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Millisecond)

		p.reqCnt.WithLabelValues(code, c.Request.Method, url).Inc()
		p.reqDur.WithLabelValues(code, c.Request.Method, url).Observe(elapsed)
	}
}
