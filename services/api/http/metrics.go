package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/02loveslollipop/floatchat-dashboard/services/api/dashboard"
)

// Metrics holds the Prometheus collectors of the API.
type Metrics struct {
	gatherer prometheus.Gatherer

	requestsTotal *prometheus.CounterVec
	passesTotal   *prometheus.CounterVec
	passDuration  prometheus.Histogram
	activeFloats  prometheus.Gauge
	dataPoints    prometheus.Gauge
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "floatchat_http_requests_total",
			Help: "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		passesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "floatchat_sync_passes_total",
			Help: "Dashboard synchronization passes by trigger",
		}, []string{"trigger"}),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "floatchat_sync_pass_duration_seconds",
			Help:    "Duration of dashboard synchronization passes",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
		activeFloats: factory.NewGauge(prometheus.GaugeOpts{
			Name: "floatchat_session_active_floats",
			Help: "Active floats in the session's current views",
		}),
		dataPoints: factory.NewGauge(prometheus.GaugeOpts{
			Name: "floatchat_session_data_points",
			Help: "Data points in the session's current views",
		}),
	}
}

// ObservePass records a session pass. It satisfies dashboard.Observer.
func (m *Metrics) ObservePass(trigger dashboard.Trigger, v dashboard.Views, elapsed time.Duration) {
	m.passesTotal.WithLabelValues(string(trigger)).Inc()
	m.passDuration.Observe(elapsed.Seconds())
	m.activeFloats.Set(float64(v.Stats.ActiveFloats))
	m.dataPoints.Set(float64(v.Stats.DataPoints))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
