package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	totalRequests   *prometheus.CounterVec
	durationSec     *prometheus.HistogramVec
	inflightRequest *prometheus.GaugeVec
}

// NewMetrics registers the HTTP request collectors on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	labels := []string{"route", "method", "code"}
	inflightLabels := []string{"method"}

	t := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of requests",
	}, labels)
	d := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_duration_seconds",
		Help:      "Duration of requests",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, labels)
	i := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_inflight",
		Help:      "Number of inflight requests",
	}, inflightLabels)

	reg.MustRegister(t, d, i)

	return &Metrics{
		totalRequests:   t,
		durationSec:     d,
		inflightRequest: i,
	}
}

// Handler records request count, latency and inflight gauge. The route label
// is read after the chain has run, once fiber has matched the final route.
func (m *Metrics) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := time.Now()
		method := c.Method()

		m.inflightRequest.WithLabelValues(method).Inc()
		defer m.inflightRequest.WithLabelValues(method).Dec()

		err := c.Next()

		routeLabel := "<unmatched>"
		if r := c.Route(); r != nil && r.Path != "" {
			routeLabel = r.Path
		}

		code := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		} else if err != nil {
			code = fiber.StatusInternalServerError
		}

		labelsWithCode := []string{routeLabel, method, strconv.Itoa(code)}
		m.totalRequests.WithLabelValues(labelsWithCode...).Inc()
		m.durationSec.WithLabelValues(labelsWithCode...).Observe(time.Since(s).Seconds())
		return err
	}
}
