package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	CartAdds     prometheus.Counter
	OrdersPlaced prometheus.Counter

	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	reg      *prometheus.Registry
}

func New() *Metrics {
	m := &Metrics{
		CartAdds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopfront_cart_adds_total",
			Help: "Cart add operations",
		}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopfront_orders_placed_total",
			Help: "Orders persisted at checkout",
		}),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP latency",
			},
			[]string{"method", "path"},
		),
		reg: prometheus.NewRegistry(),
	}
	m.reg.MustRegister(
		m.CartAdds, m.OrdersPlaced, m.requests, m.latency,
		collectors.NewGoCollector(),
	)
	return m
}

// Middleware records one observation per request, labelled by route pattern so
// /product/:id stays one series.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		m.latency.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())
		m.requests.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		return err
	}
}

// Handler serves the exposition endpoint.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{}))
}
