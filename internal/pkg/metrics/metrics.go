package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus collectors. All methods are safe
// on a nil receiver so tests can skip wiring it.
type Metrics struct {
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	bookings        *prometheus.CounterVec
	paymentEvents   *prometheus.CounterVec
	providerLatency *prometheus.HistogramVec
	emails          *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirpackens",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wirpackens",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirpackens",
			Subsystem: "booking",
			Name:      "created_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		paymentEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirpackens",
			Subsystem: "payment",
			Name:      "webhook_events_total",
			Help:      "Stripe webhook events by type and result",
		}, []string{"event_type", "result"}),
		providerLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "wirpackens",
			Subsystem: "stripe",
			Name:      "request_duration_seconds",
			Help:      "Latency of Stripe API calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "outcome"}),
		emails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wirpackens",
			Subsystem: "mail",
			Name:      "sent_total",
			Help:      "Notification emails by kind and status",
		}, []string{"kind", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.httpRequests, m.httpLatency, m.bookings, m.paymentEvents, m.providerLatency, m.emails)
	return m
}

func (m *Metrics) ObserveHTTP(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveWebhook(eventType, result string) {
	if m == nil {
		return
	}
	m.paymentEvents.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) ObserveProvider(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.providerLatency.WithLabelValues(operation, outcome).Observe(seconds)
}

func (m *Metrics) ObserveEmail(kind string, sent bool) {
	if m == nil {
		return
	}
	status := "sent"
	if !sent {
		status = "failed"
	}
	m.emails.WithLabelValues(kind, status).Inc()
}

// Handler exposes the gatherer in the prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
