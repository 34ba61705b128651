package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pidelocal"

var (
	once sync.Once

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status code.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	ordersCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Count of orders created by payment method.",
		},
		[]string{"payment_method"},
	)

	orderStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Count of order status transitions by target status.",
		},
		[]string{"status"},
	)

	slotRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_rejections_total",
			Help:      "Count of orders rejected because the pickup slot was not offered.",
		},
	)

	authorizationDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_decisions_total",
			Help:      "Count of admin authorization decisions.",
		},
		[]string{"allowed", "super_admin"},
	)

	paymentWebhooks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_webhooks_total",
			Help:      "Count of payment webhook events by type and outcome.",
		},
		[]string{"event", "outcome"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequestDuration,
			ordersCreated,
			orderStatusChanges,
			slotRejections,
			authorizationDecisions,
			paymentWebhooks,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

func IncOrderCreated(paymentMethod string) {
	ordersCreated.WithLabelValues(paymentMethod).Inc()
}

func IncOrderStatusChanged(status string) {
	orderStatusChanges.WithLabelValues(status).Inc()
}

func IncSlotRejected() {
	slotRejections.Inc()
}

func IncAuthorizationDecision(allowed, isSuperAdmin bool) {
	authorizationDecisions.WithLabelValues(strconv.FormatBool(allowed), strconv.FormatBool(isSuperAdmin)).Inc()
}

func IncPaymentWebhook(event, outcome string) {
	paymentWebhooks.WithLabelValues(event, outcome).Inc()
}
