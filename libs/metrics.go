package libs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodiefinder",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodiefinder",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method", "path"})

	OrdersCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodiefinder",
		Name:      "orders_completed_total",
		Help:      "Completed checkouts by payment method.",
	}, []string{"payment_method"})

	NotificationsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodiefinder",
		Name:      "notifications_created_total",
		Help:      "Notifications created by category.",
	}, []string{"category"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, OrdersCompleted, NotificationsCreated)
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
