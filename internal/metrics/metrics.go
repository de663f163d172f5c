package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the marketplace counters exposed on /metrics.
type Metrics struct {
	PurchaseAttempts  *prometheus.CounterVec
	OrderStatusMoves  *prometheus.CounterVec
	PurchaseConflicts prometheus.Counter
}

// New registers and returns the marketplace metrics. Call once at startup.
func New() *Metrics {
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "artmarket",
		Name:      "purchase_attempts_total",
		Help:      "Purchase attempts by outcome.",
	}, []string{"outcome"})
	moves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "artmarket",
		Name:      "order_status_updates_total",
		Help:      "Admin order status updates by target status.",
	}, []string{"status"})
	conflicts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "artmarket",
		Name:      "purchase_conflicts_total",
		Help:      "Purchases that lost the availability race.",
	})

	prometheus.MustRegister(attempts, moves, conflicts)
	return &Metrics{
		PurchaseAttempts:  attempts,
		OrderStatusMoves:  moves,
		PurchaseConflicts: conflicts,
	}
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
