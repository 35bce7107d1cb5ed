package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests labeled by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	receiptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "receipts_total",
			Help: "Submitted receipts labeled by outcome",
		},
		[]string{"outcome"},
	)
	orderLinesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_lines_total",
			Help: "Order lines recorded from receipts",
		},
	)
	menusCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "menus_created_total",
			Help: "Menus created on the fly while reconciling receipts",
		},
	)
	idempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "idempotent_replays_total",
			Help: "Requests answered from a stored idempotent response",
		},
	)
)

// RecordHTTP increments request counters and records latency.
func RecordHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReceipt tracks one reconciliation. lines and menusCreated are only
// counted for committed receipts.
func RecordReceipt(outcome string, lines, menusCreated int) {
	if outcome == "" {
		outcome = "unknown"
	}

	receiptsTotal.WithLabelValues(outcome).Inc()
	if outcome != "ok" {
		return
	}
	orderLinesTotal.Add(float64(lines))
	menusCreatedTotal.Add(float64(menusCreated))
}

func RecordIdempotentReplay() {
	idempotentReplaysTotal.Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
