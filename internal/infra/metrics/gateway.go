package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		gatewayRequestsTotal,
		gatewayRequestDuration,
	)
}

var (
	gatewayRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Gateway operations by outcome (approved/declined/error/restricted/transport_error/malformed).",
		},
		[]string{"operation", "outcome"},
	)

	gatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Wall time of one processor round trip, per operation.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func IncGatewayRequest(operation, outcome string) {
	gatewayRequestsTotal.WithLabelValues(norm(operation), norm(outcome)).Inc()
}

func ObserveGatewayDuration(operation string, seconds float64) {
	gatewayRequestDuration.WithLabelValues(norm(operation)).Observe(seconds)
}

func norm(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
