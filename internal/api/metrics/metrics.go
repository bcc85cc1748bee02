// Package metrics defines all custom Prometheus metrics for the storefront
// frontend. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves via promauto at import time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Backend client metrics ────────────────────────────────────────────────────

// BackendRequestsTotal counts calls made to the remote commerce backend.
// Labels:
//   - resource: the backend resource group ("auth", "products", "cart", "orders")
//   - outcome: "ok", "client_error", "server_error", "unauthorized", "network_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the commerce backend.",
	},
	[]string{"resource", "outcome"},
)

// BackendRequestDuration measures backend round-trip time per resource group.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of requests to the commerce backend.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"resource"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsStartedTotal counts successful logins.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of sessions opened by a successful login.",
	},
)

// SessionsEndedTotal counts session teardowns.
// Label:
//   - reason: "logout" or "expired"
var SessionsEndedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_ended_total",
		Help:      "Total number of sessions destroyed, by reason.",
	},
	[]string{"reason"},
)

// ── Cart / checkout metrics ───────────────────────────────────────────────────

// CartMutationsTotal counts cart changes pushed to the backend.
// Label:
//   - op: "add", "update", "remove"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of cart mutations sent to the backend.",
	},
	[]string{"op"},
)

// CheckoutsTotal counts checkout submissions by final flow state.
// Label:
//   - result: "redirected" or "submission_failed"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout submissions, by final state.",
	},
	[]string{"result"},
)
