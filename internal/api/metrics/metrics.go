// Package metrics defines and registers all custom Prometheus metrics for the
// InvenFlow API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invenflow"

// LoginsTotal counts login attempts.
// Labels:
//   - role: the requested role ("customer", "administrator", "supplier")
//   - outcome: "ok" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by requested role and outcome.",
	},
	[]string{"role", "outcome"},
)

// SessionsRestoredTotal counts bearer token resolutions performed by the
// session middleware.
// Label:
//   - outcome: "ok" (live session) or "revoked" (token no longer resolves)
var SessionsRestoredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_restored_total",
		Help:      "Total number of session restorations, by outcome.",
	},
	[]string{"outcome"},
)

// GateDecisionsTotal counts access gate evaluations.
// Labels:
//   - page: the page key being guarded (e.g. "inventory")
//   - decision: "allowed", "denied", or "pending"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of access gate evaluations, by page and decision.",
	},
	[]string{"page", "decision"},
)

// CheckoutsTotal counts checkout attempts.
// Label:
//   - outcome: "ok", "empty_cart", "abandoned", or "error"
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts, by outcome.",
	},
	[]string{"outcome"},
)

// OrdersCancelledTotal counts customer-initiated order cancellations.
var OrdersCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_cancelled_total",
		Help:      "Total number of orders cancelled by customers.",
	},
)

// StockAdjustmentsTotal counts manual stock adjustments.
// Label:
//   - type: "Stock In" or "Stock Out"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of manual stock adjustments, by movement type.",
	},
	[]string{"type"},
)

// CheckoutDuration measures how long a checkout takes end-to-end, including
// the simulated payment processing delay.
var CheckoutDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "checkout_duration_seconds",
		Help:      "Duration of checkout from request to order creation.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
