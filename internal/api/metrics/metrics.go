// Package metrics defines and registers all custom Prometheus metrics for the
// PGNest hostel management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pgnest"

// ── Session metrics ──────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Labels:
//   - result: "success" or "invalid_credentials"
//   - role: the asserted role ("admin", "guest")
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result and asserted role.",
	},
	[]string{"result", "role"},
)

// SessionResumesTotal counts automatic logins from remembered credentials.
// Label:
//   - result: "success", "failed" or "none" (nothing remembered)
var SessionResumesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_resumes_total",
		Help:      "Total number of automatic login attempts from remembered credentials.",
	},
	[]string{"result"},
)

// GuardDecisionsTotal counts route-guard evaluations.
// Labels:
//   - guard: which guard evaluated ("super_admin", "pg_admin", "warden", "guest")
//   - decision: "allow" or "deny"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard evaluations, by guard and decision.",
	},
	[]string{"guard", "decision"},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// NotificationsDeliveredTotal counts notifications that were persisted.
// Label:
//   - severity: "info", "warning" or "urgent"
var NotificationsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_delivered_total",
		Help:      "Total number of notifications successfully delivered.",
	},
	[]string{"severity"},
)

// NotificationsErrorsTotal counts notifications that failed delivery.
// Label:
//   - reason: short description of the failure (e.g. "deliver_failed")
var NotificationsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_errors_total",
		Help:      "Total number of notifications that failed delivery.",
	},
	[]string{"reason"},
)

// NotificationsQueueDepth tracks the pending notifications per worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notifications_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NotificationDeliveryDuration measures one delivery from dequeue to persistence.
// Label:
//   - severity: the notification severity
var NotificationDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_delivery_duration_seconds",
		Help:      "Duration of notification delivery from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"severity"},
)
