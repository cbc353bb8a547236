// Package metrics defines and registers all custom Prometheus metrics for
// the user-management API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usersystem"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - outcome: "success", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// LoginDuration measures end-to-end login handling, dominated by the bcrypt
// comparison.
var LoginDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "login_duration_seconds",
		Help:      "Duration of login handling from request to response.",
		Buckets:   prometheus.DefBuckets,
	},
)

// TokensRejectedTotal counts token verifications that failed.
// Label:
//   - reason: "missing", "malformed", "signature", or "expired"
var TokensRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_rejected_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// ── Provisioning metrics ──────────────────────────────────────────────────────

// AdminsCreatedTotal counts successfully provisioned admins.
// Label:
//   - admin_role: "SUPER_ADMIN", "MANAGER", or "DEV"
var AdminsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admins_created_total",
		Help:      "Total number of admin accounts provisioned, by admin role.",
	},
	[]string{"admin_role"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
