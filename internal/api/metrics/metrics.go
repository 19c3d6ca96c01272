// Package metrics defines all custom Prometheus metrics for the insurance
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insurance"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts account registrations that succeeded.
// Label:
//   - role: the role of the created account (admin/manager/client)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// SessionsActive tracks the number of live sessions in the in-process table.
// Decremented on logout and on lazy expiry eviction.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of live sessions held in memory.",
	},
)

// ── Application metrics ───────────────────────────────────────────────────────

// ApplicationsCreatedTotal counts submitted applications.
var ApplicationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_created_total",
		Help:      "Total number of insurance applications submitted.",
	},
)

// ApplicationStatusTotal counts status transitions applied by managers.
// Label:
//   - status: the new status ("Pending", "Processed", "Rejected")
var ApplicationStatusTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_status_total",
		Help:      "Total number of application status transitions, by new status.",
	},
	[]string{"status"},
)
