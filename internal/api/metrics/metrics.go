// Package metrics defines and registers all custom Prometheus metrics for
// the vacations API. It is the single source of truth for metric names,
// labels, and help strings.
//
// promauto registers everything with the default registry at package init;
// the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vacations"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "banned", "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// GateDecisionsTotal counts authorization decisions made by the middleware
// gates.
// Labels:
//   - gate: "any", "admin", "user_or_admin"
//   - result: "allowed", "missing_token", "invalid_token", "expired_token",
//     "user_not_found", "insufficient_role", "store_error"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of authorization gate decisions, by gate and result.",
	},
	[]string{"gate", "result"},
)

// BansCreatedTotal counts administrative ban creations.
var BansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bans_created_total",
		Help:      "Total number of bans created.",
	},
)

// LikesTotal counts like/unlike actions that actually changed state.
// Label:
//   - action: "like" or "unlike"
var LikesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "likes_total",
		Help:      "Total number of effective like/unlike actions.",
	},
	[]string{"action"},
)
