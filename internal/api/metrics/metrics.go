// Package metrics defines and registers all custom Prometheus metrics for
// the NomadNav travel API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the /metrics endpoint is wired by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nomadnav"

// ── Price report metrics ──────────────────────────────────────────────────────

// PricesCreatedTotal counts successfully created price reports.
// Label:
//   - category: the report category (e.g. "Food", "Transport")
var PricesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "prices_created_total",
		Help:      "Total number of price reports created, by category.",
	},
	[]string{"category"},
)

// PriceMutationsDeniedTotal counts update/delete attempts rejected by the
// authorization policy.
// Label:
//   - operation: "update" or "delete"
var PriceMutationsDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_mutations_denied_total",
		Help:      "Total number of price mutations denied by the ownership policy.",
	},
	[]string{"operation"},
)

// ── Country metrics ───────────────────────────────────────────────────────────

// CountryCacheTotal counts country-by-code cache lookups.
// Label:
//   - result: "hit" or "miss"
var CountryCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "country_cache_total",
		Help:      "Total number of country cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
