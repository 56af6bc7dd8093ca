// Package metrics defines and registers all custom Prometheus metrics for the
// barbershop dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "barbearia"

// ReportsGeneratedTotal counts computed reports.
// Labels:
//   - kind: "receitas", "grafico", or "despesas-resumo"
//   - tenant: tenant id, or "todos" for the aggregate view
var ReportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_generated_total",
		Help:      "Total number of reports computed, by kind and tenant.",
	},
	[]string{"kind", "tenant"},
)

// TenantFailuresTotal counts tenants skipped during cross-tenant aggregation.
// Label:
//   - tenant: the tenant id whose query failed
var TenantFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tenant_failures_total",
		Help:      "Total number of tenants skipped in aggregate views due to errors.",
	},
	[]string{"tenant"},
)

// ReportCacheTotal counts report cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of report cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LoginsTotal counts admin login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of admin login attempts, labelled by result.",
	},
	[]string{"result"},
)
