// Package metrics declares the Prometheus collectors of the lending engine.
// They register with the default registry on import and are served by the
// /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "toolrental"

// LoansCreatedTotal counts loans opened.
// Label:
//   - path: "admin" when staff named the client, "self" otherwise
var LoansCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_created_total",
		Help:      "Total number of loans created.",
	},
	[]string{"path"},
)

// LoanRejectionsTotal counts loan requests refused by an eligibility rule.
// Label:
//   - reason: the rule's error code (e.g. "loan_limit_reached")
var LoanRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loan_rejections_total",
		Help:      "Total number of loan requests rejected, by rule.",
	},
	[]string{"reason"},
)

// LoansReturnedTotal counts processed returns.
// Label:
//   - condition: "good", "damaged" or "irreparable"
var LoansReturnedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_returned_total",
		Help:      "Total number of loans returned, by reported condition.",
	},
	[]string{"condition"},
)

// FinesCreatedTotal counts fines issued.
// Label:
//   - kind: "late_return", "repairable_damage" or "irreparable_damage"
var FinesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fines_created_total",
		Help:      "Total number of fines created, by kind.",
	},
	[]string{"kind"},
)

// FinesPaidTotal counts settled fines.
var FinesPaidTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fines_paid_total",
		Help:      "Total number of fines paid.",
	},
)
