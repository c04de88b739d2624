package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects the counters exposed on /metrics. The credit ledger is the
// only component with interesting cardinality, so the set stays small.
type Metrics struct {
	ConsumeAttempts *prometheus.CounterVec
	CreditsSpent    prometheus.Counter
	GenerationCalls *prometheus.CounterVec
}

// NewMetrics registers the service counters on the given registerer. Passing
// nil uses the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		ConsumeAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "credit_consume_attempts_total",
			Help: "Credit consumption attempts by feature and outcome.",
		}, []string{"feature", "outcome"}),
		CreditsSpent: factory.NewCounter(prometheus.CounterOpts{
			Name: "credits_spent_total",
			Help: "Total credits successfully deducted across all accounts.",
		}),
		GenerationCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "generation_calls_total",
			Help: "Calls to the generation provider by feature and outcome.",
		}, []string{"feature", "outcome"}),
	}
}
