package domain

// Plan enumerates billing tiers.
type Plan string

const (
	PlanFree    Plan = "FREE"
	PlanPro     Plan = "PRO"
	PlanPremium Plan = "PREMIUM"
)

// PlanLimits is the canonical ceiling pair a tier grants on (re)subscription.
type PlanLimits struct {
	MaxDaily   int
	MaxMonthly int
}

// PlanCatalog maps each tier to its canonical credit ceilings.
var PlanCatalog = map[Plan]PlanLimits{
	PlanFree:    {MaxDaily: 5, MaxMonthly: 50},
	PlanPro:     {MaxDaily: 50, MaxMonthly: 1000},
	PlanPremium: {MaxDaily: 100, MaxMonthly: 5000},
}

// AdminLimits is the sentinel ceiling pair granted to administrator accounts.
// Admins never consume, the large values only keep balance rendering sane.
var AdminLimits = PlanLimits{MaxDaily: 999, MaxMonthly: 9999}

// ValidPlan reports whether the tier is part of the catalog.
func ValidPlan(p Plan) bool {
	_, ok := PlanCatalog[p]
	return ok
}

// Grant returns a fully replenished pool sized to the limits.
func (l PlanLimits) Grant() CreditPool {
	return CreditPool{
		Daily:      l.MaxDaily,
		MaxDaily:   l.MaxDaily,
		Monthly:    l.MaxMonthly,
		MaxMonthly: l.MaxMonthly,
	}
}
