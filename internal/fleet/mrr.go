package fleet

import "bioacoustic-monitor/internal/domain/organization"

// PlanRates maps a subscription plan to its monthly price.
type PlanRates map[organization.Plan]float64

var DefaultPlanRates = PlanRates{
	organization.PlanEnterprise: 800,
	organization.PlanPro:        450,
	organization.PlanBasic:      200,
}

// Rate returns zero for plans the table does not know.
func (r PlanRates) Rate(plan organization.Plan) float64 {
	return r[plan]
}

// ComputeMRR sums the rate of each site's organization plan.
func ComputeMRR(sitePlans []organization.Plan, rates PlanRates) float64 {
	var total float64
	for _, plan := range sitePlans {
		total += rates.Rate(plan)
	}
	return total
}
