package underwriting

import "fmt"

// Penalty thresholds and weights for the safety score. Conditions are
// evaluated top to bottom; each triggered condition contributes one factor in
// that same order.
const (
	breakEvenSevereThreshold   = 85.0
	breakEvenModerateThreshold = 75.0
	marginSevereThreshold      = 15.0
	marginModerateThreshold    = 20.0
	reserveCoverageFloorMonths = 2.0
)

// CalculateRiskAssessment derives a 0-100 safety score and categorized risk
// factors from the simple output. Deterministic: identical break-even and
// margin figures always map to the same level and score.
func CalculateRiskAssessment(inputs CalculatorInputs, simple SimpleOutput) RiskAssessment {
	score := 100
	var factors []RiskFactor

	// 1. Break-even occupancy headroom
	switch {
	case simple.BreakEvenOccupancy > breakEvenSevereThreshold:
		score -= 30
		factors = append(factors, RiskFactor{
			Name:   "break_even_occupancy",
			Impact: RiskHigh,
			Description: fmt.Sprintf("Break-even occupancy of %.1f%% leaves almost no vacancy headroom",
				simple.BreakEvenOccupancy),
			Recommendation: "Reduce fixed expenses or raise the per-bed rate before committing",
		})
	case simple.BreakEvenOccupancy > breakEvenModerateThreshold:
		score -= 15
		factors = append(factors, RiskFactor{
			Name:   "break_even_occupancy",
			Impact: RiskModerate,
			Description: fmt.Sprintf("Break-even occupancy of %.1f%% is above the comfortable range",
				simple.BreakEvenOccupancy),
			Recommendation: "Build a waitlist strategy to keep occupancy consistently high",
		})
	}

	// 2. Profit margin
	switch {
	case simple.ProfitMargin < marginSevereThreshold:
		score -= 30
		factors = append(factors, RiskFactor{
			Name:   "profit_margin",
			Impact: RiskHigh,
			Description: fmt.Sprintf("Profit margin of %.1f%% is thin for a staffing-heavy operation",
				simple.ProfitMargin),
			Recommendation: "Revisit rate structure and expense load before scaling",
		})
	case simple.ProfitMargin < marginModerateThreshold:
		score -= 15
		factors = append(factors, RiskFactor{
			Name:   "profit_margin",
			Impact: RiskModerate,
			Description: fmt.Sprintf("Profit margin of %.1f%% is below the target band",
				simple.ProfitMargin),
		})
	}

	// 3. Operating at a loss dominates every other signal
	if simple.MonthlyNetProfit <= 0 {
		score -= 25
		factors = append(factors, RiskFactor{
			Name:           "negative_cash_flow",
			Impact:         RiskCritical,
			Description:    "The facility loses money every month at the target occupancy",
			Recommendation: "Do not proceed without restructuring rates or expenses",
		})
	}

	// 4. Reserve coverage, only assessable when startup costs are supplied
	if inputs.StartupCosts != nil && simple.TotalMonthlyExpenses > 0 {
		coverage := inputs.StartupCosts.ReserveFund / simple.TotalMonthlyExpenses
		if coverage < reserveCoverageFloorMonths {
			score -= 10
			factors = append(factors, RiskFactor{
				Name:   "reserve_coverage",
				Impact: RiskModerate,
				Description: fmt.Sprintf("Reserve fund covers %.1f months of expenses, below the %.0f-month floor",
					coverage, reserveCoverageFloorMonths),
				Recommendation: "Grow the reserve fund before opening to survive a slow ramp-up",
			})
		}
	}

	if score < 0 {
		score = 0
	}

	return RiskAssessment{
		Level:   riskLevelForScore(score),
		Score:   score,
		Factors: factors,
	}
}

// riskLevelForScore maps the numeric score to its band. Bands are monotonic
// and exhaustive.
func riskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskLow
	case score >= 50:
		return RiskModerate
	case score >= 30:
		return RiskHigh
	default:
		return RiskCritical
	}
}
