package underwriting

import "math"

// sensitivityShock is the fixed one-variable perturbation applied during
// sensitivity analysis.
const sensitivityShock = -0.10

// operatingBufferMonths of expenses are added to startup costs to size the
// total investment.
const operatingBufferMonths = 3

// CalculateAdvancedOutput extends the moderate tier with startup-cost
// amortization, return metrics and one-variable sensitivity analysis.
// When inputs carry no StartupCosts the documented defaults are substituted
// so the calculator always produces a result.
func CalculateAdvancedOutput(inputs CalculatorInputs) AdvancedOutput {
	moderate := CalculateModerateOutput(inputs)

	startup := DefaultStartupCosts()
	if inputs.StartupCosts != nil {
		startup = *inputs.StartupCosts
	}

	// 1. Startup breakdown
	totalStartup := startup.Total()
	monthsOfReserve := float64(NotReachedSentinel)
	if moderate.TotalMonthlyExpenses > 0 {
		monthsOfReserve = startup.ReserveFund / moderate.TotalMonthlyExpenses
	}

	// 2. Total cash required: startup plus an operating buffer
	totalInvestment := totalStartup + operatingBufferMonths*moderate.TotalMonthlyExpenses

	// 3. Months until cumulative profit recovers the startup spend. The ramp
	// projection is extended past month 12 at steady-state profit.
	breakEvenMonths := breakEvenMonth(inputs, totalStartup)

	// 4. Return metrics
	yearOneROI := 0.0
	if totalInvestment > 0 {
		yearOneROI = (moderate.AnnualNetProfit / totalInvestment) * 100
	}
	// Without financing inputs the model does not split debt from equity, so
	// cash-on-cash collapses to ROI over total cash invested.
	cashOnCash := yearOneROI

	payback := NotReachedSentinel
	if moderate.MonthlyNetProfit > 0 {
		payback = int(math.Round(totalInvestment / moderate.MonthlyNetProfit))
	}

	return AdvancedOutput{
		ModerateOutput: moderate,
		StartupBreakdown: StartupBreakdown{
			LicensingCosts:    startup.LicensingCosts,
			RenovationCosts:   startup.RenovationCosts,
			FurnitureCosts:    startup.FurnitureCosts,
			MarketingCosts:    startup.MarketingCosts,
			ReserveFund:       startup.ReserveFund,
			TotalStartupCosts: totalStartup,
			MonthsOfReserve:   monthsOfReserve,
		},
		BreakEvenMonths:         breakEvenMonths,
		YearOneROI:              yearOneROI,
		CashOnCashReturn:        cashOnCash,
		PaybackPeriod:           payback,
		TotalInvestmentRequired: totalInvestment,
		SensitivityAnalysis:     sensitivityAnalysis(inputs),
	}
}

// breakEvenMonth walks the ramped projection with cumulative profit seeded at
// -totalStartup and returns the first month at which it reaches zero, or the
// sentinel when steady-state profit can never close the gap.
func breakEvenMonth(inputs CalculatorInputs, totalStartup float64) int {
	cumulative := -totalStartup
	for month := 1; month < NotReachedSentinel; month++ {
		monthInputs := inputs
		monthInputs.OccupancyRate = rampOccupancy(inputs.OccupancyRate, month)
		profit := CalculateSimpleOutput(monthInputs).MonthlyNetProfit

		cumulative += profit
		if cumulative >= 0 {
			return month
		}
		// Past the ramp the monthly profit is constant; a non-positive value
		// will never recover the remaining deficit.
		if month >= RampUpMonths && profit <= 0 {
			break
		}
	}
	return NotReachedSentinel
}

// sensitivityAnalysis perturbs one variable at a time by sensitivityShock and
// records the resulting change in monthly net profit. Perturbations are
// independent; results are never combined.
func sensitivityAnalysis(inputs CalculatorInputs) []SensitivityResult {
	baseline := CalculateSimpleOutput(inputs).MonthlyNetProfit

	variables := []struct {
		name  string
		base  float64
		apply func(*CalculatorInputs, float64)
	}{
		{"occupancy_rate", inputs.OccupancyRate, func(in *CalculatorInputs, v float64) { in.OccupancyRate = v }},
		{"rate_per_bed", inputs.RatePerBed, func(in *CalculatorInputs, v float64) { in.RatePerBed = v }},
		{"staffing_costs", inputs.StaffingCosts, func(in *CalculatorInputs, v float64) { in.StaffingCosts = v }},
	}

	results := make([]SensitivityResult, 0, len(variables))
	for _, variable := range variables {
		adjusted := variable.base * (1 + sensitivityShock)

		perturbed := inputs
		variable.apply(&perturbed, adjusted)
		profit := CalculateSimpleOutput(perturbed).MonthlyNetProfit

		impact := profit - baseline
		impactPercent := 0.0
		if baseline != 0 {
			impactPercent = (impact / math.Abs(baseline)) * 100
		}

		results = append(results, SensitivityResult{
			Variable:       variable.name,
			BaseValue:      variable.base,
			AdjustedValue:  adjusted,
			ChangePercent:  sensitivityShock * 100,
			ImpactOnProfit: impact,
			ImpactPercent:  impactPercent,
		})
	}
	return results
}
