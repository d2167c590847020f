package underwriting

// Fixed occupancy levels for the scenario analysis.
const (
	scenarioConservative = 85.0
	scenarioModerate     = 90.0
	scenarioOptimistic   = 95.0
)

// rampOccupancy returns the assumed occupancy for a given month of operation.
// The facility opens at half the target and climbs linearly to target over
// RampUpMonths, holding steady afterwards. Monotonic non-decreasing.
func rampOccupancy(target float64, month int) float64 {
	if month >= RampUpMonths {
		return target
	}
	start := target * 0.5
	return start + (target-start)*float64(month)/float64(RampUpMonths)
}

// CalculateModerateOutput extends the simple tier with a 12-month ramp-up
// cash flow projection and three fixed-occupancy scenarios.
func CalculateModerateOutput(inputs CalculatorInputs) ModerateOutput {
	base := CalculateSimpleOutput(inputs)

	// 1. Ramp-up projection. Each month is a full simple calculation with the
	// ramped occupancy substituted for the target; no startup costs are netted
	// out at this tier.
	projection := make([]MonthlyProjection, 0, 12)
	cumulative := 0.0
	for month := 1; month <= 12; month++ {
		monthInputs := inputs
		monthInputs.OccupancyRate = rampOccupancy(inputs.OccupancyRate, month)
		monthOut := CalculateSimpleOutput(monthInputs)

		cumulative += monthOut.MonthlyNetProfit
		projection = append(projection, MonthlyProjection{
			Month:            month,
			OccupancyRate:    monthInputs.OccupancyRate,
			GrossRevenue:     monthOut.MonthlyGrossRevenue,
			Expenses:         monthOut.TotalMonthlyExpenses,
			NetProfit:        monthOut.MonthlyNetProfit,
			CumulativeProfit: cumulative,
		})
	}

	// 2. Scenario analysis at fixed occupancy levels, all other inputs held.
	return ModerateOutput{
		SimpleOutput:       base,
		CashFlowProjection: projection,
		ScenarioAnalysis: ScenarioAnalysis{
			Conservative: simpleAtOccupancy(inputs, scenarioConservative),
			Moderate:     simpleAtOccupancy(inputs, scenarioModerate),
			Optimistic:   simpleAtOccupancy(inputs, scenarioOptimistic),
		},
		RampUpMonths: RampUpMonths,
	}
}

func simpleAtOccupancy(inputs CalculatorInputs, occupancy float64) SimpleOutput {
	inputs.OccupancyRate = occupancy
	return CalculateSimpleOutput(inputs)
}
