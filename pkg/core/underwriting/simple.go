package underwriting

// CalculateSimpleOutput computes steady-state monthly and annual economics.
// Total over the valid input domain: a zero bed count or zero revenue yields
// defined sentinel values (revenue 0, break-even 100, margin 0), never NaN.
func CalculateSimpleOutput(inputs CalculatorInputs) SimpleOutput {
	// 1. Revenue at full and target occupancy
	maxMonthlyRevenue := float64(inputs.BedCount) * inputs.RatePerBed
	monthlyGrossRevenue := maxMonthlyRevenue * (inputs.OccupancyRate / 100)

	// 2. Expenses. The maintenance reserve scales with actual revenue.
	maintenanceReserve := monthlyGrossRevenue * (inputs.MaintenanceReservePercent / 100)
	totalMonthlyExpenses := inputs.MonthlyRent + inputs.MonthlyUtilities +
		inputs.StaffingCosts + inputs.InsuranceCost + inputs.FoodCost +
		inputs.MiscExpenses + maintenanceReserve

	// 3. Profit
	monthlyNetProfit := monthlyGrossRevenue - totalMonthlyExpenses

	// 4. Break-even occupancy. The expense figure used here keeps the reserve
	// term at its target-occupancy value rather than recomputing it at the
	// break-even point, matching the original tool's behavior.
	breakEvenOccupancy := 100.0
	if maxMonthlyRevenue > 0 {
		breakEvenOccupancy = (totalMonthlyExpenses / maxMonthlyRevenue) * 100
	}

	// 5. Margin
	profitMargin := 0.0
	if monthlyGrossRevenue > 0 {
		profitMargin = (monthlyNetProfit / monthlyGrossRevenue) * 100
	}

	return SimpleOutput{
		MonthlyGrossRevenue:  monthlyGrossRevenue,
		TotalMonthlyExpenses: totalMonthlyExpenses,
		MonthlyNetProfit:     monthlyNetProfit,
		BreakEvenOccupancy:   breakEvenOccupancy,
		ProfitMargin:         profitMargin,
		AnnualGrossRevenue:   monthlyGrossRevenue * 12,
		AnnualNetProfit:      monthlyNetProfit * 12,
		IsViable:             monthlyNetProfit > 0 && breakEvenOccupancy < 100,
	}
}
