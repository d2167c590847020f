// Command verify_model runs the underwriting engine over the standard six-bed
// scenario and prints every tier, so changes to the calculators can be checked
// by eye against known-good numbers.
package main

import (
	"fmt"

	"grouphome_coaching/pkg/core/underwriting"
)

func main() {
	inputs := underwriting.DefaultInputs()

	fmt.Println("====================================================================")
	fmt.Println("            GROUP HOME UNDERWRITING MODEL VERIFICATION")
	fmt.Println("====================================================================")
	fmt.Printf("Beds: %d  Rate/bed: %s  Occupancy: %s\n",
		inputs.BedCount,
		underwriting.FormatCurrency(inputs.RatePerBed),
		underwriting.FormatPercent(inputs.OccupancyRate))

	pRow := func(label string, value string) {
		fmt.Printf("%-32s | %15s\n", label, value)
	}

	// --- Simple tier ---
	simple := underwriting.CalculateSimpleOutput(inputs)
	fmt.Println("\n--- Simple ---")
	pRow("Gross monthly revenue", underwriting.FormatCurrency(simple.MonthlyGrossRevenue))
	pRow("Total monthly expenses", underwriting.FormatCurrency(simple.TotalMonthlyExpenses))
	pRow("Monthly net profit", underwriting.FormatCurrency(simple.MonthlyNetProfit))
	pRow("Annual gross revenue", underwriting.FormatCurrency(simple.AnnualGrossRevenue))
	pRow("Annual net profit", underwriting.FormatCurrency(simple.AnnualNetProfit))
	pRow("Profit margin", underwriting.FormatPercent(simple.ProfitMargin))
	pRow("Break-even occupancy", underwriting.FormatPercent(simple.BreakEvenOccupancy))
	pRow("Status", underwriting.ViabilityStatus(simple))

	// --- Moderate tier ---
	moderate := underwriting.CalculateModerateOutput(inputs)
	fmt.Println("\n--- Moderate: 12-month ramp-up projection ---")
	fmt.Printf("%-5s | %9s | %12s | %12s | %12s\n", "Month", "Occupancy", "Revenue", "Profit", "Cumulative")
	for _, m := range moderate.CashFlowProjection {
		fmt.Printf("%-5d | %8.1f%% | %12s | %12s | %12s\n",
			m.Month,
			m.OccupancyRate,
			underwriting.FormatCurrency(m.GrossRevenue),
			underwriting.FormatCurrency(m.NetProfit),
			underwriting.FormatCurrency(m.CumulativeProfit))
	}
	fmt.Println("\nScenarios:")
	pScenario := func(label string, s underwriting.SimpleOutput) {
		fmt.Printf("  %-12s profit %s (margin %s)\n",
			label,
			underwriting.FormatCurrency(s.MonthlyNetProfit),
			underwriting.FormatPercent(s.ProfitMargin))
	}
	pScenario("conservative", moderate.ScenarioAnalysis.Conservative)
	pScenario("moderate", moderate.ScenarioAnalysis.Moderate)
	pScenario("optimistic", moderate.ScenarioAnalysis.Optimistic)

	// --- Advanced tier ---
	advanced := underwriting.CalculateAdvancedOutput(inputs)
	fmt.Println("\n--- Advanced ---")
	pRow("Total startup costs", underwriting.FormatCurrency(advanced.StartupBreakdown.TotalStartupCosts))
	pRow("Total investment required", underwriting.FormatCurrency(advanced.TotalInvestmentRequired))
	pRow("Year-one ROI", underwriting.FormatPercent(advanced.YearOneROI))
	pRow("Cash-on-cash return", underwriting.FormatPercent(advanced.CashOnCashReturn))
	if advanced.PaybackPeriod >= underwriting.NotReachedSentinel {
		pRow("Payback period", "not reached")
	} else {
		pRow("Payback period", fmt.Sprintf("%d months", advanced.PaybackPeriod))
	}
	if advanced.BreakEvenMonths >= underwriting.NotReachedSentinel {
		pRow("Break-even month", "not reached")
	} else {
		pRow("Break-even month", fmt.Sprintf("month %d", advanced.BreakEvenMonths))
	}
	pRow("Months of reserve", fmt.Sprintf("%.1f", advanced.StartupBreakdown.MonthsOfReserve))

	fmt.Println("\nSensitivity (-10% shocks):")
	for _, s := range advanced.SensitivityAnalysis {
		fmt.Printf("  %-16s %.2f -> %.2f: profit impact %s (%s)\n",
			s.Variable, s.BaseValue, s.AdjustedValue,
			underwriting.FormatCurrency(s.ImpactOnProfit),
			underwriting.FormatPercent(s.ImpactPercent))
	}

	// --- Risk ---
	risk := underwriting.CalculateRiskAssessment(inputs, simple)
	fmt.Printf("\n--- Risk: %s (score %d/100) ---\n", risk.Level, risk.Score)
	for _, f := range risk.Factors {
		fmt.Printf("  [%s] %s: %s\n", f.Impact, f.Name, f.Description)
	}
	fmt.Println("====================================================================")
}
