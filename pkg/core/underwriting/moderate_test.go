package underwriting

import (
	"math"
	"testing"
)

func TestModerateOutput_ProjectionShape(t *testing.T) {
	out := CalculateModerateOutput(baselineInputs())

	if len(out.CashFlowProjection) != 12 {
		t.Fatalf("expected 12 projection months, got %d", len(out.CashFlowProjection))
	}
	if out.RampUpMonths != RampUpMonths {
		t.Errorf("expected ramp of %d months, got %d", RampUpMonths, out.RampUpMonths)
	}
	for i, p := range out.CashFlowProjection {
		if p.Month != i+1 {
			t.Errorf("projection row %d has month %d", i, p.Month)
		}
	}
}

func TestModerateOutput_RampIsMonotonicAndReachesTarget(t *testing.T) {
	inputs := baselineInputs()
	out := CalculateModerateOutput(inputs)

	prev := 0.0
	for _, p := range out.CashFlowProjection {
		if p.OccupancyRate < prev {
			t.Fatalf("occupancy ramp decreased at month %d: %f < %f", p.Month, p.OccupancyRate, prev)
		}
		prev = p.OccupancyRate
	}

	// From the end of the ramp onward, occupancy holds at target.
	for _, p := range out.CashFlowProjection[RampUpMonths:] {
		if math.Abs(p.OccupancyRate-inputs.OccupancyRate) > eps {
			t.Errorf("month %d should hold target occupancy %f, got %f", p.Month, inputs.OccupancyRate, p.OccupancyRate)
		}
	}
}

func TestModerateOutput_CumulativeProfitIsRunningSum(t *testing.T) {
	out := CalculateModerateOutput(baselineInputs())

	sum := 0.0
	for _, p := range out.CashFlowProjection {
		sum += p.NetProfit
		if math.Abs(p.CumulativeProfit-sum) > eps {
			t.Errorf("month %d cumulative: expected %f, got %f", p.Month, sum, p.CumulativeProfit)
		}
		if math.Abs(p.NetProfit-(p.GrossRevenue-p.Expenses)) > eps {
			t.Errorf("month %d profit does not tie to revenue minus expenses", p.Month)
		}
	}
}

func TestModerateOutput_ScenarioOrdering(t *testing.T) {
	cases := []CalculatorInputs{
		baselineInputs(),
		{BedCount: 10, RatePerBed: 500, OccupancyRate: 70, MonthlyRent: 3000, MaintenanceReservePercent: 10},
		{BedCount: 1, RatePerBed: 1200, OccupancyRate: 100, StaffingCosts: 2000},
	}

	for i, inputs := range cases {
		sa := CalculateModerateOutput(inputs).ScenarioAnalysis
		if sa.Conservative.MonthlyNetProfit > sa.Moderate.MonthlyNetProfit {
			t.Errorf("case %d: conservative profit %f exceeds moderate %f",
				i, sa.Conservative.MonthlyNetProfit, sa.Moderate.MonthlyNetProfit)
		}
		if sa.Moderate.MonthlyNetProfit > sa.Optimistic.MonthlyNetProfit {
			t.Errorf("case %d: moderate profit %f exceeds optimistic %f",
				i, sa.Moderate.MonthlyNetProfit, sa.Optimistic.MonthlyNetProfit)
		}
	}
}

func TestModerateOutput_ScenarioOccupancyLevels(t *testing.T) {
	inputs := baselineInputs()
	sa := CalculateModerateOutput(inputs).ScenarioAnalysis

	check := func(name string, got SimpleOutput, occ float64) {
		expected := simpleAtOccupancy(inputs, occ)
		if math.Abs(got.MonthlyGrossRevenue-expected.MonthlyGrossRevenue) > eps {
			t.Errorf("%s scenario should run at %.0f%% occupancy", name, occ)
		}
	}
	check("conservative", sa.Conservative, 85)
	check("moderate", sa.Moderate, 90)
	check("optimistic", sa.Optimistic, 95)
}
