package underwriting

import (
	"math"
	"reflect"
	"testing"
)

func TestAdvancedOutput_DefaultStartupSubstitution(t *testing.T) {
	out := CalculateAdvancedOutput(baselineInputs()) // no StartupCosts supplied

	// Defaults: 2500 + 15000 + 5000 + 1000 + 1 = 23501
	if math.Abs(out.StartupBreakdown.TotalStartupCosts-23501) > eps {
		t.Errorf("expected default startup total 23501, got %f", out.StartupBreakdown.TotalStartupCosts)
	}

	// Investment = 23501 + 3 * 4134.67 = 35905.01
	if math.Abs(out.TotalInvestmentRequired-35905.01) > eps {
		t.Errorf("expected total investment 35905.01, got %f", out.TotalInvestmentRequired)
	}
}

func TestAdvancedOutput_ReturnMetrics(t *testing.T) {
	out := CalculateAdvancedOutput(baselineInputs())

	// ROI = (763.13 * 12) / 35905.01 * 100
	expectedROI := (763.13 * 12) / 35905.01 * 100
	if math.Abs(out.YearOneROI-expectedROI) > eps {
		t.Errorf("ROI: expected %f, got %f", expectedROI, out.YearOneROI)
	}
	if out.CashOnCashReturn != out.YearOneROI {
		t.Errorf("cash-on-cash should equal ROI without financing inputs: %f vs %f",
			out.CashOnCashReturn, out.YearOneROI)
	}

	// Payback = round(35905.01 / 763.13) = round(47.05) = 47
	if out.PaybackPeriod != 47 {
		t.Errorf("payback: expected 47 months, got %d", out.PaybackPeriod)
	}
}

func TestAdvancedOutput_BreakEvenMonths(t *testing.T) {
	out := CalculateAdvancedOutput(baselineInputs())

	// Ramp months: 60% occ loses 624.58, 75% occ earns 69.275, then 763.13/mo.
	// Seeded at -23501, cumulative turns positive at month 34.
	if out.BreakEvenMonths != 34 {
		t.Errorf("break-even month: expected 34, got %d", out.BreakEvenMonths)
	}
}

func TestAdvancedOutput_PaybackSentinelOnLoss(t *testing.T) {
	inputs := baselineInputs()
	inputs.StaffingCosts = 6000

	out := CalculateAdvancedOutput(inputs)

	if out.PaybackPeriod != NotReachedSentinel {
		t.Errorf("loss-making deal must report payback sentinel %d, got %d", NotReachedSentinel, out.PaybackPeriod)
	}
	if out.BreakEvenMonths != NotReachedSentinel {
		t.Errorf("loss-making deal must report break-even sentinel %d, got %d", NotReachedSentinel, out.BreakEvenMonths)
	}
}

func TestAdvancedOutput_MonthsOfReserveGuard(t *testing.T) {
	var zero CalculatorInputs // no revenue, no expenses
	out := CalculateAdvancedOutput(zero)

	if out.StartupBreakdown.MonthsOfReserve != NotReachedSentinel {
		t.Errorf("zero expenses should report reserve sentinel, got %f", out.StartupBreakdown.MonthsOfReserve)
	}
	if math.IsNaN(out.StartupBreakdown.MonthsOfReserve) {
		t.Error("months of reserve must never be NaN")
	}
}

func TestAdvancedOutput_ExplicitStartupCosts(t *testing.T) {
	inputs := baselineInputs()
	inputs.StartupCosts = &StartupCosts{
		LicensingCosts:  3000,
		RenovationCosts: 20000,
		FurnitureCosts:  8000,
		MarketingCosts:  2000,
		ReserveFund:     10000,
	}

	out := CalculateAdvancedOutput(inputs)

	if math.Abs(out.StartupBreakdown.TotalStartupCosts-43000) > eps {
		t.Errorf("expected startup total 43000, got %f", out.StartupBreakdown.TotalStartupCosts)
	}
	// Reserve coverage = 10000 / 4134.67
	expected := 10000 / 4134.67
	if math.Abs(out.StartupBreakdown.MonthsOfReserve-expected) > eps {
		t.Errorf("months of reserve: expected %f, got %f", expected, out.StartupBreakdown.MonthsOfReserve)
	}
}

func TestAdvancedOutput_SensitivityAnalysis(t *testing.T) {
	inputs := baselineInputs()
	inputs.StaffingCosts = 2000

	out := CalculateAdvancedOutput(inputs)

	if len(out.SensitivityAnalysis) != 3 {
		t.Fatalf("expected 3 sensitivity variables, got %d", len(out.SensitivityAnalysis))
	}

	byName := map[string]SensitivityResult{}
	for _, r := range out.SensitivityAnalysis {
		if r.ChangePercent != -10 {
			t.Errorf("%s: expected -10%% shock, got %f", r.Variable, r.ChangePercent)
		}
		byName[r.Variable] = r
	}

	// Losing occupancy or rate hurts profit; cutting staffing cost helps it.
	if byName["occupancy_rate"].ImpactOnProfit >= 0 {
		t.Errorf("occupancy shock should reduce profit, got %f", byName["occupancy_rate"].ImpactOnProfit)
	}
	if byName["rate_per_bed"].ImpactOnProfit >= 0 {
		t.Errorf("rate shock should reduce profit, got %f", byName["rate_per_bed"].ImpactOnProfit)
	}
	// Staffing 2000 -> 1800 adds exactly 200 to monthly profit.
	if math.Abs(byName["staffing_costs"].ImpactOnProfit-200) > eps {
		t.Errorf("staffing shock should add 200 profit, got %f", byName["staffing_costs"].ImpactOnProfit)
	}
}

func TestAdvancedOutput_Idempotence(t *testing.T) {
	inputs := baselineInputs()
	inputs.StartupCosts = &StartupCosts{ReserveFund: 5000}

	first := CalculateAdvancedOutput(inputs)
	second := CalculateAdvancedOutput(inputs)

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different advanced outputs")
	}
}
