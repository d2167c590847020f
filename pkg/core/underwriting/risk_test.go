package underwriting

import (
	"reflect"
	"testing"
)

func TestRiskAssessment_BaselineFacility(t *testing.T) {
	inputs := baselineInputs()
	simple := CalculateSimpleOutput(inputs)

	// Break-even 75.98% (> 75, -15) and margin 15.58% (< 20, -15): score 70.
	risk := CalculateRiskAssessment(inputs, simple)

	if risk.Score != 70 {
		t.Errorf("expected score 70, got %d", risk.Score)
	}
	if risk.Level != RiskLow {
		t.Errorf("expected low risk at score 70, got %s", risk.Level)
	}
	if len(risk.Factors) != 2 {
		t.Fatalf("expected 2 factors, got %d", len(risk.Factors))
	}
	// Factors come back in evaluation order.
	if risk.Factors[0].Name != "break_even_occupancy" || risk.Factors[1].Name != "profit_margin" {
		t.Errorf("unexpected factor order: %s, %s", risk.Factors[0].Name, risk.Factors[1].Name)
	}
}

func TestRiskAssessment_CriticalOnLoss(t *testing.T) {
	inputs := baselineInputs()
	inputs.StaffingCosts = 6000
	simple := CalculateSimpleOutput(inputs)

	risk := CalculateRiskAssessment(inputs, simple)

	// Break-even > 85 (-30), margin < 15 (-30), negative profit (-25): score 15.
	if risk.Score != 15 {
		t.Errorf("expected score 15, got %d", risk.Score)
	}
	if risk.Level != RiskCritical {
		t.Errorf("expected critical level, got %s", risk.Level)
	}

	found := false
	for _, f := range risk.Factors {
		if f.Name == "negative_cash_flow" && f.Impact == RiskCritical {
			found = true
		}
	}
	if !found {
		t.Error("expected a critical negative_cash_flow factor")
	}
}

func TestRiskAssessment_ReserveCoverageFactor(t *testing.T) {
	inputs := baselineInputs()
	inputs.StartupCosts = &StartupCosts{ReserveFund: 1000} // well under 2 months
	simple := CalculateSimpleOutput(inputs)

	risk := CalculateRiskAssessment(inputs, simple)

	var reserve *RiskFactor
	for i := range risk.Factors {
		if risk.Factors[i].Name == "reserve_coverage" {
			reserve = &risk.Factors[i]
		}
	}
	if reserve == nil {
		t.Fatal("expected reserve_coverage factor when fund is thin")
	}
	if reserve.Impact != RiskModerate {
		t.Errorf("expected moderate impact, got %s", reserve.Impact)
	}

	// Without startup costs the factor never fires.
	inputs.StartupCosts = nil
	risk = CalculateRiskAssessment(inputs, simple)
	for _, f := range risk.Factors {
		if f.Name == "reserve_coverage" {
			t.Error("reserve_coverage must not fire without startup costs")
		}
	}
}

func TestRiskAssessment_BandingDeterminism(t *testing.T) {
	// Two input sets with identical derived break-even and margin must land
	// in the same band with the same score.
	a := baselineInputs()
	b := baselineInputs()

	riskA := CalculateRiskAssessment(a, CalculateSimpleOutput(a))
	riskB := CalculateRiskAssessment(b, CalculateSimpleOutput(b))

	if !reflect.DeepEqual(riskA, riskB) {
		t.Errorf("identical economics produced different assessments: %+v vs %+v", riskA, riskB)
	}
}

func TestRiskLevelForScore_BandsAreExhaustive(t *testing.T) {
	cases := []struct {
		score int
		want  RiskLevel
	}{
		{100, RiskLow},
		{70, RiskLow},
		{69, RiskModerate},
		{50, RiskModerate},
		{49, RiskHigh},
		{30, RiskHigh},
		{29, RiskCritical},
		{0, RiskCritical},
	}
	for _, c := range cases {
		if got := riskLevelForScore(c.score); got != c.want {
			t.Errorf("score %d: expected %s, got %s", c.score, c.want, got)
		}
	}
}

func TestRiskAssessment_ScoreNeverNegative(t *testing.T) {
	inputs := CalculatorInputs{
		BedCount:      1,
		RatePerBed:    100,
		OccupancyRate: 10,
		MonthlyRent:   5000,
		StaffingCosts: 8000,
		StartupCosts:  &StartupCosts{ReserveFund: 0},
	}
	risk := CalculateRiskAssessment(inputs, CalculateSimpleOutput(inputs))

	if risk.Score < 0 || risk.Score > 100 {
		t.Errorf("score out of range: %d", risk.Score)
	}
	if risk.Level != RiskCritical {
		t.Errorf("expected critical, got %s", risk.Level)
	}
}
