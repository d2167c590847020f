package underwriting

import (
	"math"
	"reflect"
	"testing"
)

const eps = 0.0001

func baselineInputs() CalculatorInputs {
	// The standard 6-bed demo facility used across the coaching material.
	return CalculatorInputs{
		BedCount:                  6,
		RatePerBed:                907,
		OccupancyRate:             90,
		MonthlyRent:               2000,
		MonthlyUtilities:          400,
		StaffingCosts:             0,
		InsuranceCost:             200,
		FoodCost:                  600,
		MiscExpenses:              200,
		MaintenanceReservePercent: 15,
	}
}

func TestSimpleOutput_BaselineFacility(t *testing.T) {
	out := CalculateSimpleOutput(baselineInputs())

	// maxRev = 6 * 907 = 5442
	// gross  = 5442 * 0.90 = 4897.80
	// reserve = 4897.80 * 0.15 = 734.67
	// expenses = 2000 + 400 + 0 + 200 + 600 + 200 + 734.67 = 4134.67
	// profit = 4897.80 - 4134.67 = 763.13
	if math.Abs(out.MonthlyGrossRevenue-4897.80) > eps {
		t.Errorf("gross revenue: expected 4897.80, got %f", out.MonthlyGrossRevenue)
	}
	if math.Abs(out.TotalMonthlyExpenses-4134.67) > eps {
		t.Errorf("expenses: expected 4134.67, got %f", out.TotalMonthlyExpenses)
	}
	if math.Abs(out.MonthlyNetProfit-763.13) > eps {
		t.Errorf("net profit: expected 763.13, got %f", out.MonthlyNetProfit)
	}

	// breakEven = 4134.67 / 5442 * 100
	expectedBE := 4134.67 / 5442.0 * 100
	if math.Abs(out.BreakEvenOccupancy-expectedBE) > eps {
		t.Errorf("break-even: expected %f, got %f", expectedBE, out.BreakEvenOccupancy)
	}

	// margin = 763.13 / 4897.80 * 100
	expectedMargin := 763.13 / 4897.80 * 100
	if math.Abs(out.ProfitMargin-expectedMargin) > eps {
		t.Errorf("margin: expected %f, got %f", expectedMargin, out.ProfitMargin)
	}

	if !out.IsViable {
		t.Error("baseline facility should be viable")
	}
}

func TestSimpleOutput_AnnualizationIdentity(t *testing.T) {
	out := CalculateSimpleOutput(baselineInputs())

	if out.AnnualGrossRevenue != out.MonthlyGrossRevenue*12 {
		t.Errorf("annual gross %f != 12 * monthly gross %f", out.AnnualGrossRevenue, out.MonthlyGrossRevenue)
	}
	if out.AnnualNetProfit != out.MonthlyNetProfit*12 {
		t.Errorf("annual profit %f != 12 * monthly profit %f", out.AnnualNetProfit, out.MonthlyNetProfit)
	}
}

func TestSimpleOutput_ZeroBedSafety(t *testing.T) {
	inputs := baselineInputs()
	inputs.BedCount = 0

	out := CalculateSimpleOutput(inputs)

	if out.MonthlyGrossRevenue != 0 {
		t.Errorf("zero beds should yield zero revenue, got %f", out.MonthlyGrossRevenue)
	}
	if out.BreakEvenOccupancy != 100 {
		t.Errorf("zero beds should report break-even 100, got %f", out.BreakEvenOccupancy)
	}
	if out.ProfitMargin != 0 {
		t.Errorf("zero revenue should report margin 0, got %f", out.ProfitMargin)
	}
	if math.IsNaN(out.MonthlyNetProfit) || math.IsInf(out.MonthlyNetProfit, 0) {
		t.Errorf("net profit must stay finite, got %f", out.MonthlyNetProfit)
	}
	if out.IsViable {
		t.Error("an empty facility cannot be viable")
	}
}

func TestSimpleOutput_OccupancyMonotonicity(t *testing.T) {
	inputs := baselineInputs()

	prevRevenue := math.Inf(-1)
	prevProfit := math.Inf(-1)
	for occ := 0.0; occ <= 100.0; occ += 5.0 {
		inputs.OccupancyRate = occ
		out := CalculateSimpleOutput(inputs)

		if out.MonthlyGrossRevenue < prevRevenue {
			t.Fatalf("revenue decreased at occupancy %f: %f < %f", occ, out.MonthlyGrossRevenue, prevRevenue)
		}
		if out.MonthlyNetProfit < prevProfit {
			t.Fatalf("profit decreased at occupancy %f: %f < %f", occ, out.MonthlyNetProfit, prevProfit)
		}
		prevRevenue = out.MonthlyGrossRevenue
		prevProfit = out.MonthlyNetProfit
	}
}

func TestSimpleOutput_Idempotence(t *testing.T) {
	inputs := baselineInputs()

	first := CalculateSimpleOutput(inputs)
	second := CalculateSimpleOutput(inputs)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different outputs: %+v vs %+v", first, second)
	}
}

func TestSimpleOutput_LossMakingFacility(t *testing.T) {
	inputs := baselineInputs()
	inputs.StaffingCosts = 6000 // sinks the deal

	out := CalculateSimpleOutput(inputs)

	if out.MonthlyNetProfit >= 0 {
		t.Errorf("expected a loss, got profit %f", out.MonthlyNetProfit)
	}
	if out.IsViable {
		t.Error("loss-making facility must not be viable")
	}
	if out.BreakEvenOccupancy <= 100 {
		t.Errorf("expenses above max revenue should push break-even past 100, got %f", out.BreakEvenOccupancy)
	}
}
