// Package underwriting implements the financial viability model for a
// group-home facility: revenue/expense math, ramp-up cash flow projections,
// startup-cost amortization and a rule-based risk assessment.
//
// Every function here is pure. Callers own validation of the input domain;
// out-of-range values (negative rates, occupancy above 100) propagate through
// the arithmetic without crashing.
package underwriting

// StartupCosts captures one-time costs incurred before the first resident
// moves in. All values are monthly-currency amounts in dollars.
type StartupCosts struct {
	LicensingCosts  float64 `json:"licensing_costs"`
	RenovationCosts float64 `json:"renovation_costs"`
	FurnitureCosts  float64 `json:"furniture_costs"`
	MarketingCosts  float64 `json:"marketing_costs"`
	ReserveFund     float64 `json:"reserve_fund"`
}

// Total sums the five startup components.
func (s StartupCosts) Total() float64 {
	return s.LicensingCosts + s.RenovationCosts + s.FurnitureCosts + s.MarketingCosts + s.ReserveFund
}

// CalculatorInputs is the full input set for every calculator tier.
// StartupCosts is nil unless the advanced tier is active; absence means the
// advanced-only fields are unavailable, never inferred.
type CalculatorInputs struct {
	BedCount      int     `json:"bed_count"`
	RatePerBed    float64 `json:"rate_per_bed"`   // monthly rate per occupied bed
	OccupancyRate float64 `json:"occupancy_rate"` // target occupancy, 0-100

	MonthlyRent      float64 `json:"monthly_rent"`
	MonthlyUtilities float64 `json:"monthly_utilities"`
	StaffingCosts    float64 `json:"staffing_costs"`
	InsuranceCost    float64 `json:"insurance_cost"`
	FoodCost         float64 `json:"food_cost"`
	MiscExpenses     float64 `json:"misc_expenses"`

	// MaintenanceReservePercent is the share of gross revenue set aside for
	// upkeep and added to total expenses, 0-100.
	MaintenanceReservePercent float64 `json:"maintenance_reserve_percent"`

	StartupCosts *StartupCosts `json:"startup_costs,omitempty"`
}

// DefaultInputs returns the seed values used when a user has no stored
// calculator profile.
func DefaultInputs() CalculatorInputs {
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

// DefaultStartupCosts are substituted when the advanced tier runs without
// explicit startup figures, so the calculator always produces a result.
func DefaultStartupCosts() StartupCosts {
	return StartupCosts{
		LicensingCosts:  2500,
		RenovationCosts: 15000,
		FurnitureCosts:  5000,
		MarketingCosts:  1000,
		ReserveFund:     1,
	}
}

// SimpleOutput is the base tier: steady-state monthly and annual economics.
type SimpleOutput struct {
	MonthlyGrossRevenue  float64 `json:"monthly_gross_revenue"`
	TotalMonthlyExpenses float64 `json:"total_monthly_expenses"`
	MonthlyNetProfit     float64 `json:"monthly_net_profit"`
	BreakEvenOccupancy   float64 `json:"break_even_occupancy"` // percent
	ProfitMargin         float64 `json:"profit_margin"`        // percent
	AnnualGrossRevenue   float64 `json:"annual_gross_revenue"`
	AnnualNetProfit      float64 `json:"annual_net_profit"`
	IsViable             bool    `json:"is_viable"`
}

// MonthlyProjection is one row of the ramp-up cash flow.
type MonthlyProjection struct {
	Month            int     `json:"month"` // 1-12
	OccupancyRate    float64 `json:"occupancy_rate"`
	GrossRevenue     float64 `json:"gross_revenue"`
	Expenses         float64 `json:"expenses"`
	NetProfit        float64 `json:"net_profit"`
	CumulativeProfit float64 `json:"cumulative_profit"`
}

// ScenarioAnalysis holds the three fixed-occupancy what-if runs.
type ScenarioAnalysis struct {
	Conservative SimpleOutput `json:"conservative"` // 85% occupancy
	Moderate     SimpleOutput `json:"moderate"`     // 90% occupancy
	Optimistic   SimpleOutput `json:"optimistic"`   // 95% occupancy
}

// ModerateOutput is the middle tier: base economics plus a 12-month ramp-up
// projection and scenario analysis.
type ModerateOutput struct {
	SimpleOutput
	CashFlowProjection []MonthlyProjection `json:"cash_flow_projection"`
	ScenarioAnalysis   ScenarioAnalysis    `json:"scenario_analysis"`
	RampUpMonths       int                 `json:"ramp_up_months"`
}

// StartupBreakdown itemizes startup spend and the operating runway it buys.
type StartupBreakdown struct {
	LicensingCosts    float64 `json:"licensing_costs"`
	RenovationCosts   float64 `json:"renovation_costs"`
	FurnitureCosts    float64 `json:"furniture_costs"`
	MarketingCosts    float64 `json:"marketing_costs"`
	ReserveFund       float64 `json:"reserve_fund"`
	TotalStartupCosts float64 `json:"total_startup_costs"`
	MonthsOfReserve   float64 `json:"months_of_reserve"` // reserveFund / totalMonthlyExpenses
}

// SensitivityResult records the profit impact of perturbing one input while
// holding all others constant.
type SensitivityResult struct {
	Variable       string  `json:"variable"`
	BaseValue      float64 `json:"base_value"`
	AdjustedValue  float64 `json:"adjusted_value"`
	ChangePercent  float64 `json:"change_percent"`
	ImpactOnProfit float64 `json:"impact_on_profit"` // delta monthly net profit
	ImpactPercent  float64 `json:"impact_percent"`   // vs baseline profit
}

// AdvancedOutput is the top tier: ModerateOutput plus investment metrics and
// one-variable sensitivity analysis.
type AdvancedOutput struct {
	ModerateOutput
	StartupBreakdown        StartupBreakdown    `json:"startup_breakdown"`
	BreakEvenMonths         int                 `json:"break_even_months"`
	YearOneROI              float64             `json:"year_one_roi"`
	CashOnCashReturn        float64             `json:"cash_on_cash_return"`
	PaybackPeriod           int                 `json:"payback_period"` // whole months
	TotalInvestmentRequired float64             `json:"total_investment_required"`
	SensitivityAnalysis     []SensitivityResult `json:"sensitivity_analysis"`
}

// RiskLevel classifies a deal's safety band.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskFactor is one triggered penalty condition with a human-readable
// explanation for the coaching dashboard.
type RiskFactor struct {
	Name           string    `json:"name"`
	Impact         RiskLevel `json:"impact"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation,omitempty"`
}

// RiskAssessment is the scored safety summary derived from SimpleOutput.
type RiskAssessment struct {
	Level   RiskLevel    `json:"level"`
	Score   int          `json:"score"` // 0-100
	Factors []RiskFactor `json:"factors"`
}

const (
	// NotReachedSentinel is reported when break-even or payback never occurs
	// within the projection horizon.
	NotReachedSentinel = 999

	// RampUpMonths is the assumed ramp from opening occupancy to target.
	RampUpMonths = 3
)
