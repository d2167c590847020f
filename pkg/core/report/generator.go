package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"grouphome_coaching/pkg/core/agent"
	"grouphome_coaching/pkg/core/llm"
	"grouphome_coaching/pkg/core/prompt"
	"grouphome_coaching/pkg/core/underwriting"
	"grouphome_coaching/pkg/core/utils"
)

// Agent roles resolved through the agent manager.
const (
	RoleReportWriter = "report_writer"
	RoleMIOCoach     = "mio_coach"
)

// Generator produces underwriting reports and MIO feedback.
type Generator struct {
	agents *agent.Manager
}

func NewGenerator(agents *agent.Manager) *Generator {
	return &Generator{agents: agents}
}

// GenerateUnderwritingReport runs the full advanced analysis, asks the model
// for a narrative plus a structured recommendation, and returns the report.
// The deterministic outputs are embedded verbatim; a model failure on the
// recommendation degrades to an empty Recommendation rather than losing the
// narrative.
func (g *Generator) GenerateUnderwritingReport(ctx context.Context, userID string, inputs underwriting.CalculatorInputs) (*UnderwritingReport, error) {
	output := underwriting.CalculateAdvancedOutput(inputs)
	risk := underwriting.CalculateRiskAssessment(inputs, output.SimpleOutput)
	summary := FinancialSummary(output, risk)

	provider := g.agents.GetProvider(RoleReportWriter)

	// 1. Narrative
	systemPrompt, userPrompt := g.reportPrompts(summary)
	narrative, err := provider.GenerateResponse(ctx, userPrompt, systemPrompt, g.options(RoleReportWriter))
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}
	narrative = utils.CleanMarkdown(narrative)

	// 2. Structured recommendation
	var rec Recommendation
	options := g.options(RoleReportWriter)
	for k, v := range llm.JSONMode() {
		options[k] = v
	}
	raw, err := provider.GenerateResponse(ctx, summary, fallbackRecommendationSystemPrompt, options)
	if err == nil {
		if _, parseErr := utils.SmartParse(raw, &rec); parseErr != nil {
			fmt.Printf("[REPORT] recommendation parse failed: %v\n", parseErr)
		}
	} else {
		fmt.Printf("[REPORT] recommendation generation failed: %v\n", err)
	}

	return &UnderwritingReport{
		ID:             uuid.NewString(),
		UserID:         userID,
		Narrative:      narrative,
		Recommendation: rec,
		Output:         output,
		Risk:           risk,
		Provider:       g.agents.GetActiveProvider(),
		GeneratedAt:    time.Now().UTC(),
	}, nil
}

// GenerateMIOFeedback writes the weekly mindset feedback note for a check-in.
func (g *Generator) GenerateMIOFeedback(ctx context.Context, checkIn CheckInSummary) (*MIOFeedback, error) {
	provider := g.agents.GetProvider(RoleMIOCoach)

	systemPrompt := fallbackMIOSystemPrompt
	userPrompt := fmt.Sprintf(fallbackMIOUserPrompt,
		checkIn.Week, checkIn.Temperament, checkIn.StreakDays, checkIn.CompletedLessons, checkIn.Notes)

	if t, err := prompt.Get().GetPrompt("mio.weekly_feedback"); err == nil {
		systemPrompt = t.SystemPrompt
		if rendered, err := prompt.RenderUserPrompt(t, map[string]interface{}{
			"Week":             checkIn.Week,
			"Temperament":      checkIn.Temperament,
			"StreakDays":       checkIn.StreakDays,
			"CompletedLessons": checkIn.CompletedLessons,
			"Notes":            checkIn.Notes,
		}); err == nil && rendered != "" {
			userPrompt = rendered
		}
	}

	feedback, err := provider.GenerateResponse(ctx, userPrompt, systemPrompt, g.options(RoleMIOCoach))
	if err != nil {
		return nil, fmt.Errorf("mio feedback generation failed: %w", err)
	}

	return &MIOFeedback{
		ID:          uuid.NewString(),
		UserID:      checkIn.UserID,
		Week:        checkIn.Week,
		Feedback:    utils.CleanMarkdown(feedback),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// reportPrompts prefers the prompt library, falling back to the hardcoded
// copies when loading failed.
func (g *Generator) reportPrompts(summary string) (string, string) {
	if t, err := prompt.Get().GetPrompt("report.underwriting"); err == nil {
		rendered, err := prompt.RenderUserPrompt(t, map[string]interface{}{"Summary": summary})
		if err == nil && rendered != "" {
			return t.SystemPrompt, rendered
		}
	}
	return fallbackReportSystemPrompt, fmt.Sprintf(fallbackReportUserPrompt, summary)
}

func (g *Generator) options(role string) map[string]interface{} {
	options := map[string]interface{}{}
	if model := g.agents.ModelFor(role); model != "" {
		options["model"] = model
	}
	return options
}

// FinancialSummary renders the engine outputs as the deterministic prompt
// block. Formatting only; every figure comes straight from the calculators.
func FinancialSummary(out underwriting.AdvancedOutput, risk underwriting.RiskAssessment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Monthly Economics\n")
	fmt.Fprintf(&b, "- Gross revenue: %s\n", underwriting.FormatCurrency(out.MonthlyGrossRevenue))
	fmt.Fprintf(&b, "- Total expenses: %s\n", underwriting.FormatCurrency(out.TotalMonthlyExpenses))
	fmt.Fprintf(&b, "- Net profit: %s (margin %s)\n", underwriting.FormatCurrency(out.MonthlyNetProfit), underwriting.FormatPercent(out.ProfitMargin))
	fmt.Fprintf(&b, "- Break-even occupancy: %s\n", underwriting.FormatPercent(out.BreakEvenOccupancy))
	fmt.Fprintf(&b, "- Status: %s\n\n", underwriting.ViabilityStatus(out.SimpleOutput))

	fmt.Fprintf(&b, "## Investment\n")
	fmt.Fprintf(&b, "- Startup costs: %s\n", underwriting.FormatCurrency(out.StartupBreakdown.TotalStartupCosts))
	fmt.Fprintf(&b, "- Total investment required: %s\n", underwriting.FormatCurrency(out.TotalInvestmentRequired))
	fmt.Fprintf(&b, "- Year-one ROI: %s\n", underwriting.FormatPercent(out.YearOneROI))
	if out.PaybackPeriod >= underwriting.NotReachedSentinel {
		fmt.Fprintf(&b, "- Payback period: not reached at current profitability\n\n")
	} else {
		fmt.Fprintf(&b, "- Payback period: %d months\n\n", out.PaybackPeriod)
	}

	fmt.Fprintf(&b, "## Risk Assessment: %s (score %d/100)\n", risk.Level, risk.Score)
	for _, f := range risk.Factors {
		fmt.Fprintf(&b, "- [%s] %s\n", f.Impact, f.Description)
	}

	fmt.Fprintf(&b, "\n## Sensitivity (-10%% shocks)\n")
	for _, s := range out.SensitivityAnalysis {
		fmt.Fprintf(&b, "- %s: profit impact %s (%s)\n",
			s.Variable, underwriting.FormatCurrency(s.ImpactOnProfit), underwriting.FormatPercent(s.ImpactPercent))
	}

	return b.String()
}
