package underwriting

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency renders a dollar amount rounded to whole units with
// thousands separators, e.g. -12345.6 -> "-$12,346".
func FormatCurrency(n float64) string {
	rounded := int64(math.Round(n))
	sign := ""
	if rounded < 0 {
		sign = "-"
		rounded = -rounded
	}
	return sign + "$" + groupThousands(rounded)
}

// FormatPercent renders a percentage to one decimal, e.g. 87.25 -> "87.3%".
func FormatPercent(n float64) string {
	return fmt.Sprintf("%.1f%%", n)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	return digits + "," + strings.Join(groups, ",")
}

// ViabilityStatus summarizes a simple output for badges and report headers.
func ViabilityStatus(out SimpleOutput) string {
	switch {
	case out.IsViable && out.ProfitMargin >= marginModerateThreshold:
		return "Strong"
	case out.IsViable:
		return "Viable"
	case out.MonthlyNetProfit > 0:
		return "Marginal"
	default:
		return "Not Viable"
	}
}

// RiskLevelColor returns the UI foreground color token for a risk level.
func RiskLevelColor(level RiskLevel) string {
	switch level {
	case RiskLow:
		return "green"
	case RiskModerate:
		return "yellow"
	case RiskHigh:
		return "orange"
	default:
		return "red"
	}
}

// RiskLevelBgColor returns the UI background color token for a risk level.
func RiskLevelBgColor(level RiskLevel) string {
	switch level {
	case RiskLow:
		return "green-50"
	case RiskModerate:
		return "yellow-50"
	case RiskHigh:
		return "orange-50"
	default:
		return "red-50"
	}
}
