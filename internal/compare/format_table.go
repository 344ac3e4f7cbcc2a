package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing cities
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("CITY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 90) + "\n")
	if compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("Base City: %s (%s)\n", compSet.BaseResult.CityName, compSet.BaseCity))
	}
	if compSet.InputPath != "" {
		sb.WriteString(fmt.Sprintf("Input: %s\n", compSet.InputPath))
	}
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "City",
		numWidth, "Social",
		numWidth, "Housing",
		numWidth, "Tax",
		numWidth, "Take-home",
		numWidth, "Range Net"))
	sb.WriteString(strings.Repeat("-", 90) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 90) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.CityName))
			sb.WriteString(fmt.Sprintf("  Take-home:      %s¥%s (%s%%)\n",
				tf.deltaSymbol(alt.TakeHomeDiffFromBase),
				alt.TakeHomeDiffFromBase.StringFixed(2),
				alt.TakeHomePctFromBase.StringFixed(1)))
			sb.WriteString(fmt.Sprintf("  Range Net:      %s¥%s\n",
				tf.deltaSymbol(alt.RangeNetDiffFromBase),
				alt.RangeNetDiffFromBase.StringFixed(2)))

			if !alt.ContributionDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Contributions:  %s¥%s\n",
					tf.deltaSymbol(alt.ContributionDiffFromBase),
					alt.ContributionDiffFromBase.StringFixed(2)))
			}
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax:            %s¥%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					alt.TaxDiffFromBase.StringFixed(2)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nHIGHLIGHTS\n")
		sb.WriteString(strings.Repeat("-", 90) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.CityName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.MonthlySocial.StringFixed(2),
		numWidth, result.MonthlyHousing.StringFixed(2),
		numWidth, result.MonthlyTax.StringFixed(2),
		numWidth, result.TakeHome.StringFixed(2),
		numWidth, result.RangeNet.StringFixed(2))
}

// deltaSymbol returns "+" for positive deltas; negatives carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate shortens s to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary of take-home deltas
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseCity))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if alt.TakeHomeDiffFromBase.IsPositive() {
			change = "+¥" + alt.TakeHomeDiffFromBase.StringFixed(2)
		} else if alt.TakeHomeDiffFromBase.IsNegative() {
			change = "-¥" + alt.TakeHomeDiffFromBase.Abs().StringFixed(2)
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.CityCode, change))
	}

	return sb.String()
}
