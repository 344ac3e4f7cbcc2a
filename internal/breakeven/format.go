package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a single solve
func (tf *TableFormatter) Format(result *GrossUpResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS-UP RESULT\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	sb.WriteString(fmt.Sprintf("Metric:       %s\n", tf.metricLabel(result.Request.Metric)))
	sb.WriteString(fmt.Sprintf("Target:       ¥%s\n", result.Request.Target.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Status:       %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:   %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:  %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("REQUIRED SALARY\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Monthly Gross:   ¥%s\n", result.Gross.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Achieved:        ¥%s\n", result.Achieved.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Difference:      %s¥%s\n", tf.deltaSymbol(result.Difference), result.Difference.StringFixed(2)))

	if r := result.Result; r != nil {
		sb.WriteString("\n")
		sb.WriteString("AT THIS SALARY\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		sb.WriteString(fmt.Sprintf("Social Insurance: ¥%s\n", r.Summary.Social.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Housing Fund:     ¥%s\n", r.Summary.Housing.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Income Tax:       ¥%s\n", r.Summary.Tax.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Take-home:        ¥%s\n", r.Summary.TakeHome.StringFixed(2)))
		sb.WriteString(fmt.Sprintf("Range Net:        ¥%s\n", r.AnnualNet.StringFixed(2)))
	}
	sb.WriteString("\n")

	return sb.String()
}

// FormatMultiCity formats a multi-city solve
func (tf *TableFormatter) FormatMultiCity(result *MultiCityResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS-UP BY CITY\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-16s %15s %15s %10s\n", "City", "Monthly Gross", "Achieved", "Status"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	for _, r := range result.Results {
		status := "ok"
		if !r.Result.Success {
			status = "partial"
		}
		sb.WriteString(fmt.Sprintf("%-16s %15s %15s %10s\n",
			tf.truncate(r.CityName, 16),
			r.Result.Gross.StringFixed(2),
			r.Result.Achieved.StringFixed(2),
			status))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("HIGHLIGHTS\n")
		sb.WriteString(strings.Repeat("-", 60) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *GrossUpResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiCity formats multi-city results as JSON
func (jf *JSONFormatter) FormatMultiCity(result *MultiCityResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) metricLabel(m Metric) string {
	switch m {
	case MetricRangeNet:
		return "net salary over the month range"
	default:
		return "monthly take-home"
	}
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
