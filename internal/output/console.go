package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// ConsoleFormatter renders the full text report: summary, contribution
// breakdown, cumulative projection and bonus.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "SALARY & WITHHOLDING TAX REPORT")
	fmt.Fprintln(&buf, "=================================================================================")
	writeRegion(&buf, result.Input)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeSummary(&buf, result)
	writeBreakdown(&buf, result.Summary.Breakdown)
	writeProjection(&buf, result)
	writeBonus(&buf, result.Bonus)

	return buf.Bytes(), nil
}

// ConsoleLiteFormatter renders only the monthly summary and bonus lines.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(result *domain.Result) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "MONTHLY SALARY SUMMARY")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	writeRegion(&buf, result.Input)
	fmt.Fprintf(&buf, "Gross:     %s\n", FormatCurrency(result.Input.GrossMonthly))
	fmt.Fprintf(&buf, "Social:    %s\n", FormatCurrency(result.Summary.Social))
	fmt.Fprintf(&buf, "Housing:   %s\n", FormatCurrency(result.Summary.Housing))
	fmt.Fprintf(&buf, "Tax:       %s\n", FormatCurrency(result.Summary.Tax))
	fmt.Fprintf(&buf, "Take-home: %s\n", FormatCurrency(result.Summary.TakeHome))
	if result.Bonus.Bonus.IsPositive() {
		fmt.Fprintf(&buf, "Bonus %s → tax %s, net %s\n",
			FormatCurrency(result.Bonus.Bonus), FormatCurrency(result.Bonus.Tax), FormatCurrency(result.Bonus.NetBonus))
	}
	return buf.Bytes(), nil
}

func writeRegion(w io.Writer, in domain.CalculatorInput) {
	if in.CityCode == "" && in.ProvinceCode == "" {
		return
	}
	fmt.Fprintf(w, "Region: province %s, city %s\n", orDash(in.ProvinceCode), orDash(in.CityCode))
}

func writeSummary(w io.Writer, result *domain.Result) {
	s := result.Summary
	fmt.Fprintln(w, "MONTHLY SUMMARY")
	fmt.Fprintln(w, "---------------")
	fmt.Fprintf(w, "  Gross Salary:          %s\n", FormatCurrency(result.Input.GrossMonthly))
	fmt.Fprintf(w, "  Social Insurance:      %s\n", FormatCurrency(s.Social))
	fmt.Fprintf(w, "  Housing Fund:          %s\n", FormatCurrency(s.Housing))
	fmt.Fprintf(w, "  Additional Deduction:  %s\n", FormatCurrency(result.Input.AdditionalDeduction))
	fmt.Fprintf(w, "  Income Tax:            %s\n", FormatCurrency(s.Tax))
	fmt.Fprintf(w, "  TAKE-HOME PAY:         %s\n", FormatCurrency(s.TakeHome))
	fmt.Fprintln(w)
}

func writeBreakdown(w io.Writer, b domain.ContributionBreakdown) {
	if len(b.Lines) == 0 {
		return
	}
	fmt.Fprintln(w, "CONTRIBUTIONS")
	fmt.Fprintln(w, "-------------")
	fmt.Fprintf(w, "  %-14s %14s %8s %12s %8s %12s\n", "Category", "Base", "Emp %", "Employee", "Co %", "Employer")
	for _, line := range b.Lines {
		fmt.Fprintf(w, "  %-14s %14s %8s %12s %8s %12s\n",
			line.Category.Label(),
			FormatAmount(line.Base),
			FormatPercentage(line.EmployeeRate),
			FormatAmount(line.Employee),
			FormatPercentage(line.EmployerRate),
			FormatAmount(line.Employer))
	}
	fmt.Fprintf(w, "  %-14s %14s %8s %12s %8s %12s\n", "Total", "", "", FormatAmount(b.EmployeeTotal()), "", FormatAmount(b.EmployerTotal()))
	fmt.Fprintln(w)
}

func writeProjection(w io.Writer, result *domain.Result) {
	fmt.Fprintln(w, "CUMULATIVE WITHHOLDING")
	fmt.Fprintln(w, "----------------------")
	if !result.HasProjection() {
		fmt.Fprintln(w, "  No months projected (monthly income is zero).")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "  %-5s %12s %14s %12s %14s %12s %10s %12s\n",
		"Month", "Pre-tax", "Cum. Pre-tax", "Cum. Fund", "Cum. Taxable", "Cum. Tax", "Tax", "Net")
	for _, row := range result.Projection {
		marker := " "
		if result.Selected != nil && row.Month == result.Selected.Month {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-5d %12s %14s %12s %14s %12s %10s %12s\n",
			marker,
			row.Month,
			FormatAmount(row.PreTax),
			FormatAmount(row.CumulativePreTax),
			FormatAmount(row.CumulativeFund),
			FormatAmount(row.CumulativeTaxable),
			FormatAmount(row.CumulativeTax),
			FormatAmount(row.MonthTax),
			FormatAmount(row.NetSalary))
	}
	fmt.Fprintln(w)
	if result.Selected != nil {
		fmt.Fprintf(w, "  Month %d: tax %s, net %s\n", result.Selected.Month,
			FormatCurrency(result.Selected.MonthTax), FormatCurrency(result.Selected.NetSalary))
	}
	fmt.Fprintf(w, "  Range total: gross %s, tax %s, net %s\n",
		FormatCurrency(result.AnnualGross), FormatCurrency(result.AnnualTax), FormatCurrency(result.AnnualNet))
	fmt.Fprintln(w)
}

func writeBonus(w io.Writer, b domain.BonusResult) {
	fmt.Fprintln(w, "ANNUAL BONUS")
	fmt.Fprintln(w, "------------")
	if !b.Bonus.IsPositive() {
		fmt.Fprintln(w, "  No bonus entered.")
		return
	}
	fmt.Fprintf(w, "  Bonus:            %s\n", FormatCurrency(b.Bonus))
	fmt.Fprintf(w, "  Monthly Average:  %s\n", FormatCurrency(b.AverageMonthly))
	fmt.Fprintf(w, "  Bonus Tax:        %s\n", FormatCurrency(b.Tax))
	fmt.Fprintf(w, "  Net Bonus:        %s\n", FormatCurrency(b.NetBonus))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
