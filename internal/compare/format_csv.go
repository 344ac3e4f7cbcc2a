package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"City Code",
		"City",
		"Type",
		"Social",
		"Housing",
		"Tax",
		"Take-home",
		"Employer Cost",
		"Range Net",
		"Range Tax",
		"Take-home Diff from Base",
		"Take-home % Change",
		"Contribution Diff from Base",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, cityType string) []string {
	return []string{
		result.CityCode,
		result.CityName,
		cityType,
		result.MonthlySocial.StringFixed(2),
		result.MonthlyHousing.StringFixed(2),
		result.MonthlyTax.StringFixed(2),
		result.TakeHome.StringFixed(2),
		result.EmployerCost.StringFixed(2),
		result.RangeNet.StringFixed(2),
		result.RangeTax.StringFixed(2),
		result.TakeHomeDiffFromBase.StringFixed(2),
		result.TakeHomePctFromBase.StringFixed(2),
		result.ContributionDiffFromBase.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
