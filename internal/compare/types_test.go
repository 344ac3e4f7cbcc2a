package compare

import (
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{
		CityName:        "Base",
		TakeHome:        decimal.NewFromInt(10000),
		RangeNet:        decimal.NewFromInt(120000),
		MonthlyTax:      decimal.NewFromInt(300),
		ContributionSum: decimal.NewFromInt(2000),
	}
	alt := ComparisonResult{
		CityName:        "Alt",
		TakeHome:        decimal.NewFromInt(10500),
		RangeNet:        decimal.NewFromInt(126000),
		MonthlyTax:      decimal.NewFromInt(315),
		ContributionSum: decimal.NewFromInt(1500),
	}

	result := calc.CalculateComparison(alt, base)

	if !result.TakeHomeDiffFromBase.Equal(decimal.NewFromInt(500)) {
		t.Errorf("Expected take-home diff 500, got %s", result.TakeHomeDiffFromBase)
	}
	if !result.TakeHomePctFromBase.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected take-home change 5%%, got %s", result.TakeHomePctFromBase)
	}
	if !result.RangeNetDiffFromBase.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("Expected range net diff 6000, got %s", result.RangeNetDiffFromBase)
	}
	if !result.TaxDiffFromBase.Equal(decimal.NewFromInt(15)) {
		t.Errorf("Expected tax diff 15, got %s", result.TaxDiffFromBase)
	}
	if !result.ContributionDiffFromBase.Equal(decimal.NewFromInt(-500)) {
		t.Errorf("Expected contribution diff -500, got %s", result.ContributionDiffFromBase)
	}
}

func TestMetricsCalculator_CalculateComparison_ZeroBase(t *testing.T) {
	calc := NewMetricsCalculator()

	result := calc.CalculateComparison(ComparisonResult{TakeHome: decimal.NewFromInt(100)}, ComparisonResult{})
	if !result.TakeHomePctFromBase.IsZero() {
		t.Errorf("Expected no percentage against a zero base, got %s", result.TakeHomePctFromBase)
	}
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	calc := NewMetricsCalculator()
	rates := domain.DefaultEmployeeRates
	city := domain.City{Code: "440300", Name: "深圳市", ProvinceCode: "44", Defaults: &rates}

	result := &domain.Result{
		Input: domain.CalculatorInput{GrossMonthly: decimal.NewFromInt(10000), EmployeeRates: rates},
		Summary: domain.MonthlySummary{
			Social:   decimal.NewFromInt(1030),
			Housing:  decimal.NewFromInt(1200),
			Tax:      decimal.NewFromInt(83),
			TakeHome: decimal.NewFromInt(7687),
			Breakdown: domain.ContributionBreakdown{Lines: []domain.ContributionLine{
				{Category: domain.CategoryPension, Employer: decimal.NewFromInt(1600)},
				{Category: domain.CategoryHousing, Employer: decimal.NewFromInt(1200)},
			}},
		},
		AnnualNet: decimal.NewFromInt(92244),
	}

	m := calc.CalculateMetrics(city, "广东省", result)

	if m.CityCode != "440300" || m.ProvinceName != "广东省" {
		t.Errorf("Unexpected city fields: %+v", m)
	}
	if !m.HasDefaults {
		t.Error("Expected HasDefaults for a city with stored rates")
	}
	if !m.ContributionSum.Equal(decimal.NewFromInt(2230)) {
		t.Errorf("Expected contribution sum 2230, got %s", m.ContributionSum)
	}
	if !m.EmployerCost.Equal(decimal.NewFromInt(12800)) {
		t.Errorf("Expected employer cost 12800, got %s", m.EmployerCost)
	}
	if m.Result != result {
		t.Error("Expected the full result to be kept")
	}
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	recs := GenerateRecommendations(&ComparisonSet{BaseResult: &ComparisonResult{}})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations, got %v", recs)
	}
}

func TestGenerateRecommendations_BaseIsBest(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{CityName: "Base", TakeHome: decimal.NewFromInt(100), ContributionSum: decimal.NewFromInt(10), HasDefaults: true},
		AlternativeResults: []ComparisonResult{
			{CityName: "Alt", TakeHome: decimal.NewFromInt(90), ContributionSum: decimal.NewFromInt(20), HasDefaults: true},
		},
	}

	recs := GenerateRecommendations(compSet)
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations when the base wins, got %v", recs)
	}
}
