package compare

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one city's outcome for the shared salary input
type ComparisonResult struct {
	CityCode     string `json:"cityCode"`
	CityName     string `json:"cityName"`
	ProvinceName string `json:"provinceName"`

	// HasDefaults is false when the city stores no default rates and the
	// base form's rates were used as-is.
	HasDefaults bool           `json:"hasDefaults"`
	Rates       domain.RateSet `json:"rates"`
	Result      *domain.Result `json:"-"`

	// Key Metrics
	MonthlySocial   decimal.Decimal `json:"monthlySocial"`
	MonthlyHousing  decimal.Decimal `json:"monthlyHousing"`
	MonthlyTax      decimal.Decimal `json:"monthlyTax"`
	TakeHome        decimal.Decimal `json:"takeHome"`
	EmployerCost    decimal.Decimal `json:"employerCost"`
	RangeNet        decimal.Decimal `json:"rangeNet"`
	RangeTax        decimal.Decimal `json:"rangeTax"`
	ContributionSum decimal.Decimal `json:"contributionSum"`

	// Comparison to Base
	TakeHomeDiffFromBase     decimal.Decimal `json:"takeHomeDiffFromBase"`
	TakeHomePctFromBase      decimal.Decimal `json:"takeHomePctFromBase"`
	RangeNetDiffFromBase     decimal.Decimal `json:"rangeNetDiffFromBase"`
	TaxDiffFromBase          decimal.Decimal `json:"taxDiffFromBase"`
	ContributionDiffFromBase decimal.Decimal `json:"contributionDiffFromBase"`
}

// ComparisonSet is the base city plus every alternative measured against it
type ComparisonSet struct {
	BaseCity           string             `json:"baseCity"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	InputPath          string             `json:"inputPath,omitempty"`
}

// MetricsCalculator extracts key metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for one city's result
func (mc *MetricsCalculator) CalculateMetrics(city domain.City, provinceName string, result *domain.Result) ComparisonResult {
	s := result.Summary
	return ComparisonResult{
		CityCode:        city.Code,
		CityName:        city.Name,
		ProvinceName:    provinceName,
		HasDefaults:     city.Defaults != nil,
		Rates:           result.Input.EmployeeRates,
		Result:          result,
		MonthlySocial:   s.Social,
		MonthlyHousing:  s.Housing,
		MonthlyTax:      s.Tax,
		TakeHome:        s.TakeHome,
		EmployerCost:    result.Input.GrossMonthly.Add(s.Breakdown.EmployerTotal()),
		RangeNet:        result.AnnualNet,
		RangeTax:        result.AnnualTax,
		ContributionSum: s.Social.Add(s.Housing),
	}
}

// CalculateComparison computes deltas between a city and the base
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.TakeHomeDiffFromBase = alt.TakeHome.Sub(base.TakeHome)
	if !base.TakeHome.IsZero() {
		alt.TakeHomePctFromBase = alt.TakeHomeDiffFromBase.
			Div(base.TakeHome).
			Mul(decimal.NewFromInt(100))
	}

	alt.RangeNetDiffFromBase = alt.RangeNet.Sub(base.RangeNet)
	alt.TaxDiffFromBase = alt.MonthlyTax.Sub(base.MonthlyTax)
	alt.ContributionDiffFromBase = alt.ContributionSum.Sub(base.ContributionSum)

	return alt
}

// GenerateRecommendations highlights the alternatives that beat the base
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	base := compSet.BaseResult

	bestTakeHome := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TakeHome.GreaterThan(bestTakeHome.TakeHome) {
			bestTakeHome = alt
		}
	}
	if bestTakeHome != base {
		diff := bestTakeHome.TakeHome.Sub(base.TakeHome)
		recommendations = append(recommendations,
			"Highest Take-home: "+bestTakeHome.CityName+" pays ¥"+diff.StringFixed(2)+" more per month than "+base.CityName)
	}

	lowestContribution := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.ContributionSum.LessThan(lowestContribution.ContributionSum) {
			lowestContribution = alt
		}
	}
	if lowestContribution != base {
		diff := base.ContributionSum.Sub(lowestContribution.ContributionSum)
		recommendations = append(recommendations,
			"Lowest Contributions: "+lowestContribution.CityName+" withholds ¥"+diff.StringFixed(2)+" less insurance and housing fund per month")
	}

	for _, alt := range compSet.AlternativeResults {
		if !alt.HasDefaults {
			recommendations = append(recommendations,
				"Note: "+alt.CityName+" has no stored default rates; the base rates were used")
		}
	}

	return recommendations
}
