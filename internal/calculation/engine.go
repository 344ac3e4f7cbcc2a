package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine turns one normalized input snapshot into everything the
// presentation layer shows. It keeps no state between calls besides its logger.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. A nil logger restores NopLogger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) log() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// Calculate computes the monthly summary, the cumulative projection, the
// reporting-month row and the bonus result for in.
func (ce *CalculationEngine) Calculate(in domain.CalculatorInput) *domain.Result {
	start, end := NormalizeMonthRange(in.StartMonth, in.EndMonth)
	result := &domain.Result{
		Input:          in,
		Summary:        ce.CalculateMonthly(in),
		EffectiveMonth: EffectiveReportingMonth(in.ReportingMonth, start, end),
		Bonus:          ComputeBonusTax(in.AnnualBonus),
		AnnualGross:    decimal.Zero,
		AnnualTax:      decimal.Zero,
		AnnualNet:      decimal.Zero,
	}

	fund := result.Summary.Social.Add(result.Summary.Housing)
	result.Projection = ProjectMonths(in.GrossMonthly, fund, in.AdditionalDeduction, start, end)
	result.Selected = SelectRow(result.Projection, result.EffectiveMonth)

	for _, row := range result.Projection {
		result.AnnualGross = result.AnnualGross.Add(row.PreTax)
		result.AnnualTax = result.AnnualTax.Add(row.MonthTax)
		result.AnnualNet = result.AnnualNet.Add(row.NetSalary)
	}

	ce.log().Debugf("projected months %d-%d: %d rows, annual tax %s, reporting month %d",
		start, end, len(result.Projection), result.AnnualTax.StringFixed(2), result.EffectiveMonth)
	ce.log().Debugf("bonus %s: tax %s, net %s",
		result.Bonus.Bonus.StringFixed(2), result.Bonus.Tax.StringFixed(2), result.Bonus.NetBonus.StringFixed(2))

	return result
}

// CalculateMonthly computes the single-month summary: contributions, the
// monthly tax (standard allowance applied) and take-home pay.
func (ce *CalculationEngine) CalculateMonthly(in domain.CalculatorInput) domain.MonthlySummary {
	if in.GrossMonthly.LessThanOrEqual(decimal.Zero) {
		ce.log().Debugf("gross monthly %s is not positive, returning empty summary", in.GrossMonthly.String())
		return domain.MonthlySummary{
			Social:    decimal.Zero,
			Housing:   decimal.Zero,
			Tax:       decimal.Zero,
			TakeHome:  decimal.Zero,
			Breakdown: SplitContributions(decimal.Zero, nil, nil, domain.RateSet{}, false),
		}
	}

	breakdown := SplitContributions(in.GrossMonthly, in.SocialBase, in.HousingBase, in.EmployeeRates, in.UseHousingFund)
	social := breakdown.Social()
	housing := breakdown.Housing()

	taxable := in.GrossMonthly.Sub(social).Sub(housing).Sub(clampZero(in.AdditionalDeduction))
	tax := ComputeMonthlyTax(taxable)
	takeHome := in.GrossMonthly.Sub(social).Sub(housing).Sub(tax)

	ce.log().Debugf("gross %s: social %s, housing %s, taxable %s, tax %s",
		in.GrossMonthly.StringFixed(2), social.StringFixed(2), housing.StringFixed(2), taxable.StringFixed(2), tax.StringFixed(2))

	return domain.MonthlySummary{
		Social:    clampZero(social),
		Housing:   clampZero(housing),
		Tax:       clampZero(tax),
		TakeHome:  clampZero(takeHome),
		Breakdown: breakdown,
	}
}
