package domain

import (
	"github.com/shopspring/decimal"
)

// CalculatorInput is the normalized, immutable snapshot of every form field.
// It is rebuilt from the raw form on each change and passed by value into the
// calculation functions.
type CalculatorInput struct {
	ProvinceCode string `json:"provinceCode,omitempty"`
	CityCode     string `json:"cityCode,omitempty"`

	GrossMonthly decimal.Decimal `json:"grossMonthly"`

	// SocialBase and HousingBase default to GrossMonthly when nil.
	SocialBase  *decimal.Decimal `json:"socialBase,omitempty"`
	HousingBase *decimal.Decimal `json:"housingBase,omitempty"`

	EmployeeRates  RateSet `json:"employeeRates"`
	UseHousingFund bool    `json:"useHousingFund"`

	// AdditionalDeduction is the monthly itemized (special additional) deduction.
	AdditionalDeduction decimal.Decimal `json:"additionalDeduction"`

	StartMonth     int `json:"startMonth"`
	EndMonth       int `json:"endMonth"`
	ReportingMonth int `json:"reportingMonth"`

	AnnualBonus decimal.Decimal `json:"annualBonus"`
}

// MonthlySummary is the single-month view: deductions, tax and take-home pay.
type MonthlySummary struct {
	Social    decimal.Decimal       `json:"social"`
	Housing   decimal.Decimal       `json:"housing"`
	Tax       decimal.Decimal       `json:"tax"`
	TakeHome  decimal.Decimal       `json:"takeHome"`
	Breakdown ContributionBreakdown `json:"breakdown"`
}

// MonthlyProjectionRow is one month of the cumulative withholding table.
type MonthlyProjectionRow struct {
	Month                int             `json:"month"`
	PreTax               decimal.Decimal `json:"preTax"`
	CumulativePreTax     decimal.Decimal `json:"cumulativePreTax"`
	MonthFund            decimal.Decimal `json:"monthFund"`
	CumulativeFund       decimal.Decimal `json:"cumulativeFund"`
	CumulativeAllowance  decimal.Decimal `json:"cumulativeAllowance"`
	CumulativeAdditional decimal.Decimal `json:"cumulativeAdditional"`
	CumulativeTaxable    decimal.Decimal `json:"cumulativeTaxable"`
	CumulativeTax        decimal.Decimal `json:"cumulativeTax"`
	MonthTax             decimal.Decimal `json:"monthTax"`
	NetSalary            decimal.Decimal `json:"netSalary"`
}

// BonusResult is the annual lump-sum bonus calculation.
type BonusResult struct {
	Bonus          decimal.Decimal `json:"bonus"`
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
	Tax            decimal.Decimal `json:"tax"`
	NetBonus       decimal.Decimal `json:"netBonus"`
}

// Result is everything the presentation layer renders for one input snapshot.
type Result struct {
	Input      CalculatorInput        `json:"input"`
	Summary    MonthlySummary         `json:"summary"`
	Projection []MonthlyProjectionRow `json:"projection"`

	// EffectiveMonth is the reporting month after snapping it into the range.
	EffectiveMonth int                   `json:"effectiveMonth"`
	Selected       *MonthlyProjectionRow `json:"selected,omitempty"`

	AnnualGross decimal.Decimal `json:"annualGross"`
	AnnualTax   decimal.Decimal `json:"annualTax"`
	AnnualNet   decimal.Decimal `json:"annualNet"`

	Bonus BonusResult `json:"bonus"`
}

// HasProjection reports whether any months were projected
func (r *Result) HasProjection() bool {
	return r != nil && len(r.Projection) > 0
}
