package domain

import (
	"github.com/shopspring/decimal"
)

// StandardAllowance is the fixed monthly non-taxable amount under the
// cumulative withholding rules.
var StandardAllowance = decimal.NewFromInt(5000)

// MonthsPerYear is used to average lump-sum bonus income.
var MonthsPerYear = decimal.NewFromInt(12)

// TaxBracket is one row of the progressive rate table. The tax owed for a base
// falling into this bracket is base*Rate - QuickDeduction.
type TaxBracket struct {
	UpperLimit     decimal.Decimal `json:"upperLimit" yaml:"upper_limit"`
	Unbounded      bool            `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
	Rate           decimal.Decimal `json:"rate" yaml:"rate"`
	QuickDeduction decimal.Decimal `json:"quickDeduction" yaml:"quick_deduction"`
}

// Contains reports whether base falls at or under the bracket's upper limit.
func (b TaxBracket) Contains(base decimal.Decimal) bool {
	return b.Unbounded || base.LessThanOrEqual(b.UpperLimit)
}

// AnnualTaxBrackets is the comprehensive-income rate table applied to
// year-to-date taxable income. Ordered ascending by UpperLimit.
//
//	<= 36,000        3%       0
//	<= 144,000      10%   2,520
//	<= 300,000      20%  16,920
//	<= 420,000      25%  31,920
//	<= 660,000      30%  52,920
//	<= 960,000      35%  85,920
//	above           45% 181,920
var AnnualTaxBrackets = []TaxBracket{
	{UpperLimit: decimal.NewFromInt(36000), Rate: decimal.NewFromFloat(0.03), QuickDeduction: decimal.Zero},
	{UpperLimit: decimal.NewFromInt(144000), Rate: decimal.NewFromFloat(0.10), QuickDeduction: decimal.NewFromInt(2520)},
	{UpperLimit: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.20), QuickDeduction: decimal.NewFromInt(16920)},
	{UpperLimit: decimal.NewFromInt(420000), Rate: decimal.NewFromFloat(0.25), QuickDeduction: decimal.NewFromInt(31920)},
	{UpperLimit: decimal.NewFromInt(660000), Rate: decimal.NewFromFloat(0.30), QuickDeduction: decimal.NewFromInt(52920)},
	{UpperLimit: decimal.NewFromInt(960000), Rate: decimal.NewFromFloat(0.35), QuickDeduction: decimal.NewFromInt(85920)},
	{Unbounded: true, Rate: decimal.NewFromFloat(0.45), QuickDeduction: decimal.NewFromInt(181920)},
}

// EmployerRates is the fixed employer-side contribution table (percentages).
var EmployerRates = RateSet{
	Pension:      decimal.NewFromInt(16),
	Medical:      decimal.NewFromInt(9),
	Unemployment: decimal.NewFromFloat(0.5),
	Maternity:    decimal.NewFromFloat(0.8),
	Injury:       decimal.NewFromFloat(0.2),
	Housing:      decimal.NewFromInt(12),
}

// DefaultEmployeeRates are the employee-side rates used before any city is
// selected. They match the Shenzhen defaults.
var DefaultEmployeeRates = RateSet{
	Pension:      decimal.NewFromInt(8),
	Medical:      decimal.NewFromInt(2),
	Unemployment: decimal.NewFromFloat(0.3),
	Maternity:    decimal.Zero,
	Injury:       decimal.Zero,
	Housing:      decimal.NewFromInt(12),
}
