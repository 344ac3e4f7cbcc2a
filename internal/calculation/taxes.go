package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. One rate table (domain.AnnualTaxBrackets) serves every path. It is keyed
//    on year-to-date taxable income and uses quick-deduction constants, so the
//    tax at any base is a single multiply-subtract.
//
// 2. Monthly salary: the 5,000 standard allowance is subtracted before the
//    table is applied (ComputeMonthlyTax, and once per month in ProjectMonths).
//
// 3. Annual bonus: the bonus is averaged over 12 months and the average goes
//    straight into the table without the allowance. This is a separate
//    statutory treatment and is kept apart from the salary path on purpose.

// ComputeTax returns the tax owed on a taxable base using the fixed bracket
// table. Bases at or below zero owe nothing.
func ComputeTax(taxableBase decimal.Decimal) decimal.Decimal {
	return computeTaxWithBrackets(taxableBase, domain.AnnualTaxBrackets)
}

// ComputeMonthlyTax subtracts the standard allowance from a month's taxable
// income before applying the bracket table.
func ComputeMonthlyTax(monthlyTaxable decimal.Decimal) decimal.Decimal {
	return ComputeTax(monthlyTaxable.Sub(domain.StandardAllowance))
}

// BracketFor returns the bracket a positive base falls into. ok is false for
// bases at or below zero.
func BracketFor(taxableBase decimal.Decimal) (bracket domain.TaxBracket, ok bool) {
	if taxableBase.LessThanOrEqual(decimal.Zero) {
		return domain.TaxBracket{}, false
	}
	for _, b := range domain.AnnualTaxBrackets {
		if b.Contains(taxableBase) {
			return b, true
		}
	}
	return domain.TaxBracket{}, false
}

func computeTaxWithBrackets(taxableBase decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	if taxableBase.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	for _, b := range brackets {
		if b.Contains(taxableBase) {
			return taxableBase.Mul(b.Rate).Sub(b.QuickDeduction)
		}
	}
	return decimal.Zero
}

// clampZero returns d, or zero when d is negative.
func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
