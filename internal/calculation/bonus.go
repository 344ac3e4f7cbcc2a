package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeBonusTax taxes an annual lump-sum bonus. The bonus is averaged over
// twelve months, the average is run through the bracket table without the
// standard allowance, and the result is scaled back up by twelve.
func ComputeBonusTax(annualBonus decimal.Decimal) domain.BonusResult {
	if annualBonus.LessThanOrEqual(decimal.Zero) {
		return domain.BonusResult{
			Bonus:          decimal.Zero,
			AverageMonthly: decimal.Zero,
			Tax:            decimal.Zero,
			NetBonus:       decimal.Zero,
		}
	}

	avg := annualBonus.Div(domain.MonthsPerYear)
	tax := clampZero(ComputeTax(avg).Mul(domain.MonthsPerYear))

	return domain.BonusResult{
		Bonus:          annualBonus,
		AverageMonthly: avg,
		Tax:            tax,
		NetBonus:       clampZero(annualBonus.Sub(tax)),
	}
}
