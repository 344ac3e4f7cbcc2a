package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Contribution returns base * ratePercent / 100, clamped to zero.
func Contribution(base, ratePercent decimal.Decimal) decimal.Decimal {
	return clampZero(base.Mul(ratePercent).Div(hundred))
}

// SplitContributions computes employee and employer contributions for every
// category. Social insurance uses socialBase and the housing fund uses
// housingBase; either falls back to gross when nil. Opting out of the housing
// fund zeroes both sides of that category.
func SplitContributions(gross decimal.Decimal, socialBase, housingBase *decimal.Decimal, employee domain.RateSet, useHousingFund bool) domain.ContributionBreakdown {
	sb := gross
	if socialBase != nil {
		sb = *socialBase
	}
	hb := gross
	if housingBase != nil {
		hb = *housingBase
	}

	lines := make([]domain.ContributionLine, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		line := domain.ContributionLine{
			Category:     c,
			Base:         sb,
			EmployeeRate: employee.Rate(c),
			EmployerRate: domain.EmployerRates.Rate(c),
		}
		if c == domain.CategoryHousing {
			line.Base = hb
			if !useHousingFund {
				line.Employee = decimal.Zero
				line.Employer = decimal.Zero
				lines = append(lines, line)
				continue
			}
		}
		line.Employee = Contribution(line.Base, line.EmployeeRate)
		line.Employer = Contribution(line.Base, line.EmployerRate)
		lines = append(lines, line)
	}

	return domain.ContributionBreakdown{Lines: lines}
}
