package calculation

import (
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// NormalizeMonthRange clamps both endpoints into [1,12] and swaps them when
// they arrive out of order.
func NormalizeMonthRange(startMonth, endMonth int) (start, end int) {
	start = clampMonth(startMonth)
	end = clampMonth(endMonth)
	if start > end {
		start, end = end, start
	}
	return start, end
}

func clampMonth(m int) int {
	if m < 1 {
		return 1
	}
	if m > 12 {
		return 12
	}
	return m
}

// ProjectMonths runs the cumulative withholding method over [startMonth,
// endMonth]. Each month's withholding is the cumulative tax on year-to-date
// taxable income less what earlier months already withheld, so months must be
// visited in ascending order. The table is rebuilt from scratch on every call.
func ProjectMonths(grossMonthly, perMonthFundDeduction, additionalDeductionPerMonth decimal.Decimal, startMonth, endMonth int) []domain.MonthlyProjectionRow {
	if grossMonthly.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	start, end := NormalizeMonthRange(startMonth, endMonth)
	additional := clampZero(additionalDeductionPerMonth)

	rows := make([]domain.MonthlyProjectionRow, 0, end-start+1)

	cumulativePreTax := decimal.Zero
	cumulativeFund := decimal.Zero
	cumulativeAllowance := decimal.Zero
	cumulativeAdditional := decimal.Zero
	withheld := decimal.Zero

	for m := start; m <= end; m++ {
		cumulativePreTax = cumulativePreTax.Add(grossMonthly)
		cumulativeFund = cumulativeFund.Add(perMonthFundDeduction)
		cumulativeAllowance = cumulativeAllowance.Add(domain.StandardAllowance)
		cumulativeAdditional = cumulativeAdditional.Add(additional)

		taxable := cumulativePreTax.
			Sub(cumulativeFund).
			Sub(cumulativeAllowance).
			Sub(cumulativeAdditional)

		cumulativeTax := ComputeTax(taxable)
		monthTax := clampZero(cumulativeTax.Sub(withheld))
		withheld = withheld.Add(monthTax)

		rows = append(rows, domain.MonthlyProjectionRow{
			Month:                m,
			PreTax:               grossMonthly,
			CumulativePreTax:     cumulativePreTax,
			MonthFund:            perMonthFundDeduction,
			CumulativeFund:       cumulativeFund,
			CumulativeAllowance:  cumulativeAllowance,
			CumulativeAdditional: cumulativeAdditional,
			CumulativeTaxable:    taxable,
			CumulativeTax:        cumulativeTax,
			MonthTax:             monthTax,
			NetSalary:            grossMonthly.Sub(perMonthFundDeduction).Sub(monthTax),
		})
	}

	return rows
}

// EffectiveReportingMonth snaps a reporting month into the normalized range;
// anything outside it falls back to the range start.
func EffectiveReportingMonth(reportingMonth, startMonth, endMonth int) int {
	start, end := NormalizeMonthRange(startMonth, endMonth)
	if reportingMonth < start || reportingMonth > end {
		return start
	}
	return reportingMonth
}

// SelectRow returns the projection row for month, or the first row when that
// month is absent. It returns nil for an empty projection.
func SelectRow(rows []domain.MonthlyProjectionRow, month int) *domain.MonthlyProjectionRow {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].Month == month {
			return &rows[i]
		}
	}
	return &rows[0]
}
