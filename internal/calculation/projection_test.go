package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectMonths_EndToEnd(t *testing.T) {
	rows := ProjectMonths(d("20000"), decimal.Zero, decimal.Zero, 1, 12)
	require.Len(t, rows, 12)

	// Month 1: 20000 - 5000 = 15000 taxable, 3% = 450
	assert.Equal(t, 1, rows[0].Month)
	assert.True(t, rows[0].CumulativeTaxable.Equal(d("15000")))
	assert.True(t, rows[0].MonthTax.Equal(d("450")))
	assert.True(t, rows[0].NetSalary.Equal(d("19550")))

	// Month 2: 30000 cumulative taxable, 900 cumulative tax, 450 this month
	assert.True(t, rows[1].CumulativeTaxable.Equal(d("30000")))
	assert.True(t, rows[1].CumulativeTax.Equal(d("900")))
	assert.True(t, rows[1].MonthTax.Equal(d("450")))

	// Month 3 crosses into the 10% bracket: 4500 - 2520 = 1980 cumulative
	assert.True(t, rows[2].CumulativeTax.Equal(d("1980")))
	assert.True(t, rows[2].MonthTax.Equal(d("1080")))

	last := rows[11]
	assert.True(t, last.CumulativePreTax.Equal(d("240000")))
	assert.True(t, last.CumulativeAllowance.Equal(d("60000")))
}

func TestProjectMonths_CumulativeInvariants(t *testing.T) {
	rows := ProjectMonths(d("35000"), d("3200"), d("2000"), 1, 12)
	require.Len(t, rows, 12)

	sum := decimal.Zero
	prev := decimal.Zero
	for _, row := range rows {
		assert.True(t, row.CumulativeTax.GreaterThanOrEqual(prev), "cumulative tax decreased in month %d", row.Month)
		assert.False(t, row.MonthTax.IsNegative())
		prev = row.CumulativeTax
		sum = sum.Add(row.MonthTax)
	}

	final := rows[len(rows)-1]
	assert.True(t, sum.Equal(ComputeTax(final.CumulativeTaxable)),
		"sum of monthly tax %s != tax on final base %s", sum, ComputeTax(final.CumulativeTaxable))
}

func TestProjectMonths_SwappedRange(t *testing.T) {
	forward := ProjectMonths(d("18000"), d("1500"), decimal.Zero, 3, 9)
	backward := ProjectMonths(d("18000"), d("1500"), decimal.Zero, 9, 3)

	require.Len(t, forward, 7)
	assert.Equal(t, forward, backward)
	assert.Equal(t, 3, backward[0].Month)
	assert.Equal(t, 9, backward[len(backward)-1].Month)
}

func TestProjectMonths_ClampsRange(t *testing.T) {
	rows := ProjectMonths(d("10000"), decimal.Zero, decimal.Zero, -4, 40)
	require.Len(t, rows, 12)
	assert.Equal(t, 1, rows[0].Month)
	assert.Equal(t, 12, rows[11].Month)
}

func TestProjectMonths_NonPositiveGross(t *testing.T) {
	assert.Empty(t, ProjectMonths(decimal.Zero, decimal.Zero, decimal.Zero, 1, 12))
	assert.Empty(t, ProjectMonths(d("-100"), decimal.Zero, decimal.Zero, 1, 12))
}

func TestProjectMonths_NegativeAdditionalIgnored(t *testing.T) {
	withNegative := ProjectMonths(d("20000"), decimal.Zero, d("-3000"), 1, 2)
	withZero := ProjectMonths(d("20000"), decimal.Zero, decimal.Zero, 1, 2)
	assert.Equal(t, withZero, withNegative)
}

func TestProjectMonths_Restartable(t *testing.T) {
	first := ProjectMonths(d("26000"), d("2400"), d("1000"), 1, 12)
	second := ProjectMonths(d("26000"), d("2400"), d("1000"), 1, 12)
	assert.Equal(t, first, second)
}

func TestEffectiveReportingMonth(t *testing.T) {
	assert.Equal(t, 5, EffectiveReportingMonth(5, 1, 12))
	assert.Equal(t, 3, EffectiveReportingMonth(1, 3, 9))
	assert.Equal(t, 3, EffectiveReportingMonth(11, 9, 3))
	assert.Equal(t, 1, EffectiveReportingMonth(0, 1, 12))
}

func TestSelectRow(t *testing.T) {
	assert.Nil(t, SelectRow(nil, 4))

	rows := ProjectMonths(d("20000"), decimal.Zero, decimal.Zero, 2, 6)
	assert.Equal(t, 4, SelectRow(rows, 4).Month)
	assert.Equal(t, 2, SelectRow(rows, 11).Month)
}
