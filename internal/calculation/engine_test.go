package calculation

import (
	"testing"

	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultInput() domain.CalculatorInput {
	return domain.CalculatorInput{
		ProvinceCode:        "44",
		CityCode:            "440300",
		GrossMonthly:        d("20500"),
		EmployeeRates:       domain.DefaultEmployeeRates,
		UseHousingFund:      true,
		AdditionalDeduction: decimal.Zero,
		StartMonth:          1,
		EndMonth:            12,
		ReportingMonth:      4,
		AnnualBonus:         d("30000"),
	}
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.Calculate(defaultInput())
	assert.NotEmpty(t, customLogger.messages, "Should log calculation steps")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_CalculateMonthly(t *testing.T) {
	engine := NewCalculationEngine()
	summary := engine.CalculateMonthly(defaultInput())

	// social: 20500 * 10.3% = 2111.5; housing: 20500 * 12% = 2460
	assert.True(t, summary.Social.Equal(d("2111.5")), "social = %s", summary.Social)
	assert.True(t, summary.Housing.Equal(d("2460")), "housing = %s", summary.Housing)
	// taxable: 20500 - 2111.5 - 2460 - 5000 = 10928.5; 3% = 327.855
	assert.True(t, summary.Tax.Equal(d("327.855")), "tax = %s", summary.Tax)
	assert.True(t, summary.TakeHome.Equal(d("15600.645")), "take-home = %s", summary.TakeHome)
}

func TestCalculationEngine_CalculateMonthly_AdditionalDeduction(t *testing.T) {
	engine := NewCalculationEngine()
	in := defaultInput()
	in.AdditionalDeduction = d("2000")

	summary := engine.CalculateMonthly(in)
	// taxable: 10928.5 - 2000 = 8928.5; 3% = 267.855
	assert.True(t, summary.Tax.Equal(d("267.855")), "tax = %s", summary.Tax)
}

func TestCalculationEngine_CalculateMonthly_NonPositiveGross(t *testing.T) {
	engine := NewCalculationEngine()
	in := defaultInput()
	in.GrossMonthly = decimal.Zero

	summary := engine.CalculateMonthly(in)
	assert.True(t, summary.Social.IsZero())
	assert.True(t, summary.Tax.IsZero())
	assert.True(t, summary.TakeHome.IsZero())
	for _, l := range summary.Breakdown.Lines {
		assert.True(t, l.Employee.IsZero())
		assert.True(t, l.Employer.IsZero())
	}
}

func TestCalculationEngine_Calculate(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.Calculate(defaultInput())

	require.True(t, result.HasProjection())
	require.Len(t, result.Projection, 12)

	first := result.Projection[0]
	assert.True(t, first.MonthFund.Equal(d("4571.5")))
	assert.True(t, first.MonthTax.Equal(d("327.855")), "month 1 tax = %s", first.MonthTax)

	// Month 4 crosses 36000 cumulative taxable: 43714 * 10% - 2520 = 1851.4
	// minus 983.565 withheld over months 1-3
	assert.True(t, result.Projection[3].MonthTax.Equal(d("867.835")), "month 4 tax = %s", result.Projection[3].MonthTax)

	require.NotNil(t, result.Selected)
	assert.Equal(t, 4, result.EffectiveMonth)
	assert.Equal(t, 4, result.Selected.Month)

	assert.True(t, result.AnnualGross.Equal(d("246000")))
	last := result.Projection[11]
	assert.True(t, result.AnnualTax.Equal(last.CumulativeTax))
	assert.True(t, result.AnnualNet.Equal(result.AnnualGross.Sub(last.CumulativeFund).Sub(result.AnnualTax)))

	assert.True(t, result.Bonus.Tax.Equal(d("900")))
	assert.True(t, result.Bonus.NetBonus.Equal(d("29100")))
}

func TestCalculationEngine_Calculate_ReportingMonthOutsideRange(t *testing.T) {
	engine := NewCalculationEngine()
	in := defaultInput()
	in.StartMonth = 6
	in.EndMonth = 9
	in.ReportingMonth = 2

	result := engine.Calculate(in)
	assert.Equal(t, 6, result.EffectiveMonth)
	require.NotNil(t, result.Selected)
	assert.Equal(t, 6, result.Selected.Month)
}

func TestCalculationEngine_Calculate_HousingOptOut(t *testing.T) {
	engine := NewCalculationEngine()
	in := defaultInput()
	in.UseHousingFund = false

	result := engine.Calculate(in)
	housing := result.Summary.Breakdown.Line(domain.CategoryHousing)
	assert.True(t, housing.Employee.IsZero())
	assert.True(t, housing.Employer.IsZero())
	assert.True(t, result.Summary.Housing.IsZero())
	assert.True(t, result.Projection[0].MonthFund.Equal(d("2111.5")))
}

func TestCalculationEngine_Calculate_NoIncome(t *testing.T) {
	engine := NewCalculationEngine()
	in := defaultInput()
	in.GrossMonthly = d("-1")

	result := engine.Calculate(in)
	assert.False(t, result.HasProjection())
	assert.Nil(t, result.Selected)
	assert.True(t, result.AnnualTax.IsZero())
	assert.True(t, result.Bonus.Tax.Equal(d("900")), "bonus is independent of salary")
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...any) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...any) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...any) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...any) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
