package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/paygo/internal/breakeven"
	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/compare"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/rgehrsitz/paygo/internal/output"
)

const exampleInput = "../testdata/example_input.yaml"

var june = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func loadExample(t *testing.T) (*config.InputParser, *config.FormInput) {
	t.Helper()
	parser := config.NewInputParser()
	parser.Now = func() time.Time { return june }
	form, err := parser.LoadFromFile(exampleInput)
	require.NoError(t, err, "Should load the example input")
	require.NoError(t, parser.ValidateForm(form))
	return parser, form
}

// TestBasicIntegration runs the example input end to end
func TestBasicIntegration(t *testing.T) {
	parser, form := loadExample(t)
	engine := calculation.NewCalculationEngine()
	result := engine.Calculate(form.Normalize(parser.Now()))

	t.Run("input_loading", func(t *testing.T) {
		assert.Equal(t, "31", form.ProvinceCode)
		assert.Equal(t, "310100", form.CityCode)
		assert.Equal(t, "0.5", form.UnemploymentRate, "city defaults fill rates the file omits")
		assert.Equal(t, "5", form.HousingRate, "the file's own rate wins")
	})

	t.Run("projection_invariants", func(t *testing.T) {
		require.Len(t, result.Projection, 8)
		assert.Equal(t, 3, result.Projection[0].Month)
		assert.Equal(t, 10, result.Projection[7].Month)
		assert.Equal(t, 6, result.EffectiveMonth)
		require.NotNil(t, result.Selected)
		assert.Equal(t, 6, result.Selected.Month)

		sum := decimal.Zero
		prevCumTax := decimal.Zero
		for _, row := range result.Projection {
			sum = sum.Add(row.MonthTax)
			assert.False(t, row.MonthTax.IsNegative(), "month %d tax", row.Month)
			assert.True(t, row.CumulativeTax.GreaterThanOrEqual(prevCumTax), "cumulative tax never decreases")
			assert.True(t, row.NetSalary.Equal(row.PreTax.Sub(row.MonthFund).Sub(row.MonthTax)), "month %d net", row.Month)
			prevCumTax = row.CumulativeTax
		}
		last := result.Projection[len(result.Projection)-1]
		assert.True(t, sum.Equal(last.CumulativeTax), "month taxes add up to the cumulative tax")
		assert.True(t, result.AnnualTax.Equal(last.CumulativeTax))
	})

	t.Run("contribution_split", func(t *testing.T) {
		b := result.Summary.Breakdown
		require.Len(t, b.Lines, len(domain.Categories))
		pension := b.Line(domain.CategoryPension)
		assert.True(t, pension.Base.Equal(decimal.NewFromInt(25000)), "explicit social base is used")
		assert.True(t, pension.Employee.Equal(decimal.NewFromInt(2000)))
		assert.True(t, pension.Employer.Equal(decimal.NewFromInt(4000)))
		housing := b.Line(domain.CategoryHousing)
		assert.True(t, housing.Base.Equal(decimal.NewFromInt(30000)), "blank housing base falls back to gross")
		assert.True(t, housing.Employee.Equal(decimal.NewFromInt(1500)))
	})

	t.Run("bonus", func(t *testing.T) {
		assert.True(t, result.Bonus.Bonus.Equal(decimal.NewFromInt(60000)))
		assert.True(t, result.Bonus.AverageMonthly.Equal(decimal.NewFromInt(5000)))
		// the 5,000 average falls in the 3% band of the annual table
		assert.True(t, result.Bonus.Tax.Equal(decimal.NewFromInt(1800)))
		assert.True(t, result.Bonus.NetBonus.Equal(decimal.NewFromInt(58200)))
	})

	t.Run("formatters", func(t *testing.T) {
		for _, name := range output.AvailableFormatterNames() {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f, name)
			data, err := f.Format(result)
			require.NoError(t, err, name)
			assert.NotEmpty(t, data, name)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		again := engine.Calculate(form.Normalize(parser.Now()))
		assert.True(t, again.AnnualNet.Equal(result.AnnualNet))
		assert.True(t, again.Summary.TakeHome.Equal(result.Summary.TakeHome))
	})
}

// TestGrossUpRoundTrip solves back to the example's own salary
func TestGrossUpRoundTrip(t *testing.T) {
	parser, form := loadExample(t)
	engine := calculation.NewCalculationEngine()
	in := form.Normalize(parser.Now())
	result := engine.Calculate(in)

	solver := breakeven.NewDefaultSolver(engine)
	solved, err := solver.SolveGross(context.Background(), breakeven.GrossUpRequest{
		Base:   in,
		Metric: breakeven.MetricTakeHome,
		Target: result.Summary.TakeHome,
	})
	require.NoError(t, err)
	assert.True(t, solved.Success)
	assert.True(t, solved.Gross.Sub(in.GrossMonthly).Abs().LessThan(decimal.RequireFromString("0.1")),
		"solved gross %s should be close to %s", solved.Gross, in.GrossMonthly)
}

// TestCompareAgainstOwnCity checks that the form's city is the base and that
// re-running it as an alternative shows no difference
func TestCompareAgainstOwnCity(t *testing.T) {
	parser, form := loadExample(t)
	engine := compare.NewCompareEngine(calculation.NewCalculationEngine(), parser.Catalog)
	engine.Now = parser.Now

	set, err := engine.Compare(context.Background(), *form, []string{"110100", "320500"})
	require.NoError(t, err)
	assert.Equal(t, "310100", set.BaseCity)
	require.Len(t, set.AlternativeResults, 2)

	suzhou := set.AlternativeResults[1]
	assert.False(t, suzhou.HasDefaults)
	assert.True(t, suzhou.TakeHomeDiffFromBase.IsZero(), "a city without defaults keeps the base rates")
}

// TestErrorHandling covers the I/O edges
func TestErrorHandling(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.LoadFromFile("../testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	form, err := parser.LoadFromFile("../testdata/invalid_region.yaml")
	require.NoError(t, err)
	err = parser.ValidateForm(form)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not in province")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	solver := breakeven.NewDefaultSolver(calculation.NewCalculationEngine())
	_, err = solver.SolveGross(ctx, breakeven.GrossUpRequest{
		Base:   config.DefaultForm(june).Normalize(june),
		Metric: breakeven.MetricTakeHome,
		Target: decimal.NewFromInt(15000),
	})
	require.Error(t, err)
	var solverErr *breakeven.SolverError
	assert.ErrorAs(t, err, &solverErr)
}
