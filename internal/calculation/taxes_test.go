package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTax(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		expected string
	}{
		{"zero base", "0", "0"},
		{"negative base", "-1500", "0"},
		{"first bracket", "15000", "450"},
		{"first bracket upper limit", "36000", "1080"},
		{"second bracket", "100000", "7480"},
		{"second bracket upper limit", "144000", "11880"},
		{"third bracket", "200000", "23080"},
		{"fourth bracket", "400000", "68080"},
		{"fifth bracket", "500000", "97080"},
		{"sixth bracket", "800000", "194080"},
		{"top bracket", "1000000", "268080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComputeTax(d(tt.base))
			assert.True(t, result.Equal(d(tt.expected)), "ComputeTax(%s) = %s, expected %s", tt.base, result, tt.expected)
		})
	}
}

func TestComputeTax_BracketContinuity(t *testing.T) {
	limits := []string{"36000", "144000", "300000", "420000", "660000", "960000"}
	epsilon := d("0.01")

	for _, limit := range limits {
		at := ComputeTax(d(limit))
		above := ComputeTax(d(limit).Add(epsilon))

		assert.True(t, above.GreaterThanOrEqual(at), "tax must not drop crossing %s", limit)
		// At most the top marginal rate applied to the extra cent.
		assert.True(t, above.Sub(at).LessThanOrEqual(d("0.0045")), "tax jumps crossing %s: %s -> %s", limit, at, above)
	}

	assert.True(t, ComputeTax(d("36000.01")).Equal(d("1080.001")))
}

func TestComputeTax_Monotonic(t *testing.T) {
	prev := decimal.Zero
	for base := int64(0); base <= 1_200_000; base += 2500 {
		tax := ComputeTax(decimal.NewFromInt(base))
		assert.True(t, tax.GreaterThanOrEqual(prev), "tax decreased at base %d", base)
		prev = tax
	}
}

func TestComputeMonthlyTax(t *testing.T) {
	assert.True(t, ComputeMonthlyTax(d("5000")).IsZero(), "allowance fully covers 5000")
	assert.True(t, ComputeMonthlyTax(d("4000")).IsZero())
	assert.True(t, ComputeMonthlyTax(d("20000")).Equal(d("450")))
}

func TestBracketFor(t *testing.T) {
	_, ok := BracketFor(decimal.Zero)
	assert.False(t, ok)

	b, ok := BracketFor(d("36000"))
	assert.True(t, ok)
	assert.True(t, b.Rate.Equal(d("0.03")))

	b, ok = BracketFor(d("5000000"))
	assert.True(t, ok)
	assert.True(t, b.Unbounded)
	assert.True(t, b.QuickDeduction.Equal(d("181920")))
}
