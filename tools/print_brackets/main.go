package main

import (
	"fmt"

	"github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints the tax owed just below, at and above every bracket limit so a
// discontinuity in the quick deductions shows up at a glance.
func main() {
	one := decimal.NewFromInt(1)

	fmt.Println("Annual bracket table:")
	for _, b := range domain.AnnualTaxBrackets {
		if b.Unbounded {
			fmt.Printf("  above        %5s%%  quick %s\n", b.Rate.Shift(2).String(), b.QuickDeduction.StringFixed(0))
			continue
		}
		limit := b.UpperLimit
		below := calculation.ComputeTax(limit.Sub(one))
		at := calculation.ComputeTax(limit)
		above := calculation.ComputeTax(limit.Add(one))
		fmt.Printf("  <= %-9s %5s%%  quick %-7s  tax(-1)=%s tax=%s tax(+1)=%s\n",
			limit.StringFixed(0),
			b.Rate.Shift(2).String(),
			b.QuickDeduction.StringFixed(0),
			below.StringFixed(2), at.StringFixed(2), above.StringFixed(2))
	}

	fmt.Println("\nSingle-month withholding for common salaries (no deductions):")
	for _, gross := range []int64{5000, 8000, 10000, 20000, 35000, 50000, 80000} {
		g := decimal.NewFromInt(gross)
		fmt.Printf("  %6d  tax %s\n", gross, calculation.ComputeMonthlyTax(g).StringFixed(2))
	}

	fmt.Println("\nBonus tax at band edges:")
	for _, bonus := range []int64{432000, 432012, 1728000, 1728012} {
		r := calculation.ComputeBonusTax(decimal.NewFromInt(bonus))
		fmt.Printf("  %6d  tax %s  net %s\n", bonus, r.Tax.StringFixed(2), r.NetBonus.StringFixed(2))
	}
}
