package main

import (
	"fmt"
	"os"
	"strconv"

	calc "github.com/rgehrsitz/paygo/internal/calculation"
	"github.com/rgehrsitz/paygo/internal/config"
	"github.com/shopspring/decimal"
)

// Sweeps the monthly gross for an input file and prints the net figures the
// gross-up solver searches over. Useful for spotting flat regions where the
// bisection stalls.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_gross_up <input-file> [max-gross] [step]")
		return
	}
	p := config.NewInputParser()
	form, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	if err := p.ValidateForm(form); err != nil {
		panic(err)
	}

	maxGross := argInt(2, 60000)
	step := argInt(3, 1000)
	if step <= 0 {
		step = 1000
	}

	engine := calc.NewCalculationEngine()
	base := form.Normalize(p.Now())

	fmt.Println("Gross,TakeHome,MonthTax,RangeNet,RangeTax,Bracket")
	prevRangeNet := decimal.Zero
	for g := 0; g <= maxGross; g += step {
		in := base
		in.GrossMonthly = decimal.NewFromInt(int64(g))
		res := engine.Calculate(in)

		bracket := "-"
		if res.Selected != nil {
			if b, ok := calc.BracketFor(res.Selected.CumulativeTaxable); ok {
				bracket = b.Rate.Shift(2).String() + "%"
			}
		}
		fmt.Printf("%d,%s,%s,%s,%s,%s\n",
			g,
			res.Summary.TakeHome.StringFixed(2),
			res.Summary.Tax.StringFixed(2),
			res.AnnualNet.StringFixed(2),
			res.AnnualTax.StringFixed(2),
			bracket,
		)
		if g > 0 && res.AnnualNet.LessThan(prevRangeNet) {
			fmt.Printf("# range net fell at gross %d: %s -> %s\n", g, prevRangeNet.StringFixed(2), res.AnnualNet.StringFixed(2))
		}
		prevRangeNet = res.AnnualNet
	}
}

func argInt(i, def int) int {
	if len(os.Args) <= i {
		return def
	}
	v, err := strconv.Atoi(os.Args[i])
	if err != nil {
		return def
	}
	return v
}
