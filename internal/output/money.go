package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as yuan with thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "¥" + b.String() + "." + frac
}

// FormatPercentage formats a rate given in percent (8 means 8%).
func FormatPercentage(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// FormatAmount formats a decimal with two places and no symbol, for machine
// readable outputs.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
