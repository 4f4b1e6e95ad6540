package domain

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DateLayout is how commit dates are displayed.
const DateLayout = "2006-01-02"

// FormatInt groups thousands with commas: 1234567 -> "1,234,567".
func FormatInt(n int64) string {
	return humanize.Comma(n)
}

// FormatDecimal groups the integer part with commas and keeps at most three
// fraction digits, rounding half away from zero: 1234.5678 -> "1,234.568".
func FormatDecimal(d decimal.Decimal) string {
	rounded := d.Round(3)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intPart, frac, _ := strings.Cut(rounded.String(), ".")
	whole, err := decimal.NewFromString(intPart)
	if err != nil {
		return sign + rounded.String()
	}

	out := sign + humanize.BigComma(whole.BigInt())
	if frac != "" {
		out += "." + frac
	}
	return out
}

// FormatPercentChange renders a signed percentage: 4.2 -> "+4.2%", -1 -> "-1%".
func FormatPercentChange(pct decimal.Decimal) string {
	prefix := ""
	if pct.IsPositive() {
		prefix = "+"
	}
	return prefix + pct.String() + "%"
}
