package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundAmount applies the fixed 2-decimal currency rounding used for all
// persisted amounts.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatINR renders an amount as "₹" followed by the comma-grouped
// integer part and exactly two fraction digits, e.g. ₹1,234.50.
func FormatINR(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString("₹")
	b.WriteString(groupThousands(intPart))
	b.WriteString(".")
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
