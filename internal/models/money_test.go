package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "₹0.00"},
		{"small", "42.5", "₹42.50"},
		{"thousands", "1234.5", "₹1,234.50"},
		{"lakhs", "123456.78", "₹123,456.78"},
		{"millions", "1234567.89", "₹1,234,567.89"},
		{"negative", "-1234.5", "-₹1,234.50"},
		{"exact_three_digits", "999.99", "₹999.99"},
		{"four_digits", "1000", "₹1,000.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatINR(decimal.RequireFromString(tc.amount))
			if got != tc.want {
				t.Errorf("FormatINR(%s) = %s, want %s", tc.amount, got, tc.want)
			}
		})
	}
}

func TestRoundAmount(t *testing.T) {
	got := RoundAmount(decimal.RequireFromString("10.005"))
	if got.String() != "10.01" {
		t.Errorf("expected 10.01, got %s", got)
	}

	got = RoundAmount(decimal.RequireFromString("10.004"))
	if got.String() != "10" {
		t.Errorf("expected 10, got %s", got)
	}
}
