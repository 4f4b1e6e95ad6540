package domain

import (
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{890, "890"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{50000000, "50,000,000"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "zero", in: "0", want: "0"},
		{name: "integer", in: "1234567", want: "1,234,567"},
		{name: "fraction_kept", in: "1234.5", want: "1,234.5"},
		{name: "three_digits_max", in: "1234.5678", want: "1,234.568"},
		{name: "trailing_zeros_dropped", in: "1000.100", want: "1,000.1"},
		{name: "round_half_up", in: "0.0005", want: "0.001"},
		{name: "rounds_to_integer", in: "999.9999", want: "1,000"},
		{name: "negative", in: "-1234567.25", want: "-1,234,567.25"},
		{name: "negative_below_one", in: "-0.5", want: "-0.5"},
		{name: "beyond_int64", in: "100000000000000000000", want: "100,000,000,000,000,000,000"},
		{name: "beyond_int64_fraction", in: "-12345678901234567890123.4567", want: "-12,345,678,901,234,567,890,123.457"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDecimal(decimal.RequireFromString(tt.in))
			if got != tt.want {
				t.Errorf("FormatDecimal(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatPercentChange(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4.2", "+4.2%"},
		{"0", "0%"},
		{"-3.75", "-3.75%"},
		{"12", "+12%"},
	}
	for _, tt := range tests {
		if got := FormatPercentChange(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatPercentChange(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// Grouping only inserts separators: stripping them gives back the number.
func TestFormatInt_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, "n")
		s := FormatInt(n)

		back, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
		if err != nil {
			t.Fatalf("unparseable %q: %v", s, err)
		}
		if back != n {
			t.Fatalf("FormatInt(%d) = %q round-trips to %d", n, s, back)
		}
		for _, group := range strings.Split(strings.TrimPrefix(s, "-"), ",")[1:] {
			if len(group) != 3 {
				t.Fatalf("FormatInt(%d) = %q has a group of %d digits", n, s, len(group))
			}
		}
	})
}

func TestFormatDecimal_AgreesWithFormatIntOnIntegers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, "n")
		if got, want := FormatDecimal(decimal.NewFromInt(n)), FormatInt(n); got != want {
			t.Fatalf("FormatDecimal(%d) = %q, FormatInt = %q", n, got, want)
		}
	})
}
