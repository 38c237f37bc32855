package belanja

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/prasetyo/belanja/date"
	"github.com/prasetyo/belanja/i18n"
)

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		name   string
		amount Amount
		code   string
		lang   i18n.Lang
		want   string
	}{
		// Indonesian grouping uses "." and the decimal comma.
		{name: "IDR in Indonesian", amount: A(1234.5), code: "IDR", lang: i18n.Indonesian, want: "Rp1.234,50"},
		{name: "US grouping", amount: A(1234.5), code: "USD", lang: i18n.English, want: "$1,234.50"},
		{name: "two digits always", amount: A(30000), code: "IDR", lang: i18n.Indonesian, want: "Rp30.000,00"},
		{name: "euro", amount: A(42500), code: "EUR", lang: i18n.English, want: "€42,500.00"},
		// JPY has no ISO minor unit but is still shown with two digits.
		{name: "yen", amount: A(1234.5), code: "JPY", lang: i18n.English, want: "¥1,234.50"},
		{name: "pound", amount: A(0.5), code: "GBP", lang: i18n.English, want: "£0.50"},
		{name: "unknown code falls back to prefix", amount: A(1234.5), code: "XYZ", lang: i18n.English, want: "XYZ 1,234.50"},
		// More significant digits than a float64 carries stay exact.
		{
			name:   "large amount in English",
			amount: A(decimal.RequireFromString("12345678901234567.89")),
			code:   "USD", lang: i18n.English,
			want: "$12,345,678,901,234,567.89",
		},
		{
			name:   "large amount in Indonesian",
			amount: A(decimal.RequireFromString("12345678901234567.89")),
			code:   "IDR", lang: i18n.Indonesian,
			want: "Rp12.345.678.901.234.567,89",
		},
		{name: "sub-cent rounds", amount: A(decimal.RequireFromString("0.005")), code: "USD", lang: i18n.English, want: "$0.01"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatCurrency(tc.amount, tc.code, tc.lang)
			if got != tc.want {
				t.Errorf("FormatCurrency(%s, %s, %s) = %q, want %q", tc.amount, tc.code, tc.lang, got, tc.want)
			}
		})
	}
}

func TestFormatCurrency_Deterministic(t *testing.T) {
	a := FormatCurrency(A(1234.5), "IDR", i18n.Indonesian)
	b := FormatCurrency(A(1234.5), "IDR", i18n.Indonesian)
	if a != b {
		t.Errorf("same triple formatted differently: %q vs %q", a, b)
	}
}

func TestFormatDate(t *testing.T) {
	testCases := []struct {
		in   string
		lang i18n.Lang
		want string
	}{
		{in: "2024-01-10", lang: i18n.Indonesian, want: "10 Jan 2024"},
		{in: "2024-01-10", lang: i18n.English, want: "Jan 10, 2024"},
		{in: "2024-05-03", lang: i18n.Indonesian, want: "3 Mei 2024"},
		{in: "2024-05-03", lang: i18n.English, want: "May 3, 2024"},
		{in: "2024-08-17", lang: i18n.Indonesian, want: "17 Agu 2024"},
		{in: "2024-12-31", lang: i18n.English, want: "Dec 31, 2024"},
	}
	for _, tc := range testCases {
		got := FormatDate(date.MustParse(tc.in), tc.lang)
		if got != tc.want {
			t.Errorf("FormatDate(%s, %s) = %q, want %q", tc.in, tc.lang, got, tc.want)
		}
	}
}
