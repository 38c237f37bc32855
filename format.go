package belanja

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/prasetyo/belanja/date"
	"github.com/prasetyo/belanja/i18n"
)

// FormatCurrency renders an amount using the language's locale for
// grouping and decimal separators, with exactly two fraction digits,
// and the currency's standard symbol and placement.
//
// The result is deterministic for a given (amount, code, lang) triple:
// e.g. 1234.5 formats as "Rp1.234,50" for (IDR, id) and as "$1,234.50"
// for (USD, en).
func FormatCurrency(a Amount, code string, lang i18n.Lang) string {
	p := message.NewPrinter(lang.Tag())

	// Split the amount exactly into units and cents; a float64 detour
	// would lose precision past 15 significant digits.
	cents := a.value.Round(2)
	sign := ""
	if cents.IsNegative() {
		sign = "-"
		cents = cents.Abs()
	}
	units := cents.IntPart()
	frac := cents.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(100)).IntPart()

	digits := fmt.Sprintf("%s%s%s%02d",
		sign, p.Sprint(number.Decimal(units)), decimalSeparator(lang), frac)

	cur := money.GetCurrency(code)
	if cur == nil {
		// Unknown ISO code: fall back to the code itself as a prefix.
		return code + " " + digits
	}
	s := strings.Replace(cur.Template, "1", digits, 1)
	return strings.Replace(s, "$", cur.Grapheme, 1)
}

// decimalSeparator returns the locale's decimal mark; grouping comes
// from the locale-aware integer printer above.
func decimalSeparator(lang i18n.Lang) string {
	if lang == i18n.English {
		return "."
	}
	return ","
}

// FormatDate renders d as day, abbreviated month name and full year,
// following the language's spelling and ordering conventions:
// "10 Jan 2024" in Indonesian, "Jan 10, 2024" in English.
func FormatDate(d date.Date, lang i18n.Lang) string {
	month := i18n.MonthAbbrev(d.Month(), lang)
	if lang == i18n.English {
		return fmt.Sprintf("%s %d, %d", month, d.Day(), d.Year())
	}
	return fmt.Sprintf("%d %s %d", d.Day(), month, d.Year())
}
