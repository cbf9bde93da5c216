package money

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is the language quotes are printed in.
var Locale = language.French

// Format renders amount in the given ISO currency the French way, symbol
// after the number: 1 620,00 €. Codes x/text does not recognize fall back to
// the fixed symbol table with two decimals.
func Format(amount float64, code string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fallback(amount, code)
	}
	// x/text prints "<symbol> <number>" for every locale.
	out := message.NewPrinter(Locale).Sprint(currency.Symbol(unit.Amount(amount)))
	sym, num, ok := strings.Cut(out, " ")
	if !ok {
		return out
	}
	return num + "\u00a0" + sym
}

// FormatAmount is Format for a typed Currency.
func FormatAmount(amount float64, c Currency) string {
	return Format(amount, string(c))
}

func fallback(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", Currency(code).Symbol(), amount)
}
