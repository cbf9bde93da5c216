package money

import "fmt"

// Currency is one of the denominations the agency quotes in.
type Currency string

const (
	EGP Currency = "EGP"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

var validCurrencies = []Currency{EGP, EUR, USD}

var symbols = map[Currency]string{
	EGP: "£",
	EUR: "€",
	USD: "$",
}

func (c Currency) String() string {
	return string(c)
}

// IsValid reports whether the currency is in the enumerated set.
func (c Currency) IsValid() bool {
	for _, candidate := range validCurrencies {
		if candidate == c {
			return true
		}
	}
	return false
}

// Symbol returns the table symbol, or "" for codes outside the set.
func (c Currency) Symbol() string {
	return symbols[c]
}

// Currencies lists the supported codes in display order.
func Currencies() []Currency {
	out := make([]Currency, len(validCurrencies))
	copy(out, validCurrencies)
	return out
}

// ParseCurrency converts a raw string into a Currency.
func ParseCurrency(value string) (Currency, error) {
	for _, candidate := range validCurrencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid currency %q", value)
}
