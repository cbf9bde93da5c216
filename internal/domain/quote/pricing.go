package quote

import (
	"math"

	"github.com/shopspring/decimal"

	"hurghada-dream/go_backend/internal/domain/money"
)

type Totals struct {
	Subtotal        float64        `json:"subtotal"`
	DiscountPercent float64        `json:"discountPercent"`
	DiscountAmount  float64        `json:"discountAmount"`
	Total           float64        `json:"total"`
	Currency        money.Currency `json:"currency"`
}

var hundred = decimal.NewFromInt(100)

// Calculate sums unitPrice×qty and applies the discount. The total is clamped
// at zero; a negative discount acts as a surcharge. Items in other currencies
// are added as-is, there is no conversion.
func Calculate(items []Item, discountPercent float64, defaultCurrency money.Currency) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.lineTotal())
	}

	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(finite(discountPercent)).Div(hundred))
	total := subtotal.Mul(factor)
	if total.IsNegative() {
		total = decimal.Zero
	}

	cur := defaultCurrency
	if len(items) > 0 && items[0].Currency != "" {
		cur = items[0].Currency
	}
	return Totals{
		Subtotal:        subtotal.InexactFloat64(),
		DiscountPercent: discountPercent,
		DiscountAmount:  subtotal.Sub(total).InexactFloat64(),
		Total:           total.InexactFloat64(),
		Currency:        cur,
	}
}

// finite maps NaN and ±Inf to zero; decimal cannot represent them.
func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
