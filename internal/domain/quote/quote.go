package quote

import (
	"github.com/shopspring/decimal"

	"hurghada-dream/go_backend/internal/domain/money"
)

// Quote is a working draft. It lives only as long as its editing session.
type Quote struct {
	ID string `json:"id"`
	Details
	DiscountPercent float64        `json:"discountPercent"`
	Currency        money.Currency `json:"currency"`
	Items           []Item         `json:"items"`
}

// Details are the free-text client and context fields.
type Details struct {
	Date   string `json:"date"`
	Client string `json:"client"`
	Hotel  string `json:"hotel"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
}

// Item is one priced line. ActivityID is empty for extra charges.
type Item struct {
	ID         string         `json:"id"`
	ActivityID string         `json:"activityId,omitempty"`
	Name       string         `json:"name"`
	UnitPrice  float64        `json:"unitPrice"`
	Qty        int            `json:"qty"`
	Currency   money.Currency `json:"currency"`
}

// Counts is the participant breakdown for an activity line.
type Counts struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func (c Counts) Total() int {
	return c.Adults + c.Children + c.Infants
}

// Extra is an ad-hoc charge added next to an activity line.
type Extra struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

func (it Item) lineTotal() decimal.Decimal {
	return decimal.NewFromFloat(finite(it.UnitPrice)).Mul(decimal.NewFromInt(int64(it.Qty)))
}

func (it Item) LineTotal() float64 {
	return it.lineTotal().InexactFloat64()
}

// Totals prices the quote in its display currency.
func (q Quote) Totals() Totals {
	return Calculate(q.Items, q.DiscountPercent, q.Currency)
}
