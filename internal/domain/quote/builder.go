package quote

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/money"
)

const dateLayout = "2006-01-02"

// Builder accumulates the items of one draft quote.
type Builder struct {
	mu    sync.Mutex
	q     Quote
	newID func() string
}

func NewBuilder(defaultCurrency money.Currency, now time.Time) *Builder {
	return &Builder{
		q: Quote{
			ID:       uuid.NewString(),
			Details:  Details{Date: now.Format(dateLayout)},
			Currency: defaultCurrency,
			Items:    []Item{},
		},
		newID: uuid.NewString,
	}
}

// Quote returns a copy of the draft.
func (b *Builder) Quote() Quote {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := b.q
	q.Items = slices.Clone(b.q.Items)
	return q
}

func (b *Builder) SetDetails(d Details) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d.Date == "" {
		d.Date = b.q.Date
	}
	b.q.Details = d
}

// SetDiscount stores the percentage as given; out-of-range values only
// matter when the total is clamped.
func (b *Builder) SetDiscount(percent float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.q.DiscountPercent = percent
}

// AddFromActivity appends one line for act priced per participant and, when
// extra has a label and a positive amount, an "Extra: <label>" line after it.
func (b *Builder) AddFromActivity(act *activity.Activity, counts Counts, extra *Extra) ([]Item, error) {
	const op = "quote.add"
	if act == nil {
		return nil, errs.Validation(op, "activity is required")
	}
	if counts.Adults < 0 || counts.Children < 0 || counts.Infants < 0 {
		return nil, errs.Validation(op, "participant counts must not be negative")
	}
	if counts.Total() < 1 {
		return nil, errs.Validation(op, "no participants")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	cur := act.Currency
	if cur == "" {
		cur = b.q.Currency
	}
	added := []Item{{
		ID:         b.newID(),
		ActivityID: act.ID,
		Name:       breakdownName(act.Name, counts),
		UnitPrice:  act.Price,
		Qty:        counts.Total(),
		Currency:   cur,
	}}
	if extra != nil && extra.Amount > 0 && strings.TrimSpace(extra.Label) != "" {
		added = append(added, Item{
			ID:        b.newID(),
			Name:      "Extra: " + strings.TrimSpace(extra.Label),
			UnitPrice: extra.Amount,
			Qty:       1,
			Currency:  b.q.Currency,
		})
	}
	b.q.Items = append(slices.Clone(b.q.Items), added...)
	return added, nil
}

// SetQty replaces the quantity of itemID; anything below 1 becomes 1.
// It reports whether the item exists.
func (b *Builder) SetQty(itemID string, qty int) bool {
	if qty < 1 {
		qty = 1
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	i := slices.IndexFunc(b.q.Items, func(it Item) bool { return it.ID == itemID })
	if i < 0 {
		return false
	}
	items := slices.Clone(b.q.Items)
	items[i].Qty = qty
	b.q.Items = items
	return true
}

// RemoveItem drops itemID; unknown ids are ignored.
func (b *Builder) RemoveItem(itemID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.q.Items = slices.DeleteFunc(slices.Clone(b.q.Items), func(it Item) bool { return it.ID == itemID })
}

// CoerceQty turns a raw quantity input into a valid one. Non-numeric,
// non-finite and non-positive values yield 1; fractions are truncated.
func CoerceQty(v any) int {
	var f float64
	switch t := v.(type) {
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case float64:
		f = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 1
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 1
		}
		f = parsed
	default:
		return 1
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f > math.MaxInt32 {
		return 1
	}
	return int(f)
}

func breakdownName(name string, c Counts) string {
	parts := make([]string, 0, 3)
	for _, p := range []struct {
		n        int
		one, many string
	}{
		{c.Adults, "adulte", "adultes"},
		{c.Children, "enfant", "enfants"},
		{c.Infants, "bébé", "bébés"},
	} {
		switch {
		case p.n == 1:
			parts = append(parts, "1 "+p.one)
		case p.n > 1:
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.many))
		}
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(parts, ", "))
}
