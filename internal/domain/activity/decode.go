package activity

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"hurghada-dream/go_backend/internal/domain/money"
)

// Row is an activity as it arrives from the remote table, before any typing.
type Row map[string]any

// DecodeRow turns an externally sourced row into an Activity. It never fails:
// fields that cannot be coerced fall back to defaults so one bad row does not
// spoil the whole snapshot.
func DecodeRow(row Row, defaultCurrency money.Currency) Activity {
	cur := money.Currency(stringField(row["currency"]))
	if !cur.IsValid() {
		cur = defaultCurrency
	}
	return Activity{
		ID:       idField(row["id"]),
		Name:     stringField(row["name"]),
		Price:    priceField(row["price"]),
		Currency: cur,
		Days:     daysField(row["days"]),
		Notes:    stringField(row["notes"]),
	}
}

// DecodeRows maps DecodeRow over rows, keeping their order.
func DecodeRows(rows []Row, defaultCurrency money.Currency) []Activity {
	out := make([]Activity, 0, len(rows))
	for _, r := range rows {
		out = append(out, DecodeRow(r, defaultCurrency))
	}
	return out
}

// Normalize trims the text fields and upper-cases the currency code. Days are
// left alone; Validate rejects bad ones.
func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Notes = strings.TrimSpace(d.Notes)
	d.Currency = money.Currency(strings.ToUpper(strings.TrimSpace(string(d.Currency))))
	return d
}

func idField(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

func stringField(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func numberField(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(t), ",", "."), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func priceField(v any) float64 {
	f, ok := numberField(v)
	if !ok || f < 0 {
		return 0
	}
	return f
}

func daysField(v any) []int {
	raw, ok := v.([]any)
	if !ok {
		return []int{}
	}
	days := make([]int, 0, len(raw))
	for _, item := range raw {
		f, ok := numberField(item)
		if !ok || f != math.Trunc(f) || f < 0 || f > 6 {
			continue
		}
		d := int(f)
		if slices.Contains(days, d) {
			continue
		}
		days = append(days, d)
	}
	return days
}
