package activity

import (
	"slices"

	"github.com/google/uuid"

	"hurghada-dream/go_backend/internal/domain/money"
)

// Activity is one bookable excursion in the catalog.
type Activity struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    float64        `json:"price"`
	Currency money.Currency `json:"currency"`
	Days     []int          `json:"days"`
	Notes    string         `json:"notes"`
}

// Draft holds the editable fields; updates replace all of them at once.
type Draft struct {
	Name     string         `json:"name" validate:"required"`
	Price    float64        `json:"price" validate:"gte=0"`
	Currency money.Currency `json:"currency" validate:"required,oneof=EGP EUR USD"`
	Days     []int          `json:"days" validate:"unique,dive,min=0,max=6"`
	Notes    string         `json:"notes"`
}

func NewID() string {
	return uuid.NewString()
}

// Build returns the Activity for draft under the given id.
func (d Draft) Build(id string) Activity {
	days := make([]int, len(d.Days))
	copy(days, d.Days)
	return Activity{
		ID:       id,
		Name:     d.Name,
		Price:    d.Price,
		Currency: d.Currency,
		Days:     days,
		Notes:    d.Notes,
	}
}

// AvailableOn reports whether the activity runs on weekday (0 = Sunday).
func (a Activity) AvailableOn(weekday int) bool {
	return slices.Contains(a.Days, weekday)
}

// Equal is structural equality; nil and empty day sets compare equal.
func Equal(a, b Activity) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Price == b.Price &&
		a.Currency == b.Currency &&
		a.Notes == b.Notes &&
		slices.Equal(a.Days, b.Days)
}

// EqualSnapshots compares two ordered collections element by element.
func EqualSnapshots(a, b []Activity) bool {
	return slices.EqualFunc(a, b, Equal)
}

// ToggleDay adds weekday to days or removes it if present. The input is not modified.
func ToggleDay(days []int, weekday int) []int {
	if i := slices.Index(days, weekday); i >= 0 {
		return slices.Delete(slices.Clone(days), i, i+1)
	}
	return append(slices.Clone(days), weekday)
}

// Examples is the starter catalog used when nothing has been stored yet.
func Examples() []Activity {
	return []Activity{
		{ID: NewID(), Name: "Safari Quad (3h)", Price: 900, Currency: money.EGP, Days: []int{1, 3, 5}, Notes: "Transfert inclus"},
		{ID: NewID(), Name: "Plongée – Bateau (2 plongées)", Price: 2500, Currency: money.EGP, Days: []int{2, 4, 6}, Notes: "Équipement en option"},
		{ID: NewID(), Name: "Île Giftun – Snorkeling", Price: 1800, Currency: money.EGP, Days: []int{0, 2, 5}, Notes: "Déjeuner inclus"},
	}
}
