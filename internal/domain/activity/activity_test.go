package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/money"
)

func TestToggleDayTwiceRestores(t *testing.T) {
	cases := [][]int{
		{},
		{1, 3, 5},
		{0},
		{6, 2},
	}
	for _, days := range cases {
		for weekday := 0; weekday <= 6; weekday++ {
			once := ToggleDay(days, weekday)
			twice := ToggleDay(once, weekday)
			assert.ElementsMatch(t, days, twice, "days=%v weekday=%d", days, weekday)
		}
	}
}

func TestToggleDayDoesNotMutateInput(t *testing.T) {
	days := []int{1, 3, 5}
	_ = ToggleDay(days, 3)
	assert.Equal(t, []int{1, 3, 5}, days)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr string
	}{
		{"ok", Draft{Name: "Safari", Price: 900, Currency: money.EGP, Days: []int{1, 3}}, ""},
		{"empty name", Draft{Name: "", Currency: money.EGP}, "name is required"},
		{"blank name", Draft{Name: "   ", Currency: money.EGP}, "name is required"},
		{"missing currency", Draft{Name: "Safari"}, "currency is required"},
		{"unknown currency", Draft{Name: "Safari", Currency: "GBP"}, "currency must be one of EGP, EUR, USD"},
		{"negative price", Draft{Name: "Safari", Currency: money.EUR, Price: -1}, "price must not be negative"},
		{"day out of range", Draft{Name: "Safari", Currency: money.EUR, Days: []int{7}}, "days must be weekdays between 0 and 6"},
		{"duplicate day", Draft{Name: "Safari", Currency: money.EUR, Days: []int{2, 2}}, "days must not contain duplicates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate("test", tt.draft)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.KindValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	err := Validate("test", Draft{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "currency is required")
}

func TestDecodeRowDefensive(t *testing.T) {
	var row Row
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 42,
		"name": "Giftun",
		"price": "1800,50",
		"currency": null,
		"days": [0, "2", 2, 9, "x", 1.5],
		"notes": null
	}`), &row))

	got := DecodeRow(row, money.EUR)

	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "Giftun", got.Name)
	assert.Equal(t, 1800.5, got.Price)
	assert.Equal(t, money.EUR, got.Currency)
	assert.Equal(t, []int{0, 2}, got.Days)
	assert.Equal(t, "", got.Notes)
}

func TestDecodeRowGarbage(t *testing.T) {
	got := DecodeRow(Row{"id": "a", "price": "n/a", "days": "mon", "currency": "EGP"}, money.EUR)

	assert.Equal(t, "a", got.ID)
	assert.Equal(t, 0.0, got.Price)
	assert.NotNil(t, got.Days)
	assert.Empty(t, got.Days)
	assert.Equal(t, money.EGP, got.Currency)
}

func TestEqualSnapshotsOrderSensitive(t *testing.T) {
	a := Activity{ID: "1", Name: "A", Currency: money.EGP, Days: []int{1}}
	b := Activity{ID: "2", Name: "B", Currency: money.EGP}
	bEmpty := b
	bEmpty.Days = []int{}

	assert.True(t, EqualSnapshots([]Activity{a, b}, []Activity{a, bEmpty}))
	assert.False(t, EqualSnapshots([]Activity{a, b}, []Activity{b, a}))
	assert.False(t, EqualSnapshots([]Activity{a}, []Activity{a, b}))
}

func TestDraftBuildCopiesDays(t *testing.T) {
	d := Draft{Name: "X", Currency: money.USD, Days: []int{1}}
	a := d.Build("id-1")
	d.Days[0] = 5
	assert.Equal(t, []int{1}, a.Days)
	assert.Equal(t, "id-1", a.ID)
	assert.True(t, a.AvailableOn(1))
	assert.False(t, a.AvailableOn(5))
}

func TestNormalizeTrimsButKeepsDays(t *testing.T) {
	d := Draft{Name: "  Quad ", Notes: " x ", Currency: " eur", Days: []int{9, 1, 1}}.Normalize()
	assert.Equal(t, "Quad", d.Name)
	assert.Equal(t, "x", d.Notes)
	assert.Equal(t, money.EUR, d.Currency)
	assert.Equal(t, []int{9, 1, 1}, d.Days)
	assert.Error(t, Validate("test", d))
}
