package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hurghada-dream/go_backend/internal/catalog"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/quote"
	"hurghada-dream/go_backend/internal/domain/settings"
	"hurghada-dream/go_backend/internal/infra/kv"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errs.KindOf(errs.Validation("op", "bad"))))
	assert.Equal(t, http.StatusNotFound, statusFor(errs.KindOf(errs.NotFound("op", "missing %s", "x"))))
	assert.Equal(t, http.StatusBadGateway, statusFor(errs.KindOf(errs.SyncWrite("op", errors.New("down")))))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errs.KindOf(errors.New("boom"))))
}

func TestCoerceFloat(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want float64
		ok   bool
	}{
		{json.Number("12.5"), 12.5, true},
		{"7,5", 7.5, true},
		{" 10 ", 10, true},
		{-5.0, -5, true},
		{"abc", 0, false},
		{"NaN", 0, false},
		{true, 0, false},
	} {
		got, ok := coerceFloat(tc.in)
		assert.Equal(t, tc.ok, ok, "%v", tc.in)
		assert.Equal(t, tc.want, got, "%v", tc.in)
	}
}

func TestDraftsRegistry(t *testing.T) {
	d := newDrafts(0)
	assert.Equal(t, DefaultDraftTTL, d.ttl)
	assert.False(t, d.delete("nope"))
	_, ok := d.get("nope")
	assert.False(t, ok)
}

func TestDraftsExpireAfterTTL(t *testing.T) {
	clock := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	d := newDrafts(time.Hour)
	d.now = func() time.Time { return clock }

	id := d.put(quote.NewBuilder(money.EGP, clock))

	clock = clock.Add(50 * time.Minute)
	_, ok := d.get(id)
	require.True(t, ok, "access refreshes the draft")

	clock = clock.Add(50 * time.Minute)
	_, ok = d.get(id)
	require.True(t, ok)

	clock = clock.Add(61 * time.Minute)
	_, ok = d.get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, d.len())
}

func TestDraftsSweepAndCap(t *testing.T) {
	clock := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	d := newDrafts(time.Hour)
	d.now = func() time.Time { return clock }

	stale := d.put(quote.NewBuilder(money.EGP, clock))
	clock = clock.Add(2 * time.Hour)
	d.put(quote.NewBuilder(money.EGP, clock))
	_, ok := d.items[stale]
	assert.False(t, ok, "expired drafts are swept on put")

	first := ""
	for i := 0; i < maxDrafts+1; i++ {
		clock = clock.Add(time.Second)
		id := d.put(quote.NewBuilder(money.EGP, clock))
		if i == 0 {
			first = id
		}
	}
	assert.Equal(t, maxDrafts, d.len())
	_, ok = d.items[first]
	assert.False(t, ok, "least recently used draft is evicted")
}

func TestExpiredDraftIsNotFound(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	h := New(
		catalog.NewStore(ctx, catalog.Options{KV: mem}),
		settings.NewStore(ctx, mem, settings.Defaults(), nil),
		nil, nil, time.Hour,
	)
	clock := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return clock }
	h.drafts.now = func() time.Time { return clock }

	r := chi.NewRouter()
	r.Post("/quotes", h.CreateQuote)
	r.Get("/quotes/{id}", h.GetQuote)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quotes", nil))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/"+created.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	clock = clock.Add(2 * time.Hour)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quotes/"+created.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
