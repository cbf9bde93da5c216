package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/money"
	"hurghada-dream/go_backend/internal/domain/settings"
)

func TestNewSelectsNullWithoutCredentials(t *testing.T) {
	s := settings.Defaults()
	assert.IsType(t, Null{}, New(Options{Settings: s}))

	s.RemoteURL = "https://x.supabase.co"
	assert.IsType(t, Null{}, New(Options{Settings: s}))

	s.RemoteURL = ""
	s.RemoteKey = "anon"
	assert.IsType(t, Null{}, New(Options{Settings: s}))

	s.RemoteURL = "https://x.supabase.co"
	a := New(Options{Settings: s})
	assert.IsType(t, &Supabase{}, a)
	assert.True(t, a.Bound())
}

func TestNullIsLocalOnly(t *testing.T) {
	ctx := context.Background()
	var n Null
	assert.False(t, n.Bound())

	rows, err := n.ListAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, rows)

	in := activity.Activity{ID: "1", Name: "A"}
	out, err := n.Upsert(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, in, out)
	assert.NoError(t, n.DeleteByID(ctx, "1"))
}

func TestSupabaseListAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/v1/activities", r.URL.Path)
		assert.Equal(t, selectColumns, r.URL.Query().Get("select"))
		assert.Equal(t, "name.asc", r.URL.Query().Get("order"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[
			{"id": 7, "name": "Giftun", "price": "1800", "currency": null, "days": [0, 2], "notes": null},
			{"id": "b", "name": "Quad", "price": 900, "currency": "EGP", "days": null, "notes": "x"}
		]`)
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL+"/", "anon-key", srv.Client(), money.EUR)
	got, err := s.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, activity.Activity{ID: "7", Name: "Giftun", Price: 1800, Currency: money.EUR, Days: []int{0, 2}}, got[0])
	assert.Equal(t, activity.Activity{ID: "b", Name: "Quad", Price: 900, Currency: money.EGP, Days: []int{}, Notes: "x"}, got[1])
}

func TestSupabaseListAllError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"Invalid API key"}`)
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "bad", srv.Client(), money.EGP)
	_, err := s.ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supabase status 401")
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestSupabaseUpsertReturnsStoredRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "id", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, "resolution=merge-duplicates,return=representation", r.Header.Get("Prefer"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a-1", body["id"])
		assert.Equal(t, []any{}, body["days"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `[{"id":"a-1","name":"Safari (server)","price":950,"currency":"EGP","days":[],"notes":""}]`)
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "k", srv.Client(), money.EGP)
	got, err := s.Upsert(context.Background(), activity.Activity{ID: "a-1", Name: "Safari", Price: 900, Currency: money.EGP})
	require.NoError(t, err)
	assert.Equal(t, "Safari (server)", got.Name)
	assert.Equal(t, 950.0, got.Price)
}

func TestSupabaseDeleteByID(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		gotQuery = r.URL.Query().Get("id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "k", srv.Client(), money.EGP)
	require.NoError(t, s.DeleteByID(context.Background(), "a-1"))
	assert.Equal(t, "eq.a-1", gotQuery)
}

func TestSupabaseRejectsBadURL(t *testing.T) {
	s := NewSupabase("ftp://nope", "k", http.DefaultClient, money.EGP)
	_, err := s.ListAll(context.Background())
	assert.EqualError(t, err, "invalid supabase url")
}

func TestPostgresRowDecodes(t *testing.T) {
	r := rowFromColumns("id-1", "Quad", 900, "", []int32{5, 1, 5}, "")
	got := activity.DecodeRow(r, money.USD)
	assert.Equal(t, activity.Activity{ID: "id-1", Name: "Quad", Price: 900, Currency: money.USD, Days: []int{5, 1}}, got)
}
