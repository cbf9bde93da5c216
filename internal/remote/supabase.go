package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/money"
)

const selectColumns = "id,name,price,currency,days,notes"

// Supabase talks to the activities table through its PostgREST endpoint.
type Supabase struct {
	baseURL         string
	key             string
	http            *http.Client
	defaultCurrency money.Currency
}

func NewSupabase(baseURL, key string, client *http.Client, defaultCurrency money.Currency) *Supabase {
	return &Supabase{
		baseURL:         strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		key:             strings.TrimSpace(key),
		http:            client,
		defaultCurrency: defaultCurrency,
	}
}

func (s *Supabase) Bound() bool { return true }

func (s *Supabase) ListAll(ctx context.Context) ([]activity.Activity, error) {
	values := url.Values{}
	values.Set("select", selectColumns)
	values.Set("order", "name.asc")

	req, err := s.newRequest(ctx, http.MethodGet, values, nil)
	if err != nil {
		return nil, err
	}
	var rows []activity.Row
	if err := s.do(req, http.StatusOK, &rows); err != nil {
		return nil, err
	}
	return activity.DecodeRows(rows, s.defaultCurrency), nil
}

func (s *Supabase) Upsert(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	days := a.Days
	if days == nil {
		days = []int{}
	}
	body, err := json.Marshal(map[string]any{
		"id":       a.ID,
		"name":     a.Name,
		"price":    a.Price,
		"currency": a.Currency,
		"days":     days,
		"notes":    a.Notes,
	})
	if err != nil {
		return activity.Activity{}, err
	}

	values := url.Values{}
	values.Set("on_conflict", "id")
	values.Set("select", selectColumns)

	req, err := s.newRequest(ctx, http.MethodPost, values, bytes.NewReader(body))
	if err != nil {
		return activity.Activity{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")

	var rows []activity.Row
	if err := s.do(req, http.StatusCreated, &rows); err != nil {
		return activity.Activity{}, err
	}
	if len(rows) == 0 {
		return a, nil
	}
	return activity.DecodeRow(rows[0], s.defaultCurrency), nil
}

func (s *Supabase) DeleteByID(ctx context.Context, id string) error {
	values := url.Values{}
	values.Set("id", "eq."+id)

	req, err := s.newRequest(ctx, http.MethodDelete, values, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")
	return s.do(req, http.StatusNoContent, nil)
}

func (s *Supabase) newRequest(ctx context.Context, method string, values url.Values, body io.Reader) (*http.Request, error) {
	urlStr := s.baseURL + "/rest/v1/" + Table
	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		return nil, fmt.Errorf("invalid supabase url")
	}
	if len(values) > 0 {
		urlStr += "?" + values.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	return req, nil
}

// do accepts 200 alongside the expected status since PostgREST answers
// upserts and deletes with 200 when a representation is returned.
func (s *Supabase) do(req *http.Request, want int, out any) error {
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want && resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
