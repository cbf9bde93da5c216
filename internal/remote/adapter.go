package remote

import (
	"context"
	"net/http"
	"time"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/settings"
	"hurghada-dream/go_backend/internal/infra/db/postgres"
)

// Table is the remote resource holding the catalog.
const Table = "activities"

// Adapter mirrors catalog writes to a remote table and lists its contents.
type Adapter interface {
	// ListAll returns every row ordered by name ascending.
	ListAll(ctx context.Context) ([]activity.Activity, error)
	// Upsert inserts or replaces by id and returns the stored row.
	Upsert(ctx context.Context, a activity.Activity) (activity.Activity, error)
	DeleteByID(ctx context.Context, id string) error
	// Bound is false for the no-op adapter.
	Bound() bool
}

// Null is the adapter used when sync is disabled.
type Null struct{}

func (Null) ListAll(context.Context) ([]activity.Activity, error) { return nil, nil }

func (Null) Upsert(_ context.Context, a activity.Activity) (activity.Activity, error) {
	return a, nil
}

func (Null) DeleteByID(context.Context, string) error { return nil }

func (Null) Bound() bool { return false }

type Options struct {
	Settings settings.Settings
	DB       *postgres.DB
	HTTP     *http.Client
}

// New picks the adapter once at startup: a direct database connection wins,
// then the REST endpoint when both its URL and key are set, otherwise Null.
func New(opts Options) Adapter {
	cur := opts.Settings.DefaultCurrency()
	if opts.DB != nil {
		return NewPostgres(opts.DB.Pool, cur)
	}
	if !opts.Settings.RemoteEnabled() {
		return Null{}
	}
	client := opts.HTTP
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return NewSupabase(opts.Settings.RemoteURL, opts.Settings.RemoteKey, client, cur)
}
