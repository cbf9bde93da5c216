package remote

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/money"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	columnsSQL = `id::text, COALESCE(name, ''), COALESCE(price, 0)::float8, COALESCE(currency, ''), COALESCE(days, '{}')::int[], COALESCE(notes, '')`

	listSQL = `SELECT ` + columnsSQL + ` FROM activities ORDER BY name ASC`

	upsertSQL = `INSERT INTO activities (id, name, price, currency, days, notes)
VALUES ($1, $2, $3, $4, $5::int[], $6)
ON CONFLICT (id) DO UPDATE SET
	name = EXCLUDED.name,
	price = EXCLUDED.price,
	currency = EXCLUDED.currency,
	days = EXCLUDED.days,
	notes = EXCLUDED.notes
RETURNING ` + columnsSQL

	deleteSQL = `DELETE FROM activities WHERE id = $1`
)

// Postgres reads and writes the activities table over a direct connection,
// for deployments that reach the database without going through PostgREST.
type Postgres struct {
	db              querier
	defaultCurrency money.Currency
}

func NewPostgres(db querier, defaultCurrency money.Currency) *Postgres {
	return &Postgres{db: db, defaultCurrency: defaultCurrency}
}

func (p *Postgres) Bound() bool { return true }

func (p *Postgres) ListAll(ctx context.Context) ([]activity.Activity, error) {
	rows, err := p.db.Query(ctx, listSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var raw []activity.Row
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activity.DecodeRows(raw, p.defaultCurrency), nil
}

func (p *Postgres) Upsert(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	days := make([]int32, 0, len(a.Days))
	for _, d := range a.Days {
		days = append(days, int32(d))
	}
	row := p.db.QueryRow(ctx, upsertSQL, a.ID, a.Name, a.Price, string(a.Currency), days, a.Notes)
	r, err := scanRow(row)
	if err != nil {
		return activity.Activity{}, err
	}
	return activity.DecodeRow(r, p.defaultCurrency), nil
}

func (p *Postgres) DeleteByID(ctx context.Context, id string) error {
	_, err := p.db.Exec(ctx, deleteSQL, id)
	return err
}

func scanRow(row pgx.Row) (activity.Row, error) {
	var (
		id, name, cur, notes string
		price                float64
		days                 []int32
	)
	if err := row.Scan(&id, &name, &price, &cur, &days, &notes); err != nil {
		return nil, err
	}
	return rowFromColumns(id, name, price, cur, days, notes), nil
}

func rowFromColumns(id, name string, price float64, cur string, days []int32, notes string) activity.Row {
	rawDays := make([]any, 0, len(days))
	for _, d := range days {
		rawDays = append(rawDays, float64(d))
	}
	return activity.Row{
		"id":       id,
		"name":     name,
		"price":    price,
		"currency": cur,
		"days":     rawDays,
		"notes":    notes,
	}
}
