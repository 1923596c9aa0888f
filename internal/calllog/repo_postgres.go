package calllog

import (
	"context"
	"database/sql"
	"time"
)

// PostgresRepo persists call events to the call_events table.
//
// Expected schema:
//
//	CREATE TABLE call_events (
//	  id                 UUID PRIMARY KEY,
//	  call_id            TEXT NOT NULL,
//	  store_id           TEXT NOT NULL,
//	  intent             TEXT NOT NULL,
//	  outcome            TEXT NOT NULL,
//	  price_found        BOOLEAN NOT NULL,
//	  sms_sent           BOOLEAN NOT NULL,
//	  transfer_attempted BOOLEAN NOT NULL,
//	  created_at         TIMESTAMPTZ NOT NULL
//	);
//
// The table is insert-only; enforce with a trigger if retention policy allows.
type PostgresRepo struct {
	db *sql.DB
}

func NewPostgresRepo(db *sql.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Append(ctx context.Context, e Event) error {
	const q = `
INSERT INTO call_events (id, call_id, store_id, intent, outcome, price_found, sms_sent, transfer_attempted, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`
	_, err := r.db.ExecContext(ctx, q,
		e.ID,
		e.CallID,
		e.StoreID,
		e.Intent,
		e.Outcome,
		e.PriceFound,
		e.SMSSent,
		e.TransferAttempted,
		e.CreatedAt,
	)
	return err
}

func (r *PostgresRepo) List(ctx context.Context, storeID string, from, to time.Time) ([]Event, error) {
	const q = `
SELECT id, call_id, store_id, intent, outcome, price_found, sms_sent, transfer_attempted, created_at
FROM call_events
WHERE store_id = $1 AND created_at >= $2 AND created_at < $3
ORDER BY created_at
`
	rows, err := r.db.QueryContext(ctx, q, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID,
			&e.CallID,
			&e.StoreID,
			&e.Intent,
			&e.Outcome,
			&e.PriceFound,
			&e.SMSSent,
			&e.TransferAttempted,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
