package calllog

import "time"

// Event is an immutable, append-only record of one assistant decision.
//
// Invariants:
// - Events are never updated or deleted.
// - CallID and StoreID are required for correlation.
// - Writing events is best-effort; a failed append must never affect the
//   caller's phone experience.
type Event struct {
	ID      string `json:"id" db:"id"`
	CallID  string `json:"call_id" db:"call_id"`
	StoreID string `json:"store_id" db:"store_id"`

	Intent  string `json:"intent" db:"intent"`
	Outcome string `json:"outcome" db:"outcome"`

	PriceFound        bool `json:"price_found" db:"price_found"`
	SMSSent           bool `json:"sms_sent" db:"sms_sent"`
	TransferAttempted bool `json:"transfer_attempted" db:"transfer_attempted"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
