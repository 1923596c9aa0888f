// Package reporting aggregates decision events into per-store summaries for
// the operations API.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/calllog"
)

// EventSource reads decision events for a store and window.
type EventSource interface {
	List(ctx context.Context, storeID string, from, to time.Time) ([]calllog.Event, error)
}

// Summary is the aggregate view of one store's assistant activity.
type Summary struct {
	StoreID string    `json:"store_id"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`

	TotalTurns int `json:"total_turns"`

	ByIntent  map[string]int `json:"by_intent"`
	ByOutcome map[string]int `json:"by_outcome"`

	PricesFound        int     `json:"prices_found"`
	PriceFoundRate     float64 `json:"price_found_rate"`
	SMSSent            int     `json:"sms_sent"`
	TransfersAttempted int     `json:"transfers_attempted"`
}

var ErrMissingStore = errors.New("reporting: store id is required")

// Service computes summaries; it holds no state of its own.
type Service struct {
	events EventSource
	now    func() time.Time
}

func NewService(events EventSource) *Service {
	return &Service{events: events, now: time.Now}
}

// Summarize aggregates a store's events over [from, to). A zero `to` means
// now; a zero `from` means 24 hours before `to`.
func (s *Service) Summarize(ctx context.Context, storeID string, from, to time.Time) (Summary, error) {
	if storeID == "" {
		return Summary{}, ErrMissingStore
	}
	if to.IsZero() {
		to = s.now().UTC()
	}
	if from.IsZero() {
		from = to.Add(-24 * time.Hour)
	}
	if !from.Before(to) {
		return Summary{}, fmt.Errorf("reporting: window start %s is not before end %s", from.Format(time.RFC3339), to.Format(time.RFC3339))
	}

	events, err := s.events.List(ctx, storeID, from, to)
	if err != nil {
		return Summary{}, fmt.Errorf("list events: %w", err)
	}

	sum := Summary{
		StoreID:   storeID,
		From:      from,
		To:        to,
		ByIntent:  map[string]int{},
		ByOutcome: map[string]int{},
	}
	for _, e := range events {
		sum.TotalTurns++
		sum.ByIntent[e.Intent]++
		sum.ByOutcome[e.Outcome]++
		if e.PriceFound {
			sum.PricesFound++
		}
		if e.SMSSent {
			sum.SMSSent++
		}
		if e.TransferAttempted {
			sum.TransfersAttempted++
		}
	}
	if sum.TotalTurns > 0 {
		sum.PriceFoundRate = float64(sum.PricesFound) / float64(sum.TotalTurns)
	}
	return sum, nil
}
