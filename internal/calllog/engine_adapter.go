package calllog

import (
	"context"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/dialog"
)

// EngineAdapter bridges the decision engine's event hook to the calllog
// service, keeping the engine free of persistence concerns.
type EngineAdapter struct {
	Svc *Service
}

func (a EngineAdapter) LogCallEvent(ctx context.Context, e dialog.CallEvent) error {
	if a.Svc == nil {
		return nil
	}
	return a.Svc.Append(ctx, Event{
		CallID:            e.CallID,
		StoreID:           e.StoreID,
		Intent:            string(e.Intent),
		Outcome:           string(e.Outcome),
		PriceFound:        e.PriceFound,
		SMSSent:           e.SMSSent,
		TransferAttempted: e.TransferAttempted,
	})
}
