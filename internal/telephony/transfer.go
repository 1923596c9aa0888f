package telephony

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Transferer runs warm transfers:
//  1. park the customer in a conference with hold music,
//  2. dial the store's staff line with the spoken briefing,
//  3. watch the staff leg until it is answered, dead, or the window closes.
//
// The status watch is a bounded retry-with-sleep: PollWindow caps total
// waiting, PollInterval spaces the samples, and the enclosing request
// context cancels both. No goroutine outlives Run.
type Transferer struct {
	Control CallControl
	Log     *slog.Logger

	// RingTimeout is how long the staff phone may ring.
	RingTimeout time.Duration
	// PollWindow bounds the whole answer watch.
	PollWindow time.Duration
	// PollInterval spaces status samples.
	PollInterval time.Duration
}

func NewTransferer(control CallControl, log *slog.Logger) *Transferer {
	if log == nil {
		log = slog.Default()
	}
	return &Transferer{
		Control:      control,
		Log:          log,
		RingTimeout:  20 * time.Second,
		PollWindow:   22 * time.Second,
		PollInterval: time.Second,
	}
}

var errNoControl = errors.New("telephony: call control not configured")

// Run executes the warm transfer and reports whether staff answered.
// false covers declined, unreachable, and window-expired staff legs; the
// caller should fall back to the booking offer.
func (t *Transferer) Run(ctx context.Context, customerCallSid, storePhoneNumber, briefingText string) (bool, error) {
	if t.Control == nil {
		return false, errNoControl
	}

	conference := fmt.Sprintf("conf_%s", customerCallSid)

	// Customer leg: hold music until staff joins.
	holdTwiML, err := NewVoiceResponse().DialConference(conference).Render()
	if err != nil {
		return false, err
	}
	if err := t.Control.UpdateCall(ctx, customerCallSid, holdTwiML); err != nil {
		return false, fmt.Errorf("park customer: %w", err)
	}

	// Staff leg: hear the briefing, then join the same conference.
	staffTwiML, err := NewVoiceResponse().Say(briefingText).DialConferenceNoWait(conference).Render()
	if err != nil {
		return false, err
	}
	staffSid, err := t.Control.CreateCall(ctx, storePhoneNumber, staffTwiML, t.RingTimeout)
	if err != nil {
		return false, fmt.Errorf("dial staff: %w", err)
	}

	return t.watchStaffLeg(ctx, staffSid)
}

func (t *Transferer) watchStaffLeg(ctx context.Context, staffSid string) (bool, error) {
	deadline, cancel := context.WithTimeout(ctx, t.PollWindow)
	defer cancel()

	ticker := time.NewTicker(t.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-deadline.Done():
			// Window closed or the request itself was canceled.
			t.Log.Info("staff call watch ended without answer", "staff_sid", staffSid, "reason", deadline.Err())
			return false, nil
		case <-ticker.C:
			status, err := t.Control.GetCallStatus(deadline, staffSid)
			if err != nil {
				// Transient poll errors are tolerated; the deadline bounds us.
				t.Log.Warn("staff call status poll failed", "staff_sid", staffSid, "err", err)
				continue
			}
			if status.Answered() {
				return true, nil
			}
			if status.Dead() {
				t.Log.Info("staff call not answered", "staff_sid", staffSid, "status", string(status))
				return false, nil
			}
		}
	}
}
