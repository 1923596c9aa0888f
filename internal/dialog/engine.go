package dialog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/pricing"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
)

// PriceResolver looks up a repair price in the store's catalog. A false
// return means "not found" for any reason, including catalog failures.
type PriceResolver interface {
	Resolve(ctx context.Context, storeID, category, model, issue string) (pricing.Quote, bool)
}

// HoursPolicy reports whether the store is open for live pricing/transfers.
type HoursPolicy interface {
	IsOpen() bool
}

// CallEvent summarizes one decision for external persistence.
//
// SMSSent and TransferAttempted record what the decision commits the response
// layer to do; the engine itself performs no telephony actions.
type CallEvent struct {
	CallID            string  `json:"call_id"`
	StoreID           string  `json:"store_id"`
	Intent            Intent  `json:"intent"`
	Outcome           Outcome `json:"outcome"`
	PriceFound        bool    `json:"price_found"`
	SMSSent           bool    `json:"sms_sent"`
	TransferAttempted bool    `json:"transfer_attempted"`
}

// EventLogger forwards call events to external persistence, best-effort.
type EventLogger interface {
	LogCallEvent(ctx context.Context, e CallEvent) error
}

// complexIssueKeywords escalate to staff during business hours even without
// an explicit transfer request.
var complexIssueKeywords = []string{"water damage", "motherboard", "data recovery"}

// Engine turns one transcribed utterance into a Decision.
//
// The engine is stateless and safe for concurrent use; all mutable state
// lives behind the injected collaborators.
type Engine struct {
	Prices PriceResolver
	Hours  HoursPolicy
	Events EventLogger
	Log    *slog.Logger
}

func NewEngine(prices PriceResolver, hrs HoursPolicy, events EventLogger, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{Prices: prices, Hours: hrs, Events: events, Log: log}
}

// Decide runs the call-turn decision pipeline.
//
// Branch priority (first match wins; this ordering is a policy contract):
//  1. restricted device  -> pricing_restricted, overriding everything
//  2. open + (transfer intent or complex issue) -> warm_transfer
//  3. booking intent -> offer_booking_sms
//  4. pricing intent:
//     closed            -> offer_booking_sms
//     missing slots     -> warm_transfer (cannot price, escalate)
//     quote found       -> price_found
//     quote absent      -> warm_transfer (escalate rather than dead-end)
//  5. anything else -> unknown
//
// A warm transfer decided for a store with no transfer number degrades to
// the booking offer, or to price_not_found when there is no booking link
// either. Every invocation emits exactly one call event; logger failures are
// swallowed.
func (e *Engine) Decide(ctx context.Context, utterance string, st store.Context, callID string) Decision {
	cls := Classify(utterance)
	slots := ExtractSlots(utterance)
	open := e.Hours != nil && e.Hours.IsOpen()

	d := Decision{Intent: cls.Intent, Slots: slots, State: "initial"}
	if cls.Intent == IntentPricing {
		d.State = "pricing_check"
	}

	switch {
	case cls.RestrictedDevice:
		d.Outcome = OutcomePricingRestricted

	case open && (cls.Intent == IntentTransfer || hasComplexIssue(utterance)):
		reason := ReasonComplexIssue
		if cls.Intent == IntentTransfer {
			reason = ReasonCallerRequest
		}
		e.decideTransfer(&d, st, slots, reason)

	case cls.Intent == IntentBooking:
		d.Outcome = OutcomeOfferBookingSMS

	case cls.Intent == IntentPricing:
		if !open {
			d.Outcome = OutcomeOfferBookingSMS
			break
		}
		if slots.Model == "" || slots.Issue == "" {
			e.decideTransfer(&d, st, slots, ReasonUnpriced)
			break
		}
		if q, ok := e.resolvePrice(ctx, st.ID, slots); ok {
			d.Outcome = OutcomePriceFound
			d.Price = &q
			break
		}
		e.decideTransfer(&d, st, slots, ReasonUnpriced)

	default:
		d.Outcome = OutcomeUnknown
	}

	e.logEvent(ctx, callID, st.ID, d)
	return d
}

// decideTransfer resolves a warm_transfer outcome, degrading when the store
// has no transfer number.
func (e *Engine) decideTransfer(d *Decision, st store.Context, slots Slots, reason TransferReason) {
	if strings.TrimSpace(st.TransferNumber) == "" {
		if st.BookingURL != "" {
			d.Outcome = OutcomeOfferBookingSMS
		} else {
			d.Outcome = OutcomePriceNotFound
		}
		return
	}
	d.Outcome = OutcomeWarmTransfer
	d.Transfer = &TransferBriefing{
		StorePhoneNumber: st.TransferNumber,
		Device:           briefingDevice(slots),
		Issue:            briefingIssue(slots),
		Reason:           reason,
	}
	d.Transfer.BriefingText = briefingText(*d.Transfer)
}

func (e *Engine) resolvePrice(ctx context.Context, storeID string, slots Slots) (pricing.Quote, bool) {
	if e.Prices == nil {
		return pricing.Quote{}, false
	}
	return e.Prices.Resolve(ctx, storeID, string(slots.Category), slots.Model, slots.Issue)
}

func (e *Engine) logEvent(ctx context.Context, callID, storeID string, d Decision) {
	if e.Events == nil {
		return
	}
	ev := CallEvent{
		CallID:            callID,
		StoreID:           storeID,
		Intent:            d.Intent,
		Outcome:           d.Outcome,
		PriceFound:        d.Outcome == OutcomePriceFound,
		SMSSent:           d.Outcome == OutcomeOfferBookingSMS,
		TransferAttempted: d.Outcome == OutcomeWarmTransfer,
	}
	if err := e.Events.LogCallEvent(ctx, ev); err != nil {
		e.Log.Warn("call event logging failed", "call_id", callID, "err", err)
	}
}

func hasComplexIssue(utterance string) bool {
	return containsAny(strings.ToLower(utterance), complexIssueKeywords)
}

func briefingDevice(slots Slots) string {
	if slots.Model != "" {
		return slots.Model
	}
	return "their " + string(slots.Category)
}

func briefingIssue(slots Slots) string {
	if slots.Issue != "" {
		return slots.Issue
	}
	return "an issue they couldn't fully describe"
}

// briefingText is the sentence read aloud to staff before bridging.
func briefingText(b TransferBriefing) string {
	return fmt.Sprintf(
		"Hey, this is the AI assistant. I've got a customer on the line. "+
			"They're calling about %s, %s. I wasn't able to fully confirm %s, "+
			"so I wanted to bring you in. They're on the line now - I'll go ahead and connect you.",
		b.Device, b.Issue, b.Reason,
	)
}
