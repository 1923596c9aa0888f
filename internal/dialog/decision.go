package dialog

import "github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/pricing"

// Outcome is the decision for one caller turn. This is the sole contract
// between the engine and the telephony response renderer.
type Outcome string

const (
	OutcomePriceFound        Outcome = "price_found"
	OutcomePriceNotFound     Outcome = "price_not_found"
	OutcomePricingRestricted Outcome = "pricing_restricted"
	OutcomeOfferBookingSMS   Outcome = "offer_booking_sms"
	OutcomeWarmTransfer      Outcome = "warm_transfer"
	OutcomeUnknown           Outcome = "unknown"
)

// TransferReason explains to staff why the assistant is handing the call off.
// Precedence when several apply: explicit request > complex issue > unpriced.
type TransferReason string

const (
	ReasonCallerRequest TransferReason = "their specific request to speak with someone"
	ReasonComplexIssue  TransferReason = "the complexity of the issue they described"
	ReasonUnpriced      TransferReason = "the exact price for that repair"
)

// TransferBriefing is the payload for a warm-transfer outcome: everything the
// telephony layer needs to brief a staff member before bridging the caller.
type TransferBriefing struct {
	StorePhoneNumber string         `json:"store_phone_number"`
	BriefingText     string         `json:"briefing_text"`
	Device           string         `json:"device"`
	Issue            string         `json:"issue"`
	Reason           TransferReason `json:"transfer_reason"`
}

// Decision is the structured result of one call turn.
//
// State is informational only ("pricing_check" vs "initial"); decisions are
// recomputed from scratch each turn and State never drives the next one.
type Decision struct {
	Outcome Outcome `json:"outcome"`
	State   string  `json:"state"`

	Intent Intent `json:"intent"`
	Slots  Slots  `json:"slots"`

	// Price is set only for price_found.
	Price *pricing.Quote `json:"price,omitempty"`

	// Transfer is set only for warm_transfer.
	Transfer *TransferBriefing `json:"transfer,omitempty"`
}
