package dialog

import "strings"

// Intent is the coarse label the classifier assigns to one caller turn.
type Intent string

const (
	IntentPricing  Intent = "pricing"
	IntentBooking  Intent = "booking"
	IntentTransfer Intent = "transfer"
	IntentUnknown  Intent = "unknown"
)

// Classification is the classifier output for one utterance.
type Classification struct {
	Intent Intent `json:"intent"`

	// RestrictedDevice is true when the caller mentions a device category the
	// assistant must not quote prices for (computers need an in-store
	// diagnostic). It is detected independently of intent.
	RestrictedDevice bool `json:"restricted_device"`
}

// intentRules is the priority table for intent detection. Rules are evaluated
// top to bottom and the LAST matching rule wins, so a booking phrase overrides
// a pricing phrase and a transfer phrase overrides both. Rule order is a
// policy contract; do not reorder casually.
var intentRules = []struct {
	intent   Intent
	keywords []string
}{
	{IntentPricing, []string{"price", "cost", "how much", "screen", "battery", "repair", "fix"}},
	{IntentBooking, []string{"appointment", "book", "schedule", "come in", "visit"}},
	{IntentTransfer, []string{"talk to", "speak to", "representative", "manager", "technician", "person", "human"}},
}

// restrictedKeywords flag computer repair requests. Substring match, like the
// intent keywords.
var restrictedKeywords = []string{"computer", "laptop", "macbook", "pc", "desktop", "surface pro"}

// Classify maps an utterance to an intent plus the restricted-device flag.
// Pure function; unmatched utterances yield IntentUnknown.
func Classify(utterance string) Classification {
	lower := strings.ToLower(utterance)

	out := Classification{Intent: IntentUnknown}
	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			out.Intent = rule.intent
		}
	}
	out.RestrictedDevice = containsAny(lower, restrictedKeywords)
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
