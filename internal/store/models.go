package store

// Context is the resolved identity of the location a call was routed to.
//
// It is supplied by the resolver keyed on the dialed number (DID) and treated
// as already validated by the decision pipeline. The one soft spot is
// TransferNumber: when a warm transfer is decided but the number is empty,
// the engine must degrade to the booking-link fallback instead of dialing
// an empty destination.
type Context struct {
	ID       string `json:"store_id"`
	Name     string `json:"name"`
	Location string `json:"location"`

	// DID is the inbound number customers dial for this location.
	DID string `json:"did"`

	// TransferNumber is the staff line used for warm transfers.
	TransferNumber string `json:"transfer_number,omitempty"`

	// BookingURL is the appointment link sent by SMS.
	BookingURL string `json:"booking_url,omitempty"`
}

// DefaultContext is used when DID resolution fails; the assistant still
// answers, it just cannot transfer or quote store-specific prices.
func DefaultContext() Context {
	return Context{
		ID:       "default",
		Name:     "our store",
		Location: "your local area",
		DID:      "default",
	}
}

// Behavior is per-store assistant tuning fetched from the backend.
type Behavior struct {
	StoreID string `json:"store_id"`

	// Greeting overrides the stock greeting when non-empty.
	Greeting string `json:"greeting,omitempty"`

	// Voice is the TTS voice name used for this store's prompts.
	Voice string `json:"voice,omitempty"`
}
