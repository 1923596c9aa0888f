package telephony

import (
	"net/http"
	"strings"
)

// Twilio posts voice webhooks as application/x-www-form-urlencoded. We keep
// only the fields this assistant uses; everything else stays on the wire.

// InboundVoiceForm is the initial inbound-call webhook.
type InboundVoiceForm struct {
	CallSid    string
	AccountSid string
	From       string
	Called     string
	CallStatus string
}

// GatherForm is the speech-result webhook posted after a <Gather>.
type GatherForm struct {
	CallSid      string
	From         string
	Called       string
	SpeechResult string
	Confidence   string
}

func ParseInboundVoice(r *http.Request) (InboundVoiceForm, error) {
	if err := r.ParseForm(); err != nil {
		return InboundVoiceForm{}, err
	}
	return InboundVoiceForm{
		CallSid:    r.PostFormValue("CallSid"),
		AccountSid: r.PostFormValue("AccountSid"),
		From:       strings.TrimSpace(r.PostFormValue("From")),
		Called:     strings.TrimSpace(r.PostFormValue("Called")),
		CallStatus: r.PostFormValue("CallStatus"),
	}, nil
}

func ParseGather(r *http.Request) (GatherForm, error) {
	if err := r.ParseForm(); err != nil {
		return GatherForm{}, err
	}
	return GatherForm{
		CallSid:      r.PostFormValue("CallSid"),
		From:         strings.TrimSpace(r.PostFormValue("From")),
		Called:       strings.TrimSpace(r.PostFormValue("Called")),
		SpeechResult: strings.TrimSpace(r.PostFormValue("SpeechResult")),
		Confidence:   r.PostFormValue("Confidence"),
	}, nil
}
