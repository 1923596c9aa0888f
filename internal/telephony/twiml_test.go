package telephony

import (
	"strings"
	"testing"
)

func TestVoiceResponseSayGather(t *testing.T) {
	xml, err := NewVoiceResponse().
		Say("Thanks for calling!").
		GatherSpeech("/webhooks/twilio/gather").
		Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for _, want := range []string{
		`<Say voice="alice" language="en-US">Thanks for calling!</Say>`,
		`input="speech"`,
		`action="/webhooks/twilio/gather"`,
		`method="POST"`,
		`speechTimeout="5"`,
	} {
		if !strings.Contains(xml, want) {
			t.Fatalf("missing %q in:\n%s", want, xml)
		}
	}
}

func TestVoiceResponseVoiceOverride(t *testing.T) {
	xml, err := NewVoiceResponse().WithVoice("Polly.Joanna").Say("hello").Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(xml, `voice="Polly.Joanna"`) {
		t.Fatalf("voice override not applied:\n%s", xml)
	}
}

func TestVoiceResponseConference(t *testing.T) {
	xml, err := NewVoiceResponse().DialConference("conf_CA123").Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(xml, ">conf_CA123</Conference>") {
		t.Fatalf("conference name missing:\n%s", xml)
	}
	if !strings.Contains(xml, `waitUrl=`) {
		t.Fatalf("hold music waitUrl missing:\n%s", xml)
	}

	staff, err := NewVoiceResponse().DialConferenceNoWait("conf_CA123").Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(staff, "waitUrl=") {
		t.Fatalf("staff leg should not carry hold music:\n%s", staff)
	}
}

func TestVoiceResponseHangup(t *testing.T) {
	xml, err := NewVoiceResponse().Say("bye").Hangup().Render()
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(xml, "<Hangup") {
		t.Fatalf("hangup verb missing:\n%s", xml)
	}
	if strings.Index(xml, "<Say") > strings.Index(xml, "<Hangup") {
		t.Fatalf("verb order not preserved:\n%s", xml)
	}
}
