package dialog

import "testing"

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		utterance string
		want      Intent
	}{
		{"how much is a screen repair", IntentPricing},
		{"I want to book an appointment", IntentBooking},
		{"can I talk to a technician", IntentTransfer},
		// booking overrides pricing
		{"what's the price, I'd like to schedule a visit", IntentBooking},
		// transfer overrides booking
		{"book me in, actually let me talk to a person", IntentTransfer},
		// transfer overrides pricing
		{"how much to fix it, can I speak to a manager", IntentTransfer},
		{"asdf qwerty", IntentUnknown},
		{"", IntentUnknown},
	}
	for _, tc := range tests {
		if got := Classify(tc.utterance).Intent; got != tc.want {
			t.Fatalf("Classify(%q) = %q, want %q", tc.utterance, got, tc.want)
		}
	}
}

func TestClassify_RestrictedDeviceIsIndependent(t *testing.T) {
	c := Classify("how much to fix my laptop screen")
	if !c.RestrictedDevice {
		t.Fatalf("expected restricted device flag")
	}
	if c.Intent != IntentPricing {
		t.Fatalf("restricted flag must not change intent, got %q", c.Intent)
	}

	if Classify("my iphone 13 screen is cracked").RestrictedDevice {
		t.Fatalf("unexpected restricted flag for a phone")
	}
}

func TestExtractSlots_FirstMatchWins(t *testing.T) {
	// "iphone 13 pro" contains "iphone 13"; the more specific phrase is
	// listed first and must win.
	s := ExtractSlots("screen repair for my iphone 13 pro")
	if s.Model != "iPhone 13 Pro" {
		t.Fatalf("expected iPhone 13 Pro, got %q", s.Model)
	}
	if s.Category != CategoryPhone || s.Issue != "screen" {
		t.Fatalf("unexpected slots: %+v", s)
	}
}

func TestExtractSlots_CategoryFromModel(t *testing.T) {
	if s := ExtractSlots("my ipad air 4 battery drains"); s.Category != CategoryTablet {
		t.Fatalf("expected tablet, got %q", s.Category)
	}
	if s := ExtractSlots("ps5 won't turn on, battery maybe"); s.Category != CategoryConsole {
		t.Fatalf("expected console, got %q", s.Category)
	}
}

func TestExtractSlots_HDMIForcesConsole(t *testing.T) {
	// No console model mentioned, but an HDMI issue is console work.
	s := ExtractSlots("the hdmi is loose")
	if s.Category != CategoryConsole {
		t.Fatalf("expected console category, got %q", s.Category)
	}
	if s.Issue != "hdmi port" {
		t.Fatalf("expected hdmi port issue, got %q", s.Issue)
	}
}

func TestExtractSlots_PartialAndEmpty(t *testing.T) {
	s := ExtractSlots("something is wrong with my iphone 14")
	if s.Model != "iPhone 14" || s.Issue != "" {
		t.Fatalf("expected model only, got %+v", s)
	}

	s = ExtractSlots("hello there")
	if s.Model != "" || s.Issue != "" || s.Category != CategoryPhone {
		t.Fatalf("expected empty slots with phone default, got %+v", s)
	}
}
