package hours

import (
	"testing"
	"time"
)

func fixedClock(utcHour int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 10, utcHour, 30, 0, 0, time.UTC)
	}
}

func TestIsOpen_InsideWindow(t *testing.T) {
	p := Default()
	// 17:30 UTC is 12:30 EST
	p.Now = fixedClock(17)
	if !p.IsOpen() {
		t.Fatalf("expected open at midday local time")
	}
}

func TestIsOpen_BeforeOpening(t *testing.T) {
	p := Default()
	// 13:30 UTC is 08:30 EST
	p.Now = fixedClock(13)
	if p.IsOpen() {
		t.Fatalf("expected closed before opening hour")
	}
}

func TestIsOpen_ClosingHourIsExclusive(t *testing.T) {
	p := Default()
	// 00:30 UTC next day is 19:30 EST; also check 19:00 boundary via 00 UTC
	p.Now = func() time.Time {
		return time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // 19:00 EST previous day
	}
	if p.IsOpen() {
		t.Fatalf("expected closed at closing hour")
	}
}
