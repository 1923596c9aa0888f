package hours

import "time"

// Policy answers "is the store open right now" against a fixed daily window
// in the business's local time zone.
//
// Per-store calendars are intentionally not modeled here; a store-specific
// schedule belongs to the backend and can replace this policy behind the
// same predicate.
type Policy struct {
	// OpenHour and CloseHour are local hours-of-day; the store is open for
	// [OpenHour, CloseHour).
	OpenHour  int
	CloseHour int

	// UTCOffsetHours locates the business's local clock (e.g. -5 for EST).
	UTCOffsetHours int

	// Now is injectable for deterministic tests.
	Now func() time.Time
}

// Default matches the chain's standard window: 10:00-19:00 Eastern.
func Default() Policy {
	return Policy{OpenHour: 10, CloseHour: 19, UTCOffsetHours: -5, Now: time.Now}
}

// IsOpen reports whether the local wall clock falls inside the open window.
func (p Policy) IsOpen() bool {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	loc := time.FixedZone("store-local", p.UTCOffsetHours*3600)
	h := now().In(loc).Hour()
	return h >= p.OpenHour && h < p.CloseHour
}
