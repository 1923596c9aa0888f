package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/backend"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
)

type stubScheduler struct {
	slots    []backend.Slot
	slotsErr error
	booked   []backend.BookingRequest
	bookErr  error
}

func (s *stubScheduler) GetAvailableSlots(context.Context, string) ([]backend.Slot, error) {
	return s.slots, s.slotsErr
}

func (s *stubScheduler) BookAppointment(_ context.Context, req backend.BookingRequest) (backend.BookingResult, error) {
	if s.bookErr != nil {
		return backend.BookingResult{}, s.bookErr
	}
	s.booked = append(s.booked, req)
	return backend.BookingResult{ID: "bk-1", Confirmed: true}, nil
}

type stubMessenger struct {
	to, body string
	err      error
}

func (m *stubMessenger) SendSMS(_ context.Context, to, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to, m.body = to, body
	return nil
}

func validRequest() backend.BookingRequest {
	return backend.BookingRequest{
		StoreID:      "store-1",
		CustomerName: "Pat",
		PhoneNumber:  "+15550002222",
		Date:         "2026-09-01",
		StartTime:    "10:30",
	}
}

func TestBookHappyPath(t *testing.T) {
	sched := &stubScheduler{slots: []backend.Slot{{Date: "2026-09-01", StartTime: "10:30"}}}
	svc := NewService(sched, nil, nil)

	res, err := svc.Book(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if !res.Confirmed || res.ID != "bk-1" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(sched.booked) != 1 {
		t.Fatalf("expected one submission, got %d", len(sched.booked))
	}
}

func TestBookRejectsTakenSlot(t *testing.T) {
	sched := &stubScheduler{slots: []backend.Slot{{Date: "2026-09-01", StartTime: "11:00"}}}
	svc := NewService(sched, nil, nil)

	_, err := svc.Book(context.Background(), validRequest())
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("want ErrSlotUnavailable, got %v", err)
	}
	if len(sched.booked) != 0 {
		t.Fatalf("unavailable slot must not be submitted")
	}
}

func TestBookValidation(t *testing.T) {
	svc := NewService(&stubScheduler{}, nil, nil)

	cases := []struct {
		name   string
		mut    func(*backend.BookingRequest)
		wantIs error
	}{
		{"no store", func(r *backend.BookingRequest) { r.StoreID = " " }, ErrMissingStore},
		{"no name", func(r *backend.BookingRequest) { r.CustomerName = "" }, ErrMissingCustomer},
		{"no phone", func(r *backend.BookingRequest) { r.PhoneNumber = "" }, ErrMissingCustomer},
		{"no date", func(r *backend.BookingRequest) { r.Date = "" }, ErrMissingSlot},
		{"no time", func(r *backend.BookingRequest) { r.StartTime = "" }, ErrMissingSlot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mut(&req)
			if _, err := svc.Book(context.Background(), req); !errors.Is(err, tc.wantIs) {
				t.Fatalf("want %v, got %v", tc.wantIs, err)
			}
		})
	}
}

func TestBookAvailabilityFailure(t *testing.T) {
	sched := &stubScheduler{slotsErr: errors.New("backend down")}
	svc := NewService(sched, nil, nil)

	if _, err := svc.Book(context.Background(), validRequest()); err == nil {
		t.Fatalf("availability failure must surface")
	}
}

func TestSendLink(t *testing.T) {
	msg := &stubMessenger{}
	svc := NewService(&stubScheduler{}, msg, nil)
	st := store.Context{ID: "store-1", BookingURL: "https://book.example.com/store-1"}

	if err := svc.SendLink(context.Background(), "+15550002222", st); err != nil {
		t.Fatalf("SendLink: %v", err)
	}
	if msg.to != "+15550002222" || !strings.Contains(msg.body, st.BookingURL) {
		t.Fatalf("sms not delivered as expected: to=%q body=%q", msg.to, msg.body)
	}
}

func TestSendLinkNoURL(t *testing.T) {
	svc := NewService(&stubScheduler{}, &stubMessenger{}, nil)
	err := svc.SendLink(context.Background(), "+15550002222", store.Context{ID: "store-1"})
	if !errors.Is(err, ErrNoBookingURL) {
		t.Fatalf("want ErrNoBookingURL, got %v", err)
	}
}
