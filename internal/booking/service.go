package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/backend"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/prompts"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
)

// Scheduler is the slice of the backend API that appointments need.
type Scheduler interface {
	GetAvailableSlots(ctx context.Context, storeID string) ([]backend.Slot, error)
	BookAppointment(ctx context.Context, req backend.BookingRequest) (backend.BookingResult, error)
}

// Messenger delivers the booking link by SMS.
type Messenger interface {
	SendSMS(ctx context.Context, to, body string) error
}

var (
	ErrMissingStore    = errors.New("booking: store id is required")
	ErrMissingCustomer = errors.New("booking: customer name and phone are required")
	ErrMissingSlot     = errors.New("booking: date and start time are required")
	ErrSlotUnavailable = errors.New("booking: requested slot is not available")
	ErrNoBookingURL    = errors.New("booking: store has no booking link configured")
)

// Service books appointments against the backend and texts booking links.
type Service struct {
	scheduler Scheduler
	messenger Messenger
	log       *slog.Logger
}

func NewService(scheduler Scheduler, messenger Messenger, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{scheduler: scheduler, messenger: messenger, log: log}
}

// Slots lists open appointment windows for a store.
func (s *Service) Slots(ctx context.Context, storeID string) ([]backend.Slot, error) {
	if strings.TrimSpace(storeID) == "" {
		return nil, ErrMissingStore
	}
	return s.scheduler.GetAvailableSlots(ctx, storeID)
}

// Book validates the request, confirms the slot is still open, and submits it.
func (s *Service) Book(ctx context.Context, req backend.BookingRequest) (backend.BookingResult, error) {
	if strings.TrimSpace(req.StoreID) == "" {
		return backend.BookingResult{}, ErrMissingStore
	}
	if strings.TrimSpace(req.CustomerName) == "" || strings.TrimSpace(req.PhoneNumber) == "" {
		return backend.BookingResult{}, ErrMissingCustomer
	}
	if req.Date == "" || req.StartTime == "" {
		return backend.BookingResult{}, ErrMissingSlot
	}

	slots, err := s.scheduler.GetAvailableSlots(ctx, req.StoreID)
	if err != nil {
		return backend.BookingResult{}, fmt.Errorf("check availability: %w", err)
	}
	if !slotOpen(slots, req.Date, req.StartTime) {
		return backend.BookingResult{}, ErrSlotUnavailable
	}

	res, err := s.scheduler.BookAppointment(ctx, req)
	if err != nil {
		return backend.BookingResult{}, fmt.Errorf("book appointment: %w", err)
	}
	s.log.Info("appointment booked", "store_id", req.StoreID, "booking_id", res.ID, "date", req.Date, "start_time", req.StartTime)
	return res, nil
}

// SendLink texts the store's booking link to the caller.
func (s *Service) SendLink(ctx context.Context, to string, st store.Context) error {
	if st.BookingURL == "" {
		return ErrNoBookingURL
	}
	if s.messenger == nil {
		return errors.New("booking: messenger not configured")
	}
	if err := s.messenger.SendSMS(ctx, to, prompts.BookingSMSBody(st.BookingURL)); err != nil {
		return fmt.Errorf("send booking link: %w", err)
	}
	s.log.Info("booking link sent", "store_id", st.ID)
	return nil
}

func slotOpen(slots []backend.Slot, date, start string) bool {
	for _, sl := range slots {
		if sl.Date == date && sl.StartTime == start {
			return true
		}
	}
	return false
}
