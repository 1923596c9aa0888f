package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/auth"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/backend"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/booking"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/calllog"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/config"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/reporting"
)

type stubEvents struct{ events []calllog.Event }

func (s stubEvents) List(context.Context, string, time.Time, time.Time) ([]calllog.Event, error) {
	return s.events, nil
}

type stubScheduler struct{ slots []backend.Slot }

func (s stubScheduler) GetAvailableSlots(context.Context, string) ([]backend.Slot, error) {
	return s.slots, nil
}

func (s stubScheduler) BookAppointment(context.Context, backend.BookingRequest) (backend.BookingResult, error) {
	return backend.BookingResult{ID: "bk-1", Confirmed: true}, nil
}

func newTestManager(t *testing.T) *auth.Manager {
	t.Helper()
	m, err := auth.NewManager(config.AuthConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	})
	if err != nil {
		t.Fatalf("auth manager: %v", err)
	}
	return m
}

func withIdentity(storeID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), "user-1", storeID, role))
		c.Next()
	}
}

func serve(handler gin.HandlerFunc, identity gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if identity != nil {
		r.Use(identity)
	}
	r.Handle(req.Method, req.URL.Path, handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetReportSummary(t *testing.T) {
	h := Handlers{Reports: reporting.NewService(stubEvents{events: []calllog.Event{
		{Intent: "pricing", Outcome: "price_found", PriceFound: true},
	}})}

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
	w := serve(h.GetReportSummary, withIdentity("store-1", "analyst"), req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"total_turns":1`) {
		t.Fatalf("summary missing totals: %s", w.Body.String())
	}
}

func TestGetReportSummaryRequiresIdentity(t *testing.T) {
	h := Handlers{Reports: reporting.NewService(stubEvents{})}
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary", nil)
	if w := serve(h.GetReportSummary, nil, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetReportSummaryRejectsBadWindow(t *testing.T) {
	h := Handlers{Reports: reporting.NewService(stubEvents{})}
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/summary?from=yesterday", nil)
	if w := serve(h.GetReportSummary, withIdentity("store-1", "analyst"), req); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestCreateBooking(t *testing.T) {
	sched := stubScheduler{slots: []backend.Slot{{Date: "2026-09-01", StartTime: "10:30"}}}
	h := Handlers{Booking: booking.NewService(sched, nil, nil)}

	body := `{"name":"Pat","phone_number":"+15550002222","date":"2026-09-01","start_time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serve(h.CreateBooking, withIdentity("store-1", "manager"), req)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
}

func TestCreateBookingConflict(t *testing.T) {
	h := Handlers{Booking: booking.NewService(stubScheduler{}, nil, nil)}

	body := `{"name":"Pat","phone_number":"+15550002222","date":"2026-09-01","start_time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if w := serve(h.CreateBooking, withIdentity("store-1", "manager"), req); w.Code != http.StatusConflict {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestLoginIssuedTokens(t *testing.T) {
	m := newTestManager(t)
	h := Handlers{Auth: m}

	body := `{"user_id":"u1","store_id":"store-1","role":"owner"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serve(h.Login, nil, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "access_token") {
		t.Fatalf("no tokens in response: %s", w.Body.String())
	}
}
