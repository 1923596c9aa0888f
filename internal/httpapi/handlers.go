package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/auth"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/backend"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/booking"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/rbac"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/reporting"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

type Handlers struct {
	Auth     *auth.Manager
	Reports  *reporting.Service
	Booking  *booking.Service
	Behavior *store.BehaviorCache
}

// --- Auth ---

type loginRequest struct {
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
	Role    string `json:"role"`
}

// Login issues a JWT token pair.
//
// NOTE: This is a skeleton-only endpoint. Real systems must validate credentials.
func (h Handlers) Login(c *gin.Context) {
	if h.Auth == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "auth not configured"})
		return
	}
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if req.UserID == "" || req.StoreID == "" || req.Role == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "user_id, store_id, role required"})
		return
	}
	pair, err := h.Auth.IssuePair(time.Now(), req.UserID, req.StoreID, req.Role)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// --- Reporting ---

// GetReportSummary aggregates the caller's store activity over a window.
// Query params `from` and `to` are RFC3339; both optional.
func (h Handlers) GetReportSummary(c *gin.Context) {
	if h.Reports == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "reporting not configured"})
		return
	}
	storeID, err := auth.StoreID(c.Request.Context())
	if err != nil || storeID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "store_id required"})
		return
	}

	from, ok := parseTimeParam(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeParam(c, "to")
	if !ok {
		return
	}

	sum, err := h.Reports.Summarize(c.Request.Context(), storeID, from, to)
	if err != nil {
		if errors.Is(err, reporting.ErrMissingStore) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// --- Booking ---

func (h Handlers) ListSlots(c *gin.Context) {
	if h.Booking == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "booking not configured"})
		return
	}
	storeID, err := auth.StoreID(c.Request.Context())
	if err != nil || storeID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "store_id required"})
		return
	}
	slots, err := h.Booking.Slots(c.Request.Context(), storeID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "slot lookup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

type createBookingRequest struct {
	CustomerName string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
}

func (h Handlers) CreateBooking(c *gin.Context) {
	if h.Booking == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "booking not configured"})
		return
	}
	storeID, err := auth.StoreID(c.Request.Context())
	if err != nil || storeID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "store_id required"})
		return
	}
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	res, err := h.Booking.Book(c.Request.Context(), backend.BookingRequest{
		StoreID:      storeID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		Date:         req.Date,
		StartTime:    req.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotUnavailable):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrMissingStore),
			errors.Is(err, booking.ErrMissingCustomer),
			errors.Is(err, booking.ErrMissingSlot):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "booking failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

// --- Admin ---

// InvalidateBehavior drops the cached behavior config for the caller's store
// so the next call refetches it from the backend.
func (h Handlers) InvalidateBehavior(c *gin.Context) {
	if h.Behavior == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "behavior cache not configured"})
		return
	}
	storeID, err := auth.StoreID(c.Request.Context())
	if err != nil || storeID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "store_id required"})
		return
	}
	h.Behavior.Invalidate(storeID)
	c.JSON(http.StatusOK, gin.H{"status": "invalidated", "store_id": storeID})
}

func parseTimeParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": name + " must be RFC3339"})
		return time.Time{}, false
	}
	return t, true
}

// Convenience middleware bundles.

func RequireStoreAndAnyRole(roles ...string) []gin.HandlerFunc {
	return []gin.HandlerFunc{rbac.RequireStore(), rbac.RequireAnyRole(roles...)}
}
