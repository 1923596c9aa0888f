package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/pricing"
	"github.com/mdashikkhan04/ai-phone-assistant-mavgoose/internal/store"
)

// Client talks to the repair-shop chain's backend API (stores, price lists,
// behavior config, appointments).
//
// It implements store.Directory, store.BehaviorSource and
// pricing.CatalogSource. Callers own retry policy; the client does a single
// request per call and returns errors as-is for the call site to absorb.
type Client struct {
	baseURL  string
	apiToken string
	http     *http.Client
}

func NewClient(baseURL, apiToken string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		http:     &http.Client{Timeout: timeout},
	}
}

// ListStores fetches the chain's store directory.
func (c *Client) ListStores(ctx context.Context) ([]store.Context, error) {
	var out []store.Context
	if err := c.getJSON(ctx, "/api/v1/stores/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPriceList fetches the price catalog for one store.
func (c *Client) GetPriceList(ctx context.Context, storeID string) ([]pricing.CatalogEntry, error) {
	var out []pricing.CatalogEntry
	q := url.Values{"store": []string{storeID}}
	if err := c.getJSON(ctx, "/api/v1/services/price-list/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetBehavior fetches the assistant behavior config for one store.
func (c *Client) GetBehavior(ctx context.Context, storeID string) (store.Behavior, error) {
	var out store.Behavior
	path := fmt.Sprintf("/api/v1/stores/%s/ai-behavior/", url.PathEscape(storeID))
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return store.Behavior{}, err
	}
	return out, nil
}

// Slot is one bookable appointment window.
type Slot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
}

// GetAvailableSlots fetches open appointment slots for one store.
func (c *Client) GetAvailableSlots(ctx context.Context, storeID string) ([]Slot, error) {
	var out []Slot
	path := fmt.Sprintf("/api/v1/appointments/stores/%s/available-slots/", url.PathEscape(storeID))
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// BookingRequest is the appointment submission payload.
type BookingRequest struct {
	StoreID      string `json:"store"`
	CustomerName string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Date         string `json:"date"`
	StartTime    string `json:"start_time"`
}

// BookingResult echoes the backend's booking confirmation.
type BookingResult struct {
	ID        string `json:"id"`
	Confirmed bool   `json:"confirmed"`
}

// BookAppointment submits a booking to the backend.
func (c *Client) BookAppointment(ctx context.Context, req BookingRequest) (BookingResult, error) {
	var out BookingResult
	if err := c.postJSON(ctx, "/api/v1/appointments/book/", req, &out); err != nil {
		return BookingResult{}, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the error message; never the whole thing.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("backend: %s %s returned %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
