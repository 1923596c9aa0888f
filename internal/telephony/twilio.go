package telephony

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// CallControl is the narrow slice of provider call-control this assistant
// needs: redirect a live call, originate a staff call, poll status, send SMS.
type CallControl interface {
	UpdateCall(ctx context.Context, callSid, twiml string) error
	CreateCall(ctx context.Context, to, twiml string, ringTimeout time.Duration) (callSid string, err error)
	GetCallStatus(ctx context.Context, callSid string) (CallStatus, error)
	SendSMS(ctx context.Context, to, body string) error
}

// CallStatus mirrors provider call lifecycle states we branch on.
type CallStatus string

const (
	CallStatusQueued     CallStatus = "queued"
	CallStatusRinging    CallStatus = "ringing"
	CallStatusInProgress CallStatus = "in-progress"
	CallStatusCompleted  CallStatus = "completed"
	CallStatusFailed     CallStatus = "failed"
	CallStatusBusy       CallStatus = "busy"
	CallStatusNoAnswer   CallStatus = "no-answer"
	CallStatusCanceled   CallStatus = "canceled"
)

// Answered reports the staff leg was picked up.
func (s CallStatus) Answered() bool {
	return s == CallStatusInProgress || s == CallStatusCompleted
}

// Dead reports the staff leg will never be answered.
func (s CallStatus) Dead() bool {
	switch s {
	case CallStatusFailed, CallStatusBusy, CallStatusNoAnswer, CallStatusCanceled:
		return true
	}
	return false
}

// TwilioClient is a minimal REST client for Twilio call control and SMS.
// No provider SDK; the few endpoints we use are plain form posts.
type TwilioClient struct {
	accountSID string
	authToken  string
	fromNumber string

	baseURL string
	http    *http.Client
}

func NewTwilioClient(accountSID, authToken, fromNumber string) *TwilioClient {
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    "https://api.twilio.com/2010-04-01",
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

// UpdateCall redirects a live call to new TwiML (used to park the caller in
// the transfer conference).
func (c *TwilioClient) UpdateCall(ctx context.Context, callSid, twiml string) error {
	form := url.Values{"Twiml": []string{twiml}}
	path := fmt.Sprintf("/Accounts/%s/Calls/%s.json", c.accountSID, callSid)
	return c.postForm(ctx, path, form, nil)
}

// CreateCall originates an outbound call that runs the given TwiML on answer.
func (c *TwilioClient) CreateCall(ctx context.Context, to, twiml string, ringTimeout time.Duration) (string, error) {
	form := url.Values{
		"To":    []string{to},
		"From":  []string{c.fromNumber},
		"Twiml": []string{twiml},
	}
	if ringTimeout > 0 {
		form.Set("Timeout", strconv.Itoa(int(ringTimeout.Seconds())))
	}
	var out struct {
		Sid string `json:"sid"`
	}
	path := fmt.Sprintf("/Accounts/%s/Calls.json", c.accountSID)
	if err := c.postForm(ctx, path, form, &out); err != nil {
		return "", err
	}
	return out.Sid, nil
}

// GetCallStatus fetches the current lifecycle state of a call.
func (c *TwilioClient) GetCallStatus(ctx context.Context, callSid string) (CallStatus, error) {
	path := fmt.Sprintf("/Accounts/%s/Calls/%s.json", c.accountSID, callSid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return "", err
	}
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(req, &out); err != nil {
		return "", err
	}
	return CallStatus(out.Status), nil
}

// SendSMS sends a text message from the assistant's number.
func (c *TwilioClient) SendSMS(ctx context.Context, to, body string) error {
	form := url.Values{
		"To":   []string{to},
		"From": []string{c.fromNumber},
		"Body": []string{body},
	}
	path := fmt.Sprintf("/Accounts/%s/Messages.json", c.accountSID)
	return c.postForm(ctx, path, form, nil)
}

func (c *TwilioClient) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *TwilioClient) do(req *http.Request, out any) error {
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("twilio: %s %s returned %d: %s", req.Method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
