package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/teecush/tracker/logger"
)

// TwilioBaseURL is the Twilio REST API root.
const TwilioBaseURL = "https://api.twilio.com"

var (
	// ErrMissingCredentials is returned when the account SID, auth token or sender is not configured.
	ErrMissingCredentials = errors.New("missing Twilio credentials")
	// ErrMissingRecipient is returned when no phone number is given.
	ErrMissingRecipient = errors.New("missing recipient phone number")
)

// Twilio sends SMS through the Twilio Messages API.
type Twilio struct {
	AccountSID string
	AuthToken  string
	From       string // sender phone number in E.164 format
	BaseURL    string
	Client     *http.Client
}

// NewTwilio returns a Twilio sender on the public API.
func NewTwilio(accountSID, authToken, from string) *Twilio {
	return &Twilio{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       from,
		BaseURL:    TwilioBaseURL,
		Client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (t *Twilio) endpoint() string {
	base := t.BaseURL
	if base == "" {
		base = TwilioBaseURL
	}
	return fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimSuffix(base, "/"), url.PathEscape(t.AccountSID))
}

// Send sends body to the phone number to, in E.164 format, and returns the message SID.
func (t *Twilio) Send(ctx context.Context, to, body string) (string, error) {
	if t.AccountSID == "" || t.AuthToken == "" || t.From == "" {
		return "", ErrMissingCredentials
	}
	if strings.TrimSpace(to) == "" {
		return "", ErrMissingRecipient
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.From)
	form.Set("Body", body)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(t.AccountSID, t.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending SMS: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading Twilio response: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return "", fmt.Errorf("error decoding Twilio response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, err := get(jobj, "$.message")
		if err != nil {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("error sending SMS: %s (status %d)", msg, resp.StatusCode)
	}

	sid, err := get(jobj, "$.sid")
	if err != nil {
		return "", fmt.Errorf("error reading message SID: %w", err)
	}
	logger.Get().Infow("message sent", "sid", sid, "to", to)
	return sid, nil
}

// get returns the string at path in jobj.
func get(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("error parsing %q: not a string %v", path, jval)
	}
	return s, nil
}
