package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const EventCheckoutSessionCompleted = "checkout.session.completed"

var (
	ErrWebhookSecretMissing = stderrors.New("stripe: webhook secret not configured")
	ErrInvalidSignature     = stderrors.New("stripe: invalid webhook signature")
	ErrTimestampOutOfRange  = stderrors.New("stripe: webhook timestamp outside tolerance")
)

type Event struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
	Data    struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// CheckoutSession decodes the event's data object as a checkout session.
func (e Event) CheckoutSession() (*CheckoutSession, error) {
	var s CheckoutSession
	if err := json.Unmarshal(e.Data.Object, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ConstructEvent verifies the Stripe-Signature header over payload and
// decodes the event. Verification never passes without a webhook secret.
func (c *Client) ConstructEvent(payload []byte, header string) (Event, error) {
	if c.webhookSecret == "" {
		return Event{}, ErrWebhookSecretMissing
	}
	if err := verifySignature(c.webhookSecret, payload, header, c.tolerance, c.now()); err != nil {
		return Event{}, err
	}

	var evt Event
	if err := json.Unmarshal(payload, &evt); err != nil {
		return Event{}, err
	}
	return evt, nil
}

// Header format: t=<unix>,v1=<hex hmac>[,v1=...][,v0=...]
func verifySignature(secret string, payload []byte, header string, tolerance time.Duration, now time.Time) error {
	var timestamp string
	var signatures []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp = kv[1]
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}
	if timestamp == "" || len(signatures) == 0 {
		return ErrInvalidSignature
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	if tolerance > 0 {
		age := now.Sub(time.Unix(ts, 0))
		if age > tolerance || age < -tolerance {
			return ErrTimestampOutOfRange
		}
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// SignPayload builds a Stripe-Signature header value. Used by tests and
// local tooling that replays events.
func SignPayload(secret string, payload []byte, at time.Time) string {
	ts := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts + "." + string(payload)))
	return "t=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}
