// Package stripe is a small form-encoded client for the parts of the Stripe
// API the booking flow needs: payment intents, checkout sessions and webhook
// verification.
package stripe

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wirpackens-service/config"
	"wirpackens-service/internal/pkg/metrics"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm"
)

// ErrUnavailable marks transport failures, timeouts and an open breaker.
var ErrUnavailable = stderrors.New("stripe: provider unavailable")

var placeholderKeys = map[string]struct{}{
	"sk_test_placeholder":    {},
	"sk_test_...":            {},
	"sk_live_...":            {},
	"your_stripe_secret_key": {},
	"sk_test_your_key_here":  {},
	"sk_test_xxx":            {},
}

// Doer is satisfied by *http.Client and the circuit breaker client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	secretKey     string
	webhookSecret string
	baseURL       string
	apiVersion    string
	currency      string
	tolerance     time.Duration
	timeout       time.Duration
	http          Doer
	metrics       *metrics.Metrics
	now           func() time.Time
}

func New(cfg *config.StripeConfig, httpClient Doer, m *metrics.Metrics) *Client {
	return &Client{
		secretKey:     strings.TrimSpace(cfg.SecretKey),
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		baseURL:       strings.TrimRight(cfg.APIBase, "/"),
		apiVersion:    cfg.APIVersion,
		currency:      strings.ToLower(cfg.Currency),
		tolerance:     cfg.WebhookTolerance,
		timeout:       cfg.RequestTimeout,
		http:          httpClient,
		metrics:       m,
		now:           time.Now,
	}
}

// WithClock overrides the clock used for webhook timestamp checks.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// IsConfiguredKey reports whether key looks like a real secret key rather
// than an empty or template value.
func IsConfiguredKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}
	if _, ok := placeholderKeys[strings.ToLower(key)]; ok {
		return false
	}
	return !strings.Contains(strings.ToLower(key), "placeholder")
}

func (c *Client) Configured() bool {
	return IsConfiguredKey(c.secretKey)
}

func (c *Client) WebhookConfigured() bool {
	return c.webhookSecret != ""
}

func (c *Client) Currency() string {
	return c.currency
}

type PaymentIntentParams struct {
	Amount   int64
	Currency string
	Metadata map[string]string
}

type PaymentIntent struct {
	ID           string            `json:"id"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Metadata     map[string]string `json:"metadata"`
}

type LineItem struct {
	Name        string
	Description string
	UnitAmount  int64
	Quantity    int64
}

type CheckoutSessionParams struct {
	Currency      string
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID            string            `json:"id"`
	URL           string            `json:"url"`
	Status        string            `json:"status"`
	PaymentStatus string            `json:"payment_status"`
	PaymentIntent string            `json:"payment_intent"`
	AmountTotal   int64             `json:"amount_total"`
	Currency      string            `json:"currency"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

func (c *Client) CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", c.currencyOr(params.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	setMetadata(form, "metadata", params.Metadata)

	var out PaymentIntent
	if err := c.do(ctx, "create_payment_intent", http.MethodPost, "/v1/payment_intents", form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error) {
	currency := c.currencyOr(params.Currency)

	form := url.Values{}
	form.Set("mode", "payment")
	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		form.Set(prefix+"[quantity]", strconv.FormatInt(qty, 10))
	}
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}
	setMetadata(form, "metadata", params.Metadata)
	setMetadata(form, "payment_intent_data[metadata]", params.Metadata)

	var out CheckoutSession
	if err := c.do(ctx, "create_checkout_session", http.MethodPost, "/v1/checkout/sessions", form, &out); err != nil {
		return nil, err
	}
	if out.URL == "" {
		return nil, &Error{Message: "checkout session has no url", HTTPStatus: http.StatusBadGateway}
	}
	return &out, nil
}

func (c *Client) GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error) {
	var out CheckoutSession
	path := "/v1/checkout/sessions/" + url.PathEscape(id)
	if err := c.do(ctx, "get_checkout_session", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, form url.Values, out interface{}) error {
	span, ctx := apm.StartSpan(ctx, method+" "+path, "external.stripe")
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Stripe-Version", c.apiVersion)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveProvider(operation, "unavailable", time.Since(start).Seconds())
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveProvider(operation, "unavailable", time.Since(start).Seconds())
		return fmt.Errorf("%w: read %s response: %v", ErrUnavailable, operation, err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.ObserveProvider(operation, "error", time.Since(start).Seconds())
		return parseError(resp.StatusCode, raw)
	}
	c.metrics.ObserveProvider(operation, "ok", time.Since(start).Seconds())

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("stripe: decode %s response: %w", operation, err)
	}
	return nil
}

func (c *Client) currencyOr(currency string) string {
	if currency != "" {
		return strings.ToLower(currency)
	}
	return c.currency
}

func setMetadata(form url.Values, prefix string, metadata map[string]string) {
	for k, v := range metadata {
		form.Set(fmt.Sprintf("%s[%s]", prefix, k), v)
	}
}

// IsUnavailable reports whether err is a transport-level provider failure.
func IsUnavailable(err error) bool {
	return stderrors.Is(err, ErrUnavailable) ||
		stderrors.Is(err, circuit.ErrBreakerOpen) ||
		stderrors.Is(err, circuit.ErrBreakerTimeout) ||
		stderrors.Is(err, context.DeadlineExceeded)
}
