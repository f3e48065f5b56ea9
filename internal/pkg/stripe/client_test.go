package stripe_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wirpackens-service/config"
	"wirpackens-service/internal/pkg/stripe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *stripe.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return stripe.New(&config.StripeConfig{
		SecretKey:        "sk_test_51abc",
		WebhookSecret:    "whsec_test",
		APIBase:          srv.URL,
		APIVersion:       "2024-06-20",
		Currency:         "EUR",
		WebhookTolerance: 5 * time.Minute,
		RequestTimeout:   2 * time.Second,
	}, srv.Client(), nil)
}

func TestIsConfiguredKey(t *testing.T) {
	assert.False(t, stripe.IsConfiguredKey(""))
	assert.False(t, stripe.IsConfiguredKey("  "))
	assert.False(t, stripe.IsConfiguredKey("sk_test_placeholder"))
	assert.False(t, stripe.IsConfiguredKey("your_stripe_secret_key"))
	assert.False(t, stripe.IsConfiguredKey("sk_live_PLACEHOLDER_123"))
	assert.True(t, stripe.IsConfiguredKey("sk_test_51abc"))
}

func TestCreatePaymentIntent(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_51abc", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "20000", r.PostForm.Get("amount"))
		assert.Equal(t, "eur", r.PostForm.Get("currency"))
		assert.Equal(t, "7", r.PostForm.Get("metadata[bookingId]"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","amount":20000,"currency":"eur","status":"requires_payment_method"}`))
	})

	pi, err := client.CreatePaymentIntent(context.Background(), stripe.PaymentIntentParams{
		Amount:   20000,
		Metadata: map[string]string{"bookingId": "7"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", pi.ID)
}

func TestCreateCheckoutSession(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "payment", r.PostForm.Get("mode"))
		assert.Equal(t, "20000", r.PostForm.Get("line_items[0][price_data][unit_amount]"))
		assert.Equal(t, "1", r.PostForm.Get("line_items[0][quantity]"))
		assert.Equal(t, "Anzahlung", r.PostForm.Get("line_items[0][price_data][product_data][name]"))
		assert.Equal(t, "https://example.com/ok", r.PostForm.Get("success_url"))
		assert.Equal(t, "3", r.PostForm.Get("metadata[bookingId]"))

		_, _ = w.Write([]byte(`{"id":"cs_test_1","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
	})

	cs, err := client.CreateCheckoutSession(context.Background(), stripe.CheckoutSessionParams{
		LineItems:  []stripe.LineItem{{Name: "Anzahlung", UnitAmount: 20000}},
		SuccessURL: "https://example.com/ok",
		CancelURL:  "https://example.com/cancel",
		Metadata:   map[string]string{"bookingId": "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", cs.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", cs.URL)
}

func TestProviderErrorIsSurfaced(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"type":"card_error","code":"amount_too_small","message":"Amount must be at least 0.50 eur"}}`))
	})

	_, err := client.CreatePaymentIntent(context.Background(), stripe.PaymentIntentParams{Amount: 1})
	require.Error(t, err)

	var serr *stripe.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "amount_too_small", serr.Code)
	assert.Equal(t, http.StatusPaymentRequired, serr.HTTPStatus)
	assert.False(t, stripe.IsUnavailable(err))
}

func TestTransportErrorIsUnavailable(t *testing.T) {
	client := stripe.New(&config.StripeConfig{
		SecretKey: "sk_test_51abc",
		APIBase:   "http://127.0.0.1:1",
	}, http.DefaultClient, nil)

	_, err := client.GetCheckoutSession(context.Background(), "cs_1")
	require.Error(t, err)
	assert.True(t, stripe.IsUnavailable(err))
}

func TestGetCheckoutSession(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/checkout/sessions/cs_test_9", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"cs_test_9","status":"complete","payment_status":"paid","amount_total":20000,"currency":"eur","metadata":{"bookingId":"9"}}`))
	})

	cs, err := client.GetCheckoutSession(context.Background(), "cs_test_9")
	require.NoError(t, err)
	assert.Equal(t, "paid", cs.PaymentStatus)
	assert.Equal(t, "9", cs.Metadata["bookingId"])
}
