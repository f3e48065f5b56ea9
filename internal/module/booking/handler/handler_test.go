package handler_test

import (
	"bytes"
	stderrors "errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"wirpackens-service/internal/module/booking/handler"
	"wirpackens-service/internal/module/booking/mocks"
	"wirpackens-service/internal/module/booking/models/request"
	"wirpackens-service/internal/module/booking/models/response"
	"wirpackens-service/internal/module/booking/usecases"
	"wirpackens-service/internal/pkg/errors"
	log_internal "wirpackens-service/internal/pkg/log"
	"wirpackens-service/internal/pkg/validation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.BookingHandler
	ucm *mocks.Usecase
	p   *mockPublisher
	app *fiber.App
)

type mockPublisher struct {
	mu     sync.Mutex
	topics []string
	last   *message.Message
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range messages {
		m.topics = append(m.topics, topic)
		m.last = msg
	}
	return nil
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

func setup() {
	ucm = &mocks.Usecase{}
	p = &mockPublisher{}
	h = &handler.BookingHandler{
		Log:       log_internal.Nop(),
		Validator: validation.New(),
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
	app.Post("/api/bookings", h.CreateBooking)
	app.Get("/api/bookings", h.ListBookings)
	app.Post("/api/stripe-webhook", h.StripeWebhook)
	app.Get("/api/booking-success/:sessionId", h.BookingSuccess)
}

func teardown() {
	ucm = nil
	p = nil
	h = nil
	app = nil
}

func do(t *testing.T, method, path string, body []byte, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]interface{}{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()
		ucm.On("PaymentsConfigured").Return(true)

		payload := request.CreateBooking{
			CustomerName:    "Max Mustermann",
			CustomerEmail:   "max@example.com",
			CustomerPhone:   "0301234567",
			ServiceType:     "office",
			AppointmentDate: "2026-11-20",
			AppointmentTime: "10:00",
			CurrentAddress:  "Hauptstraße 1",
			TotalPrice:      150000,
		}
		body, _ := json.Marshal(payload)
		ucm.On("CreateBooking", mock.Anything, &payload).Return(response.CreatedBooking{
			Booking:    response.Booking{ID: 3, DepositAmount: 20000, PaymentStatus: "pending"},
			PaymentURL: "https://checkout.stripe.com/c/pay/cs_test_1",
			SessionID:  "cs_test_1",
		}, nil).Once()

		status, out := do(t, fiber.MethodPost, "/api/bookings", body, nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, true, out["success"])
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", out["paymentUrl"])
		assert.Equal(t, "cs_test_1", out["sessionId"])
		booking := out["booking"].(map[string]interface{})
		assert.Equal(t, float64(3), booking["id"])
		assert.Equal(t, "pending", booking["paymentStatus"])
	})

	t.Run("malformed body", func(t *testing.T) {
		setup()
		defer teardown()
		ucm.On("PaymentsConfigured").Return(true)

		status, out := do(t, fiber.MethodPost, "/api/bookings", []byte(`{"customerName":`), nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, out["success"])
		ucm.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("validation error", func(t *testing.T) {
		setup()
		defer teardown()
		ucm.On("PaymentsConfigured").Return(true)

		ucm.On("CreateBooking", mock.Anything, mock.Anything).Return(response.CreatedBooking{},
			errors.Validation("Ungültige Buchungsdaten", []errors.FieldError{{Field: "newAddress", Message: "ist erforderlich"}})).Once()

		status, out := do(t, fiber.MethodPost, "/api/bookings", []byte(`{"serviceType":"moving"}`), nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, errors.TypeValidation, out["errorType"])
		fields := out["errors"].([]interface{})
		require.Len(t, fields, 1)
		assert.Equal(t, "newAddress", fields[0].(map[string]interface{})["field"])
	})

	t.Run("payment not configured", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("PaymentsConfigured").Return(false)

		status, out := do(t, fiber.MethodPost, "/api/bookings", []byte(`{"customerName":`), nil)

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, errors.TypeStripeNotConfigured, out["errorType"])
		ucm.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("retryable provider failure", func(t *testing.T) {
		setup()
		defer teardown()
		ucm.On("PaymentsConfigured").Return(true)

		ucm.On("CreateBooking", mock.Anything, mock.Anything).Return(response.CreatedBooking{}, errors.StripeUnavailable("nicht erreichbar")).Once()

		status, out := do(t, fiber.MethodPost, "/api/bookings", []byte(`{}`), nil)

		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, true, out["retryable"])
	})
}

func TestListBookings(t *testing.T) {
	setup()
	defer teardown()

	ucm.On("ListBookings", mock.Anything).Return([]response.Booking{{ID: 2}, {ID: 1}}, nil).Once()

	status, out := do(t, fiber.MethodGet, "/api/bookings", nil, nil)

	assert.Equal(t, fiber.StatusOK, status)
	bookings := out["bookings"].([]interface{})
	require.Len(t, bookings, 2)
	assert.Equal(t, float64(2), bookings[0].(map[string]interface{})["id"])
}

func TestStripeWebhook(t *testing.T) {
	body := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	t.Run("acknowledged", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("HandleWebhook", mock.Anything, body, "t=1,v1=abc").Return(nil).Once()

		status, out := do(t, fiber.MethodPost, "/api/stripe-webhook", body, map[string]string{
			handler.HeaderStripeSignature: "t=1,v1=abc",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"received": true}, out)
	})

	t.Run("rejected signature", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("HandleWebhook", mock.Anything, body, "").Return(errors.BadRequest("Webhook-Signatur ungültig")).Once()

		status, out := do(t, fiber.MethodPost, "/api/stripe-webhook", body, nil)

		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, false, out["success"])
	})
}

func TestBookingSuccess(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("GetBookingBySession", mock.Anything, "cs_test_1").Return(response.BookingSession{
			Booking: response.Booking{ID: 1, PaymentStatus: "paid"},
			Session: response.Session{ID: "cs_test_1", PaymentStatus: "paid", AmountTotal: 20000},
		}, nil).Once()

		status, out := do(t, fiber.MethodGet, "/api/booking-success/cs_test_1", nil, nil)

		assert.Equal(t, fiber.StatusOK, status)
		session := out["session"].(map[string]interface{})
		assert.Equal(t, "paid", session["paymentStatus"])
		assert.Equal(t, float64(20000), session["amountTotal"])
	})

	t.Run("not found", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("GetBookingBySession", mock.Anything, "cs_unknown").Return(response.BookingSession{}, errors.NotFound("Buchung nicht gefunden")).Once()

		status, out := do(t, fiber.MethodGet, "/api/booking-success/cs_unknown", nil, nil)

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, errors.TypeNotFound, out["errorType"])
	})
}

func TestConsumeBookingConfirmed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()

		payload := request.BookingConfirmed{BookingID: 1, EventID: "evt_1", SessionID: "cs_test_1"}
		raw, _ := json.Marshal(payload)
		ucm.On("ConsumeBookingConfirmed", mock.Anything, mock.MatchedBy(func(r *request.BookingConfirmed) bool {
			return r.BookingID == 1 && r.EventID == "evt_1" && r.SessionID == "cs_test_1"
		})).Return(nil).Once()

		err := h.ConsumeBookingConfirmed(message.NewMessage(watermill.NewUUID(), raw))

		assert.NoError(t, err)
		assert.Empty(t, p.topics)
	})

	t.Run("undecodable payload is poisoned", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ConsumeBookingConfirmed(message.NewMessage(watermill.NewUUID(), []byte("{broken")))

		assert.NoError(t, err)
		require.Equal(t, []string{usecases.TopicPoisoned}, p.topics)
		var poisoned request.PoisonedQueue
		require.NoError(t, json.Unmarshal(p.last.Payload, &poisoned))
		assert.Equal(t, usecases.TopicBookingConfirmed, poisoned.TopicTarget)
		assert.Equal(t, "{broken", poisoned.Payload)
		ucm.AssertNotCalled(t, "ConsumeBookingConfirmed", mock.Anything, mock.Anything)
	})

	t.Run("missing booking id is poisoned", func(t *testing.T) {
		setup()
		defer teardown()

		err := h.ConsumeBookingConfirmed(message.NewMessage(watermill.NewUUID(), []byte(`{"eventId":"evt_1"}`)))

		assert.NoError(t, err)
		assert.Equal(t, []string{usecases.TopicPoisoned}, p.topics)
	})

	t.Run("usecase failure is returned for retry", func(t *testing.T) {
		setup()
		defer teardown()

		ucm.On("ConsumeBookingConfirmed", mock.Anything, mock.Anything).Return(stderrors.New("sendgrid: 503")).Once()

		err := h.ConsumeBookingConfirmed(message.NewMessage(watermill.NewUUID(), []byte(`{"bookingId":1}`)))

		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "sendgrid"))
		assert.Empty(t, p.topics)
	})
}
