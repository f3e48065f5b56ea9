package handler

import (
	"context"
	"fmt"
	"strings"

	"wirpackens-service/internal/module/booking/models/request"
	"wirpackens-service/internal/module/booking/usecases"
	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

const HeaderStripeSignature = "Stripe-Signature"

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

// CreateBooking leaves validation to the usecase, which first checks that
// payments are configured.
func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	if !h.Usecase.PaymentsConfigured() {
		return helpers.RespError(ctx, h.Log, errors.StripeNotConfigured())
	}

	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Ungültige Anfrage"))
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{
		"booking":    resp.Booking,
		"paymentUrl": resp.PaymentURL,
		"sessionId":  resp.SessionID,
	}, "")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	bookings, err := h.Usecase.ListBookings(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{"bookings": bookings}, "")
}

func (h *BookingHandler) StripeWebhook(ctx *fiber.Ctx) error {
	// fasthttp reuses the body buffer after the handler returns.
	payload := append([]byte(nil), ctx.Body()...)
	signature := ctx.Get(HeaderStripeSignature)

	if err := h.Usecase.HandleWebhook(ctx.UserContext(), payload, signature); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

func (h *BookingHandler) BookingSuccess(ctx *fiber.Ctx) error {
	sessionID := strings.TrimSpace(ctx.Params("sessionId"))
	if sessionID == "" {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Session-ID fehlt"))
	}

	resp, err := h.Usecase.GetBookingBySession(ctx.UserContext(), sessionID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get booking by session: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{
		"booking": resp.Booking,
		"session": resp.Session,
	}, "")
}

// ConsumeBookingConfirmed handles booking_confirmed messages. Undecodable
// payloads go straight to the poison queue; other failures are returned so
// the router retries before poisoning them.
func (h *BookingHandler) ConsumeBookingConfirmed(msg *message.Message) error {
	var req request.BookingConfirmed
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error validate message: %v", err))
		h.poison(msg, err)
		return nil
	}

	if err := h.Usecase.ConsumeBookingConfirmed(context.Background(), &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume booking confirmed: %v", err))
		return err
	}

	return nil
}

func (h *BookingHandler) poison(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicBookingConfirmed,
		ErrorMsg:    cause.Error(),
		Payload:     string(msg.Payload),
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish(usecases.TopicPoisoned, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
