package usecases

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wirpackens-service/internal/module/booking/models/entity"
	"wirpackens-service/internal/module/booking/models/request"
	"wirpackens-service/internal/module/booking/models/response"
	"wirpackens-service/internal/module/booking/repositories"
	"wirpackens-service/internal/module/pricing/calculator"
	pricingentity "wirpackens-service/internal/module/pricing/models/entity"
	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/mailer"
	"wirpackens-service/internal/pkg/metrics"
	"wirpackens-service/internal/pkg/stripe"
	"wirpackens-service/internal/pkg/validation"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	TopicBookingConfirmed = "booking_confirmed"
	TopicPoisoned         = "poisoned_queue"
)

// PaymentProvider is the subset of the Stripe client the booking flow uses.
type PaymentProvider interface {
	Configured() bool
	Currency() string
	CreatePaymentIntent(ctx context.Context, params stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	CreateCheckoutSession(ctx context.Context, params stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error)
	ConstructEvent(payload []byte, header string) (stripe.Event, error)
}

type PriceCalculations interface {
	FindPriceCalculationByID(ctx context.Context, id int64) (pricingentity.PriceCalculation, bool, error)
}

type Notifier interface {
	NotifyBookingConfirmed(ctx context.Context, d mailer.BookingConfirmedMail) error
}

type usecase struct {
	repo      repositories.Repositories
	locker    repositories.Locker
	events    repositories.EventTracker
	payments  PaymentProvider
	prices    PriceCalculations
	notifier  Notifier
	publisher message.Publisher
	validator *validator.Validate
	metrics   *metrics.Metrics
	log       *otelzap.Logger
	baseURL   string
	now       func() time.Time
}

type Usecase interface {
	// http
	PaymentsConfigured() bool
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error)
	ListBookings(ctx context.Context) ([]response.Booking, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	GetBookingBySession(ctx context.Context, sessionID string) (response.BookingSession, error)
	// message stream
	ConsumeBookingConfirmed(ctx context.Context, payload *request.BookingConfirmed) error
}

func New(
	repo repositories.Repositories,
	locker repositories.Locker,
	events repositories.EventTracker,
	payments PaymentProvider,
	prices PriceCalculations,
	notifier Notifier,
	publisher message.Publisher,
	validator *validator.Validate,
	m *metrics.Metrics,
	log *otelzap.Logger,
	baseURL string,
) Usecase {
	return &usecase{
		repo:      repo,
		locker:    locker,
		events:    events,
		payments:  payments,
		prices:    prices,
		notifier:  notifier,
		publisher: publisher,
		validator: validator,
		metrics:   m,
		log:       log,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
}

// CreateBooking stores the booking and opens a hosted checkout for the
// deposit. A booking stays stored when a later provider call fails.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (response.CreatedBooking, error) {
	if !u.payments.Configured() {
		u.metrics.ObserveBooking("not_configured")
		return response.CreatedBooking{}, errors.StripeNotConfigured()
	}

	booking, err := u.validateBooking(ctx, payload)
	if err != nil {
		u.metrics.ObserveBooking("invalid")
		return response.CreatedBooking{}, err
	}

	booking, err = u.repo.InsertBooking(ctx, booking)
	if err != nil {
		u.metrics.ObserveBooking("store_failed")
		return response.CreatedBooking{}, err
	}
	bookingID := strconv.FormatInt(booking.ID, 10)

	intent, err := u.payments.CreatePaymentIntent(ctx, stripe.PaymentIntentParams{
		Amount:   booking.DepositAmount,
		Currency: u.payments.Currency(),
		Metadata: map[string]string{
			"bookingId":     bookingID,
			"customerEmail": booking.CustomerEmail,
			"serviceType":   booking.ServiceType,
		},
	})
	if err != nil {
		u.log.Ctx(ctx).Error("create payment intent", zap.Int64("booking_id", booking.ID), zap.Error(err))
		u.metrics.ObserveBooking("provider_failed")
		return response.CreatedBooking{}, providerError(err)
	}

	booking, err = u.attach(ctx, booking.ID, entity.BookingUpdate{StripePaymentIntentID: &intent.ID})
	if err != nil {
		return response.CreatedBooking{}, err
	}

	label := calculator.Label(booking.ServiceType)
	session, err := u.payments.CreateCheckoutSession(ctx, stripe.CheckoutSessionParams{
		Currency: u.payments.Currency(),
		LineItems: []stripe.LineItem{{
			Name:        "Anzahlung – " + label,
			Description: fmt.Sprintf("%s am %s um %s Uhr", label, booking.AppointmentDate.Format("02.01.2006"), booking.AppointmentTime),
			UnitAmount:  booking.DepositAmount,
			Quantity:    1,
		}},
		SuccessURL:    u.baseURL + "/booking-success?session_id={CHECKOUT_SESSION_ID}&booking_id=" + bookingID,
		CancelURL:     u.baseURL + "/?booking_cancelled=" + url.QueryEscape(bookingID),
		CustomerEmail: booking.CustomerEmail,
		Metadata:      map[string]string{"bookingId": bookingID},
	})
	if err != nil {
		u.log.Ctx(ctx).Error("create checkout session", zap.Int64("booking_id", booking.ID), zap.Error(err))
		u.metrics.ObserveBooking("provider_failed")
		return response.CreatedBooking{}, providerError(err)
	}

	booking, err = u.attach(ctx, booking.ID, entity.BookingUpdate{StripeSessionID: &session.ID})
	if err != nil {
		return response.CreatedBooking{}, err
	}

	u.metrics.ObserveBooking("checkout_created")
	return response.CreatedBooking{
		Booking:    response.NewBooking(booking),
		PaymentURL: session.URL,
		SessionID:  session.ID,
	}, nil
}

// validateBooking reports every failing field at once and builds the
// pending booking.
func (u *usecase) validateBooking(ctx context.Context, payload *request.CreateBooking) (entity.Booking, error) {
	payload.Normalize()

	var fields []errors.FieldError
	if err := u.validator.Struct(payload); err != nil {
		fields = validation.Fields(err)
	}

	deposit := payload.DepositAmount
	switch {
	case deposit == 0:
		deposit = entity.DefaultDeposit
		if payload.TotalPrice > 0 && deposit > payload.TotalPrice {
			deposit = payload.TotalPrice
		}
	case payload.TotalPrice > 0 && deposit > payload.TotalPrice:
		fields = append(fields, errors.FieldError{
			Field:   "depositAmount",
			Message: "darf den Gesamtpreis nicht übersteigen",
		})
	}

	if payload.PriceCalculationID > 0 && u.prices != nil {
		_, found, err := u.prices.FindPriceCalculationByID(ctx, payload.PriceCalculationID)
		if err != nil {
			return entity.Booking{}, err
		}
		if !found {
			fields = append(fields, errors.FieldError{
				Field:   "priceCalculationId",
				Message: "verweist auf keine bekannte Preisberechnung",
			})
		}
	}

	if len(fields) > 0 {
		return entity.Booking{}, errors.Validation("Ungültige Buchungsdaten", fields)
	}

	date, _ := validation.ParseDate(payload.AppointmentDate)

	return entity.Booking{
		PriceCalculationID: sql.NullInt64{Int64: payload.PriceCalculationID, Valid: payload.PriceCalculationID > 0},
		CustomerName:       strings.TrimSpace(payload.CustomerName),
		CustomerEmail:      strings.TrimSpace(payload.CustomerEmail),
		CustomerPhone:      strings.TrimSpace(payload.CustomerPhone),
		ServiceType:        payload.ServiceType,
		AppointmentDate:    date,
		AppointmentTime:    strings.TrimSpace(payload.AppointmentTime),
		CurrentAddress:     strings.TrimSpace(payload.CurrentAddress),
		NewAddress:         optional(payload.NewAddress),
		SpecialRequests:    optional(payload.SpecialRequests),
		TotalPrice:         payload.TotalPrice,
		DepositAmount:      deposit,
		PaymentStatus:      entity.PaymentPending,
		BookingStatus:      entity.BookingPending,
	}, nil
}

func (u *usecase) attach(ctx context.Context, id int64, upd entity.BookingUpdate) (entity.Booking, error) {
	booking, found, err := u.repo.UpdateBooking(ctx, id, upd)
	if err != nil {
		return entity.Booking{}, err
	}
	if !found {
		return entity.Booking{}, errors.NotFound("Buchung nicht gefunden")
	}
	return booking, nil
}

func (u *usecase) PaymentsConfigured() bool {
	return u.payments.Configured()
}

func (u *usecase) ListBookings(ctx context.Context) ([]response.Booking, error) {
	bookings, err := u.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response.NewBooking(b))
	}
	return out, nil
}

// HandleWebhook is the only path that marks a booking as paid.
func (u *usecase) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	evt, err := u.payments.ConstructEvent(payload, signature)
	if err != nil {
		u.log.Ctx(ctx).Warn("rejected stripe webhook", zap.Error(err))
		u.metrics.ObserveWebhook("unknown", "rejected")
		if stderrors.Is(err, stripe.ErrWebhookSecretMissing) {
			return errors.BadRequest("Webhook-Secret ist nicht konfiguriert")
		}
		return errors.BadRequest("Webhook-Signatur ungültig")
	}

	if evt.Type != stripe.EventCheckoutSessionCompleted {
		u.log.Ctx(ctx).Info("ignoring stripe event", zap.String("event_id", evt.ID), zap.String("event_type", evt.Type))
		u.metrics.ObserveWebhook(evt.Type, "ignored")
		return nil
	}

	first, err := u.events.Claim(ctx, evt.ID)
	if err != nil {
		// Confirmation only moves pending bookings, so handling a
		// redelivery twice is harmless.
		u.log.Ctx(ctx).Warn("event tracker unavailable", zap.String("event_id", evt.ID), zap.Error(err))
		first = true
	}
	if !first {
		u.log.Ctx(ctx).Info("duplicate stripe event", zap.String("event_id", evt.ID))
		u.metrics.ObserveWebhook(evt.Type, "duplicate")
		return nil
	}

	if err := u.confirmPayment(ctx, evt); err != nil {
		if relErr := u.events.Release(ctx, evt.ID); relErr != nil {
			u.log.Ctx(ctx).Warn("release stripe event", zap.String("event_id", evt.ID), zap.Error(relErr))
		}
		u.metrics.ObserveWebhook(evt.Type, "failed")
		return err
	}
	return nil
}

func (u *usecase) confirmPayment(ctx context.Context, evt stripe.Event) error {
	session, err := evt.CheckoutSession()
	if err != nil {
		u.log.Ctx(ctx).Warn("undecodable checkout session", zap.String("event_id", evt.ID), zap.Error(err))
		u.metrics.ObserveWebhook(evt.Type, "ignored")
		return nil
	}

	bookingID, err := strconv.ParseInt(session.Metadata["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		u.log.Ctx(ctx).Warn("checkout session without booking id", zap.String("session_id", session.ID))
		u.metrics.ObserveWebhook(evt.Type, "ignored")
		return nil
	}

	unlock, err := u.locker.Lock(ctx, strconv.FormatInt(bookingID, 10))
	if err != nil {
		return errors.InternalServerError("Buchung ist gesperrt, bitte erneut senden")
	}
	defer func() {
		if err := unlock(context.Background()); err != nil {
			u.log.Ctx(ctx).Warn("unlock booking", zap.Int64("booking_id", bookingID), zap.Error(err))
		}
	}()

	booking, found, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !found {
		u.log.Ctx(ctx).Warn("checkout completed for unknown booking", zap.Int64("booking_id", bookingID))
		u.metrics.ObserveWebhook(evt.Type, "unknown_booking")
		return nil
	}
	if booking.PaymentStatus != entity.PaymentPending {
		u.log.Ctx(ctx).Info("booking already settled", zap.Int64("booking_id", bookingID), zap.String("payment_status", booking.PaymentStatus))
		u.metrics.ObserveWebhook(evt.Type, "already_settled")
		return nil
	}

	paid, confirmed := entity.PaymentPaid, entity.BookingConfirmed
	upd := entity.BookingUpdate{
		PaymentStatus:   &paid,
		BookingStatus:   &confirmed,
		StripeSessionID: &session.ID,
	}
	if !booking.StripePaymentIntentID.Valid && session.PaymentIntent != "" {
		upd.StripePaymentIntentID = &session.PaymentIntent
	}
	if _, _, err := u.repo.UpdateBooking(ctx, bookingID, upd); err != nil {
		return err
	}

	u.log.Ctx(ctx).Info("booking confirmed", zap.Int64("booking_id", bookingID), zap.String("session_id", session.ID))
	u.metrics.ObserveWebhook(evt.Type, "confirmed")

	u.publishConfirmed(ctx, request.BookingConfirmed{
		BookingID:   bookingID,
		EventID:     evt.ID,
		SessionID:   session.ID,
		ConfirmedAt: u.now().UTC(),
	})
	return nil
}

// publishConfirmed does not fail the webhook: the payment is already
// recorded and Stripe must not redeliver.
func (u *usecase) publishConfirmed(ctx context.Context, evt request.BookingConfirmed) {
	if u.publisher == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		u.log.Ctx(ctx).Error("marshal booking confirmed", zap.Error(err))
		return
	}
	if err := u.publisher.Publish(TopicBookingConfirmed, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Ctx(ctx).Error("publish booking confirmed", zap.Int64("booking_id", evt.BookingID), zap.Error(err))
	}
}

func (u *usecase) GetBookingBySession(ctx context.Context, sessionID string) (response.BookingSession, error) {
	if !u.payments.Configured() {
		return response.BookingSession{}, errors.StripeNotConfigured()
	}

	session, err := u.payments.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		var serr *stripe.Error
		if stderrors.As(err, &serr) && serr.HTTPStatus == http.StatusNotFound {
			return response.BookingSession{}, errors.NotFound("Zahlungssitzung nicht gefunden")
		}
		return response.BookingSession{}, providerError(err)
	}

	bookingID, err := strconv.ParseInt(session.Metadata["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		return response.BookingSession{}, errors.NotFound("Keine Buchung zu dieser Zahlung gefunden")
	}

	booking, found, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.BookingSession{}, err
	}
	if !found {
		return response.BookingSession{}, errors.NotFound("Buchung nicht gefunden")
	}

	return response.BookingSession{
		Booking: response.NewBooking(booking),
		Session: response.Session{
			ID:            session.ID,
			PaymentStatus: session.PaymentStatus,
			Status:        session.Status,
			AmountTotal:   session.AmountTotal,
			Currency:      session.Currency,
			CustomerEmail: session.CustomerEmail,
		},
	}, nil
}

// ConsumeBookingConfirmed sends the confirmation emails for a paid booking.
func (u *usecase) ConsumeBookingConfirmed(ctx context.Context, payload *request.BookingConfirmed) error {
	booking, found, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFound(fmt.Sprintf("booking %d not found", payload.BookingID))
	}

	return u.notifier.NotifyBookingConfirmed(ctx, mailer.BookingConfirmedMail{
		BookingID:       booking.ID,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		ServiceLabel:    calculator.Label(booking.ServiceType),
		AppointmentDate: booking.AppointmentDate.Format("02.01.2006"),
		AppointmentTime: booking.AppointmentTime,
		CurrentAddress:  booking.CurrentAddress,
		NewAddress:      booking.NewAddress.String,
		DepositAmount:   booking.DepositAmount,
		TotalPrice:      booking.TotalPrice,
	})
}

func providerError(err error) error {
	if stripe.IsUnavailable(err) {
		return errors.StripeUnavailable("Zahlungsanbieter ist derzeit nicht erreichbar, bitte später erneut versuchen")
	}
	var serr *stripe.Error
	if stderrors.As(err, &serr) {
		return errors.StripeError(serr.Message, serr.Code)
	}
	return errors.StripeError(err.Error(), "")
}

func optional(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}
