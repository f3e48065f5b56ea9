package router

import (
	"time"

	bookinghandler "wirpackens-service/internal/module/booking/handler"
	contacthandler "wirpackens-service/internal/module/contact/handler"
	pricinghandler "wirpackens-service/internal/module/pricing/handler"
	"wirpackens-service/internal/pkg/helpers"
	"wirpackens-service/internal/pkg/metrics"
	"wirpackens-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// PaymentStatus reports whether the payment provider is usable.
type PaymentStatus interface {
	Configured() bool
	WebhookConfigured() bool
}

// Health is what the health endpoint reports about the running instance.
type Health struct {
	AppEnv   string
	BaseURL  string
	Storage  string
	Payments PaymentStatus
}

func Initialize(
	app *fiber.App,
	handlerContact *contacthandler.ContactHandler,
	handlerPricing *pricinghandler.PricingHandler,
	handlerBooking *bookinghandler.BookingHandler,
	m *middleware.Middleware,
	health Health,
	gatherer prometheus.Gatherer,
) *fiber.App {
	app.Use(m.CORS)
	app.Use(m.Tracing)
	app.Use(m.RequestLogger)

	app.Get("/metrics", metrics.Handler(gatherer))

	api := app.Group("/api")
	api.Get("/health", healthCheck(health))

	// public routes
	api.Post("/contact", handlerContact.CreateContact)
	api.Post("/price-calculation", handlerPricing.CreatePriceCalculation)
	api.Post("/price-estimate", handlerPricing.Estimate)
	api.Post("/bookings", handlerBooking.CreateBooking)
	api.Post("/stripe-webhook", handlerBooking.StripeWebhook)
	api.Get("/booking-success/:sessionId", handlerBooking.BookingSuccess)

	// admin listings
	api.Get("/contacts", m.ValidateToken, handlerContact.ListContacts)
	api.Get("/price-calculations", m.ValidateToken, handlerPricing.ListPriceCalculations)
	api.Get("/bookings", m.ValidateToken, handlerBooking.ListBookings)

	return app
}

func healthCheck(health Health) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		stripeConfigured, webhookConfigured := false, false
		if health.Payments != nil {
			stripeConfigured = health.Payments.Configured()
			webhookConfigured = health.Payments.WebhookConfigured()
		}

		return helpers.RespSuccess(ctx, nil, fiber.Map{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"environment": fiber.Map{
				"appEnv":            health.AppEnv,
				"stripeConfigured":  stripeConfigured,
				"webhookConfigured": webhookConfigured,
				"baseUrl":           health.BaseURL,
				"storage":           health.Storage,
			},
		}, "Server läuft")
	}
}
