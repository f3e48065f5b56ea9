package middleware

import (
	"crypto/subtle"
	"strings"
	"time"

	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/helpers"
	"wirpackens-service/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
	"go.uber.org/zap"
)

const (
	allowMethods     = "GET, POST, PUT, DELETE, OPTIONS"
	allowHeaders     = "Content-Type, Authorization, Stripe-Signature"
	permissionPolicy = `payment=(self "https://js.stripe.com" "https://checkout.stripe.com")`
)

type Middleware struct {
	Log        *otelzap.Logger
	Metrics    *metrics.Metrics
	AdminToken string
	Tracer     *apm.Tracer
}

// CORS allows any origin; preflight requests are answered with 200 and no body.
func (m *Middleware) CORS(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	ctx.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
	ctx.Set("Permissions-Policy", permissionPolicy)

	if ctx.Method() == fiber.MethodOptions {
		return ctx.SendStatus(fiber.StatusOK)
	}
	return ctx.Next()
}

func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	if err != nil {
		if handlerErr := ctx.App().ErrorHandler(ctx, err); handlerErr != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError)
		}
	}

	status := ctx.Response().StatusCode()
	elapsed := time.Since(start)
	route := ctx.Route().Path

	m.Metrics.ObserveHTTP(ctx.Method(), route, status, elapsed.Seconds())

	fields := []zap.Field{
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", status),
		zap.Duration("latency", elapsed),
	}
	if rid, ok := ctx.Locals("requestid").(string); ok {
		fields = append(fields, zap.String("request_id", rid))
	}
	m.Log.Ctx(ctx.UserContext()).Info("http request", fields...)

	return nil
}

// ValidateToken guards admin listings with a static bearer token. When no
// token is configured the listings stay public.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	if m.AdminToken == "" {
		return ctx.Next()
	}

	auth := ctx.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Warn("missing bearer token", zap.String("path", ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("Nicht autorisiert"))
	}

	token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	if subtle.ConstantTimeCompare([]byte(token), []byte(m.AdminToken)) != 1 {
		m.Log.Ctx(ctx.UserContext()).Warn("invalid bearer token", zap.String("path", ctx.Path()))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("Nicht autorisiert"))
	}

	return ctx.Next()
}

// Tracing opens an APM transaction per request and exposes it through the
// user context so provider calls can attach spans.
func (m *Middleware) Tracing(ctx *fiber.Ctx) error {
	if m.Tracer == nil {
		return ctx.Next()
	}

	tx := m.Tracer.StartTransaction(ctx.Method()+" "+ctx.Path(), "request")
	defer tx.End()

	ctx.SetUserContext(apm.ContextWithTransaction(ctx.UserContext(), tx))
	err := ctx.Next()

	route := ctx.Route().Path
	if route != "" {
		tx.Name = ctx.Method() + " " + route
	}
	tx.Result = apmResult(ctx.Response().StatusCode())
	return err
}

func apmResult(status int) string {
	switch {
	case status >= 500:
		return "HTTP 5xx"
	case status >= 400:
		return "HTTP 4xx"
	case status >= 300:
		return "HTTP 3xx"
	default:
		return "HTTP 2xx"
	}
}
