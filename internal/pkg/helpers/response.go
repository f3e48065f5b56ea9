package helpers

import (
	"wirpackens-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// RespSuccess writes {success:true, message?, ...data}.
func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data fiber.Map, message string) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range data {
		body[k] = v
	}
	return ctx.Status(fiber.StatusOK).JSON(body)
}

// RespError maps err onto the JSON error body. Errors that are not
// *errors.CustomError become UNKNOWN_ERROR with status 500.
func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	ce, ok := errors.AsCustom(err)
	if !ok {
		ce = errors.InternalServerError(messageOf(err))
	}

	body := fiber.Map{
		"success":   false,
		"message":   ce.Message,
		"errorType": ce.ErrorType,
	}
	if len(ce.Fields) > 0 {
		body["errors"] = ce.Fields
	}
	if ce.Code != "" {
		body["code"] = ce.Code
	}
	if ce.Retryable {
		body["retryable"] = true
	}

	if ce.HTTPCode >= fiber.StatusInternalServerError && log != nil {
		log.Ctx(ctx.UserContext()).Error("request failed",
			zap.String("path", ctx.Path()),
			zap.String("error_type", ce.ErrorType),
			zap.Error(err),
		)
	}

	return ctx.Status(ce.HTTPCode).JSON(body)
}

func messageOf(err error) string {
	if err == nil || err.Error() == "" {
		return "Unbekannter Fehler"
	}
	return err.Error()
}
