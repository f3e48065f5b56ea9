package helpers_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/helpers"
	log_internal "wirpackens-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestRespSuccess(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, log_internal.Nop(), fiber.Map{"contact": fiber.Map{"id": 1}}, "")
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["contact"])
	assert.NotContains(t, body, "message")
}

func TestRespErrorValidation(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return helpers.RespError(c, log_internal.Nop(), errors.Validation("Ungültige Formulardaten", []errors.FieldError{
			{Field: "email", Message: "muss eine gültige E-Mail-Adresse sein"},
		}))
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, errors.TypeValidation, body["errorType"])
	assert.Len(t, body["errors"], 1)
}

func TestRespErrorUnknown(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return helpers.RespError(c, log_internal.Nop(), fmt.Errorf("boom"))
	})

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, errors.TypeUnknown, body["errorType"])
	assert.Equal(t, "boom", body["message"])
}

func TestRespErrorProviderCode(t *testing.T) {
	status, body := call(t, func(c *fiber.Ctx) error {
		return helpers.RespError(c, log_internal.Nop(), errors.StripeError("Your card was declined.", "card_declined"))
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, errors.TypeStripe, body["errorType"])
	assert.Equal(t, "card_declined", body["code"])
}
