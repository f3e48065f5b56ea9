package handler

import (
	"fmt"

	"wirpackens-service/internal/module/contact/models/request"
	"wirpackens-service/internal/module/contact/usecases"
	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/helpers"
	"wirpackens-service/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type ContactHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *ContactHandler) CreateContact(ctx *fiber.Ctx) error {
	var req request.Contact
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Ungültige Anfrage"))
	}

	req.Normalize()
	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.Validation("Ungültige Eingabedaten", validation.Fields(err)))
	}

	resp, err := h.Usecase.CreateContact(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create contact: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{
		"contact":   resp.Contact,
		"emailSent": resp.EmailSent,
	}, "")
}

func (h *ContactHandler) ListContacts(ctx *fiber.Ctx) error {
	contacts, err := h.Usecase.ListContacts(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list contacts: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{"contacts": contacts}, "")
}
