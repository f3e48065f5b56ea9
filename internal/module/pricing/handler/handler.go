package handler

import (
	"fmt"

	"wirpackens-service/internal/module/pricing/models/request"
	"wirpackens-service/internal/module/pricing/usecases"
	"wirpackens-service/internal/pkg/errors"
	"wirpackens-service/internal/pkg/helpers"
	"wirpackens-service/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type PricingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *PricingHandler) CreatePriceCalculation(ctx *fiber.Ctx) error {
	var req request.PriceCalculation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Ungültige Anfrage"))
	}

	if err := h.Validator.Struct(req); err != nil {
		return helpers.RespError(ctx, h.Log, errors.Validation("Ungültige Eingabedaten", validation.Fields(err)))
	}

	resp, err := h.Usecase.CreatePriceCalculation(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create price calculation: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{
		"calculation": resp.Calculation,
		"emailSent":   resp.EmailSent,
	}, "")
}

func (h *PricingHandler) ListPriceCalculations(ctx *fiber.Ctx) error {
	calcs, err := h.Usecase.ListPriceCalculations(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list price calculations: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, fiber.Map{"calculations": calcs}, "")
}

func (h *PricingHandler) Estimate(ctx *fiber.Ctx) error {
	var req request.Estimate
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Ungültige Anfrage"))
	}

	estimate := h.Usecase.Estimate(ctx.UserContext(), &req)
	return helpers.RespSuccess(ctx, h.Log, fiber.Map{"estimate": estimate}, "")
}
