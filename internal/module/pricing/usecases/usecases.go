package usecases

import (
	"context"

	"wirpackens-service/internal/module/pricing/calculator"
	"wirpackens-service/internal/module/pricing/models/entity"
	"wirpackens-service/internal/module/pricing/models/request"
	"wirpackens-service/internal/module/pricing/models/response"
	"wirpackens-service/internal/module/pricing/repositories"
	"wirpackens-service/internal/pkg/mailer"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Notifier interface {
	NotifyPriceCalculation(ctx context.Context, d mailer.PriceCalculationMail) bool
}

type usecase struct {
	repo     repositories.Repositories
	notifier Notifier
	log      *otelzap.Logger
}

type Usecase interface {
	Estimate(ctx context.Context, payload *request.Estimate) response.Estimate
	CreatePriceCalculation(ctx context.Context, payload *request.PriceCalculation) (response.CreatedPriceCalculation, error)
	ListPriceCalculations(ctx context.Context) ([]response.PriceCalculation, error)
}

func New(repo repositories.Repositories, notifier Notifier, log *otelzap.Logger) Usecase {
	return &usecase{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

func (u *usecase) Estimate(ctx context.Context, payload *request.Estimate) response.Estimate {
	in := payload.Input()
	b := calculator.Calculate(in)

	extras := calculator.Extras(in)
	if extras == nil {
		extras = []string{}
	}
	return response.Estimate{
		ServiceType:     payload.ServiceType,
		ServiceLabel:    calculator.Label(payload.ServiceType),
		BasePrice:       b.BasePrice,
		AdditionalPrice: b.AdditionalPrice,
		TotalPrice:      b.TotalPrice,
		Extras:          extras,
	}
}

// CreatePriceCalculation prices the submitted options, stores the quote and
// tells the team. The modifier flags are taken as submitted.
func (u *usecase) CreatePriceCalculation(ctx context.Context, payload *request.PriceCalculation) (response.CreatedPriceCalculation, error) {
	in := payload.Input()
	b := calculator.Calculate(in)

	calc, err := u.repo.InsertPriceCalculation(ctx, entity.PriceCalculation{
		ServiceType:     payload.ServiceType,
		RoomCount:       payload.RoomCount,
		SquareMeters:    payload.SquareMeters,
		FloorCount:      payload.FloorCount,
		ExpressService:  payload.ExpressService,
		WeekendService:  payload.WeekendService,
		DisposalService: payload.DisposalService,
		BasePrice:       b.BasePrice,
		AdditionalPrice: b.AdditionalPrice,
		TotalPrice:      b.TotalPrice,
	})
	if err != nil {
		return response.CreatedPriceCalculation{}, err
	}

	emailSent := u.notifier.NotifyPriceCalculation(ctx, mailer.PriceCalculationMail{
		ServiceLabel:    calculator.Label(calc.ServiceType),
		RoomCount:       calc.RoomCount,
		SquareMeters:    calc.SquareMeters,
		FloorCount:      calc.FloorCount,
		Extras:          calculator.Extras(in),
		BasePrice:       calc.BasePrice,
		AdditionalPrice: calc.AdditionalPrice,
		TotalPrice:      calc.TotalPrice,
	})
	if !emailSent {
		u.log.Ctx(ctx).Warn("price calculation stored but email not sent", zap.Int64("calculation_id", calc.ID))
	}

	return response.CreatedPriceCalculation{
		Calculation: response.NewPriceCalculation(calc),
		EmailSent:   emailSent,
	}, nil
}

func (u *usecase) ListPriceCalculations(ctx context.Context) ([]response.PriceCalculation, error) {
	calcs, err := u.repo.ListPriceCalculations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.PriceCalculation, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, response.NewPriceCalculation(c))
	}
	return out, nil
}
