package repositories

import (
	"context"

	"wirpackens-service/internal/module/pricing/models/entity"
)

type Repositories interface {
	InsertPriceCalculation(ctx context.Context, calc entity.PriceCalculation) (entity.PriceCalculation, error)
	FindPriceCalculationByID(ctx context.Context, id int64) (entity.PriceCalculation, bool, error)
	ListPriceCalculations(ctx context.Context) ([]entity.PriceCalculation, error)
}
