package repositories

import (
	"context"
	"time"

	"wirpackens-service/internal/module/pricing/models/entity"
	"wirpackens-service/internal/pkg/memstore"
)

type memoryRepositories struct {
	calculations *memstore.Collection[entity.PriceCalculation]
}

func NewMemory(store *memstore.Collection[entity.PriceCalculation]) Repositories {
	return &memoryRepositories{calculations: store}
}

func (r *memoryRepositories) InsertPriceCalculation(ctx context.Context, calc entity.PriceCalculation) (entity.PriceCalculation, error) {
	return r.calculations.Insert(func(id int64, now time.Time) entity.PriceCalculation {
		calc.ID = id
		calc.CreatedAt = now
		return calc
	}), nil
}

func (r *memoryRepositories) FindPriceCalculationByID(ctx context.Context, id int64) (entity.PriceCalculation, bool, error) {
	calc, ok := r.calculations.Get(id)
	return calc, ok, nil
}

func (r *memoryRepositories) ListPriceCalculations(ctx context.Context) ([]entity.PriceCalculation, error) {
	return r.calculations.List(), nil
}
