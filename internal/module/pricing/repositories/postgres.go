package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"

	"wirpackens-service/internal/module/pricing/models/entity"
	"wirpackens-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const priceCalculationColumns = `id, service_type, room_count, square_meters, floor_count,
	express_service, weekend_service, disposal_service,
	base_price, additional_price, total_price, created_at`

// InsertPriceCalculation implements Repositories.
func (r *repositories) InsertPriceCalculation(ctx context.Context, calc entity.PriceCalculation) (entity.PriceCalculation, error) {
	query := `INSERT INTO price_calculations (service_type, room_count, square_meters, floor_count,
		express_service, weekend_service, disposal_service, base_price, additional_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		calc.ServiceType, calc.RoomCount, calc.SquareMeters, calc.FloorCount,
		calc.ExpressService, calc.WeekendService, calc.DisposalService,
		calc.BasePrice, calc.AdditionalPrice, calc.TotalPrice,
	).Scan(&calc.ID, &calc.CreatedAt)
	if err != nil {
		r.log.Ctx(ctx).Error("insert price calculation", zap.Error(err))
		return entity.PriceCalculation{}, errors.InternalServerError("error insert price calculation")
	}
	return calc, nil
}

// FindPriceCalculationByID implements Repositories.
func (r *repositories) FindPriceCalculationByID(ctx context.Context, id int64) (entity.PriceCalculation, bool, error) {
	var calc entity.PriceCalculation
	err := r.db.GetContext(ctx, &calc, `SELECT `+priceCalculationColumns+` FROM price_calculations WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.PriceCalculation{}, false, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error("find price calculation", zap.Int64("id", id), zap.Error(err))
		return entity.PriceCalculation{}, false, errors.InternalServerError("error find price calculation")
	}
	return calc, true, nil
}

// ListPriceCalculations implements Repositories.
func (r *repositories) ListPriceCalculations(ctx context.Context) ([]entity.PriceCalculation, error) {
	calcs := []entity.PriceCalculation{}
	err := r.db.SelectContext(ctx, &calcs, `SELECT `+priceCalculationColumns+` FROM price_calculations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Ctx(ctx).Error("list price calculations", zap.Error(err))
		return nil, errors.InternalServerError("error list price calculations")
	}
	return calcs, nil
}
