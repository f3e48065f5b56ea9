package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"wirpackens-service/internal/module/booking/models/entity"
	"wirpackens-service/internal/pkg/errors"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type repositories struct {
	db  *sqlx.DB
	log *otelzap.Logger
	now func() time.Time
}

func New(db *sqlx.DB, log *otelzap.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
		now: time.Now,
	}
}

const bookingColumns = `id, price_calculation_id, customer_name, customer_email, customer_phone,
	service_type, appointment_date, appointment_time, current_address, new_address,
	special_requests, total_price, deposit_amount, payment_status, stripe_payment_intent_id,
	stripe_session_id, booking_status, created_at, updated_at`

// InsertBooking implements Repositories.
func (r *repositories) InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	query := `INSERT INTO bookings (price_calculation_id, customer_name, customer_email, customer_phone,
		service_type, appointment_date, appointment_time, current_address, new_address,
		special_requests, total_price, deposit_amount, payment_status, booking_status)
		VALUES (:price_calculation_id, :customer_name, :customer_email, :customer_phone,
		:service_type, :appointment_date, :appointment_time, :current_address, :new_address,
		:special_requests, :total_price, :deposit_amount, :payment_status, :booking_status)
		RETURNING id, created_at, updated_at`

	rows, err := r.db.NamedQueryContext(ctx, query, booking)
	if err != nil {
		r.log.Ctx(ctx).Error("insert booking", zap.Error(err))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}
	defer rows.Close()

	if !rows.Next() {
		r.log.Ctx(ctx).Error("insert booking returned no row", zap.Error(rows.Err()))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}
	if err := rows.Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt); err != nil {
		r.log.Ctx(ctx).Error("scan inserted booking", zap.Error(err))
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}
	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, id int64) (entity.Booking, bool, error) {
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, false, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error("find booking", zap.Int64("booking_id", id), zap.Error(err))
		return entity.Booking{}, false, errors.InternalServerError("error find booking by id")
	}
	return booking, true, nil
}

// UpdateBooking implements Repositories. Unset fields keep their value.
func (r *repositories) UpdateBooking(ctx context.Context, id int64, upd entity.BookingUpdate) (entity.Booking, bool, error) {
	query := `UPDATE bookings SET
		payment_status = COALESCE($2, payment_status),
		booking_status = COALESCE($3, booking_status),
		stripe_payment_intent_id = COALESCE($4, stripe_payment_intent_id),
		stripe_session_id = COALESCE($5, stripe_session_id),
		updated_at = $6
		WHERE id = $1
		RETURNING ` + bookingColumns

	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, id,
		upd.PaymentStatus, upd.BookingStatus, upd.StripePaymentIntentID, upd.StripeSessionID, r.now())
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Booking{}, false, nil
	}
	if err != nil {
		r.log.Ctx(ctx).Error("update booking", zap.Int64("booking_id", id), zap.Error(err))
		return entity.Booking{}, false, errors.InternalServerError("error update booking")
	}
	return booking, true, nil
}

// ListBookings implements Repositories.
func (r *repositories) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		r.log.Ctx(ctx).Error("list bookings", zap.Error(err))
		return nil, errors.InternalServerError("error list bookings")
	}
	return bookings, nil
}
