package entity

import (
	"database/sql"
	"time"
)

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"

	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// DefaultDeposit is 200 EUR in cents.
const DefaultDeposit int64 = 20000

type Booking struct {
	ID                    int64          `db:"id"`
	PriceCalculationID    sql.NullInt64  `db:"price_calculation_id"`
	CustomerName          string         `db:"customer_name"`
	CustomerEmail         string         `db:"customer_email"`
	CustomerPhone         string         `db:"customer_phone"`
	ServiceType           string         `db:"service_type"`
	AppointmentDate       time.Time      `db:"appointment_date"`
	AppointmentTime       string         `db:"appointment_time"`
	CurrentAddress        string         `db:"current_address"`
	NewAddress            sql.NullString `db:"new_address"`
	SpecialRequests       sql.NullString `db:"special_requests"`
	TotalPrice            int64          `db:"total_price"`
	DepositAmount         int64          `db:"deposit_amount"`
	PaymentStatus         string         `db:"payment_status"`
	StripePaymentIntentID sql.NullString `db:"stripe_payment_intent_id"`
	StripeSessionID       sql.NullString `db:"stripe_session_id"`
	BookingStatus         string         `db:"booking_status"`
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
}

func (b Booking) RecordID() int64            { return b.ID }
func (b Booking) RecordCreatedAt() time.Time { return b.CreatedAt }

// BookingUpdate is a partial update; nil fields are left unchanged.
type BookingUpdate struct {
	PaymentStatus         *string
	BookingStatus         *string
	StripePaymentIntentID *string
	StripeSessionID       *string
}

// Apply merges the set fields into b.
func (u BookingUpdate) Apply(b *Booking) {
	if u.PaymentStatus != nil {
		b.PaymentStatus = *u.PaymentStatus
	}
	if u.BookingStatus != nil {
		b.BookingStatus = *u.BookingStatus
	}
	if u.StripePaymentIntentID != nil {
		b.StripePaymentIntentID = sql.NullString{String: *u.StripePaymentIntentID, Valid: true}
	}
	if u.StripeSessionID != nil {
		b.StripeSessionID = sql.NullString{String: *u.StripeSessionID, Valid: true}
	}
}
