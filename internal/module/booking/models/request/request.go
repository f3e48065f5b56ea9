package request

import (
	"strings"
	"time"
)

// CreateBooking carries no payment or status fields: those are owned by the
// server and the payment webhook.
type CreateBooking struct {
	PriceCalculationID int64  `json:"priceCalculationId" validate:"omitempty,min=1"`
	CustomerName       string `json:"customerName" validate:"required"`
	CustomerEmail      string `json:"customerEmail" validate:"required,email"`
	CustomerPhone      string `json:"customerPhone" validate:"required"`
	ServiceType        string `json:"serviceType" validate:"required,oneof=household office moving messie"`
	AppointmentDate    string `json:"appointmentDate" validate:"required,appointment_date"`
	AppointmentTime    string `json:"appointmentTime" validate:"required,appointment_time"`
	CurrentAddress     string `json:"currentAddress" validate:"required"`
	NewAddress         string `json:"newAddress" validate:"required_if=ServiceType moving"`
	SpecialRequests    string `json:"specialRequests"`
	TotalPrice         int64  `json:"totalPrice" validate:"required,min=1"`
	DepositAmount      int64  `json:"depositAmount" validate:"min=0"`
}

// Normalize trims the text fields so blank input fails the required rules.
func (r *CreateBooking) Normalize() {
	for _, f := range []*string{
		&r.CustomerName,
		&r.CustomerEmail,
		&r.CustomerPhone,
		&r.ServiceType,
		&r.AppointmentDate,
		&r.AppointmentTime,
		&r.CurrentAddress,
		&r.NewAddress,
		&r.SpecialRequests,
	} {
		*f = strings.TrimSpace(*f)
	}
}

type BookingConfirmed struct {
	BookingID   int64     `json:"bookingId" validate:"required"`
	EventID     string    `json:"eventId"`
	SessionID   string    `json:"sessionId"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
