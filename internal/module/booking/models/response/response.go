package response

import (
	"database/sql"
	"time"

	"wirpackens-service/internal/module/booking/models/entity"
)

type Booking struct {
	ID                    int64     `json:"id"`
	PriceCalculationID    *int64    `json:"priceCalculationId"`
	CustomerName          string    `json:"customerName"`
	CustomerEmail         string    `json:"customerEmail"`
	CustomerPhone         string    `json:"customerPhone"`
	ServiceType           string    `json:"serviceType"`
	AppointmentDate       time.Time `json:"appointmentDate"`
	AppointmentTime       string    `json:"appointmentTime"`
	CurrentAddress        string    `json:"currentAddress"`
	NewAddress            *string   `json:"newAddress"`
	SpecialRequests       *string   `json:"specialRequests"`
	TotalPrice            int64     `json:"totalPrice"`
	DepositAmount         int64     `json:"depositAmount"`
	PaymentStatus         string    `json:"paymentStatus"`
	StripePaymentIntentID *string   `json:"stripePaymentIntentId"`
	BookingStatus         string    `json:"bookingStatus"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func NewBooking(e entity.Booking) Booking {
	b := Booking{
		ID:                    e.ID,
		CustomerName:          e.CustomerName,
		CustomerEmail:         e.CustomerEmail,
		CustomerPhone:         e.CustomerPhone,
		ServiceType:           e.ServiceType,
		AppointmentDate:       e.AppointmentDate,
		AppointmentTime:       e.AppointmentTime,
		CurrentAddress:        e.CurrentAddress,
		NewAddress:            nullString(e.NewAddress),
		SpecialRequests:       nullString(e.SpecialRequests),
		TotalPrice:            e.TotalPrice,
		DepositAmount:         e.DepositAmount,
		PaymentStatus:         e.PaymentStatus,
		StripePaymentIntentID: nullString(e.StripePaymentIntentID),
		BookingStatus:         e.BookingStatus,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
	if e.PriceCalculationID.Valid {
		id := e.PriceCalculationID.Int64
		b.PriceCalculationID = &id
	}
	return b
}

type CreatedBooking struct {
	Booking    Booking
	PaymentURL string
	SessionID  string
}

type Session struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
	Status        string `json:"status"`
	AmountTotal   int64  `json:"amountTotal"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customerEmail"`
}

type BookingSession struct {
	Booking Booking
	Session Session
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
