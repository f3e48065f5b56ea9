package repositories

import (
	"context"

	"wirpackens-service/internal/module/booking/models/entity"
)

type Repositories interface {
	InsertBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, id int64) (entity.Booking, bool, error)
	// UpdateBooking merges upd into the stored booking and refreshes
	// updated_at. The bool is false when the booking does not exist.
	UpdateBooking(ctx context.Context, id int64, upd entity.BookingUpdate) (entity.Booking, bool, error)
	ListBookings(ctx context.Context) ([]entity.Booking, error)
}

// Locker serializes work on one key across goroutines or processes.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(context.Context) error, err error)
}

// EventTracker remembers which webhook events were already handled.
type EventTracker interface {
	// Claim returns false when eventID was claimed before.
	Claim(ctx context.Context, eventID string) (bool, error)
	// Release forgets a claim so a redelivery is processed again.
	Release(ctx context.Context, eventID string) error
}
