package booking

import (
	"context"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type BookingStore interface {
	flow.StateSource
	SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	AddBooking(ctx context.Context, b domain.Booking) error
}
