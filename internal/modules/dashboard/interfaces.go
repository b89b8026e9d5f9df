package dashboard

import (
	"context"

	"pawconnect/internal/domain"
)

type Store interface {
	GetUser(ctx context.Context) (*domain.User, error)
	GetBookings(ctx context.Context) ([]domain.Booking, error)
}
