package checklist

import (
	"context"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type BookingStore interface {
	flow.StateSource
	SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error
	UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) error
}
