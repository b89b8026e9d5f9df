package subscription

import (
	"context"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type CurrentBookingStore interface {
	flow.StateSource
	SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error
}
