package subscription

import (
	"context"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Current returns the booking the plan page works on, or a precondition error when the
// session has not picked a pet.
func (s *Service) Current(ctx context.Context, store CurrentBookingStore) (*domain.CurrentBooking, error) {
	st, err := flow.LoadState(ctx, store)
	if err != nil {
		return nil, err
	}
	if perr := flow.Check(flow.PagePlan, st); perr != nil {
		return nil, perr
	}
	return st.Current, nil
}

// SelectPlan merges the plan into the current booking. A scheduled booking keeps its id and
// stays scheduled; only the current booking changes, the bookings list is left alone.
func (s *Service) SelectPlan(ctx context.Context, store CurrentBookingStore, plan domain.SubscriptionType) (domain.CurrentBooking, error) {
	if !plan.Valid() {
		return domain.CurrentBooking{}, ErrUnknownPlan
	}
	cur, err := s.Current(ctx, store)
	if err != nil {
		return domain.CurrentBooking{}, err
	}

	var next domain.CurrentBooking
	if b, ok := cur.Booking(); ok {
		b.SubscriptionType = plan
		next = domain.CurrentScheduled(b)
	} else {
		d, _ := cur.Draft()
		d.SubscriptionType = plan
		next = domain.CurrentDraft(d)
	}

	if err := store.SetCurrentBooking(ctx, next); err != nil {
		return domain.CurrentBooking{}, err
	}
	return next, nil
}
