package checklist

import (
	"context"
	"fmt"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
)

type Service struct {
	items []flow.ChecklistItem
}

func NewService(items []flow.ChecklistItem) *Service {
	return &Service{items: items}
}

func (s *Service) Items() []flow.ChecklistItem {
	return s.items
}

func (s *Service) booking(ctx context.Context, store BookingStore) (domain.Booking, error) {
	st, err := flow.LoadState(ctx, store)
	if err != nil {
		return domain.Booking{}, err
	}
	if perr := flow.Check(flow.PageChecklist, st); perr != nil {
		return domain.Booking{}, perr
	}
	b, _ := st.Current.Booking()
	return b, nil
}

// Open returns the scheduled booking and a checklist for it. A booking that already passed
// the checklist comes back with every item ticked.
func (s *Service) Open(ctx context.Context, store BookingStore) (domain.Booking, *flow.Checklist, error) {
	b, err := s.booking(ctx, store)
	if err != nil {
		return domain.Booking{}, nil, err
	}
	cl := flow.NewChecklist(s.items)
	if b.ChecklistCompleted {
		for _, it := range s.items {
			cl.Toggle(it.ID)
		}
	}
	return b, cl, nil
}

// Progress evaluates a set of ticked items without storing anything.
func (s *Service) Progress(checked []string) *flow.Checklist {
	return flow.Restore(s.items, checked)
}

// Complete marks the current booking's checklist done. The current booking is written first,
// then the same booking in the bookings list. A failure of the second write leaves the first
// in place.
func (s *Service) Complete(ctx context.Context, store BookingStore, checked []string) (domain.Booking, error) {
	b, err := s.booking(ctx, store)
	if err != nil {
		return domain.Booking{}, err
	}
	if cl := s.Progress(checked); !cl.IsComplete() {
		return domain.Booking{}, fmt.Errorf("%w: %d of %d items checked", ErrIncomplete, cl.CheckedCount(), cl.Total())
	}

	done := true
	b = domain.BookingPatch{ChecklistCompleted: &done}.Apply(b)
	if err := store.SetCurrentBooking(ctx, domain.CurrentScheduled(b)); err != nil {
		return domain.Booking{}, fmt.Errorf("set current booking: %w", err)
	}
	if err := store.UpdateBooking(ctx, b.ID, domain.BookingPatch{ChecklistCompleted: &done}); err != nil {
		return domain.Booking{}, fmt.Errorf("update booking %s: %w", b.ID, err)
	}
	return b, nil
}
