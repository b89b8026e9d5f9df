package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
	"pawconnect/internal/pkg/validator"
)

// GuestUserID is recorded on bookings made without a logged-in user.
const GuestUserID = "guest"

type Service struct {
	newID func() string
	now   func() time.Time
}

func NewService() *Service {
	return &Service{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

func (s *Service) state(ctx context.Context, store BookingStore) (flow.State, error) {
	st, err := flow.LoadState(ctx, store)
	if err != nil {
		return flow.State{}, err
	}
	if perr := flow.Check(flow.PageSchedule, st); perr != nil {
		return flow.State{}, perr
	}
	return st, nil
}

// Current returns the booking the schedule page works on.
func (s *Service) Current(ctx context.Context, store BookingStore) (*domain.CurrentBooking, error) {
	st, err := s.state(ctx, store)
	if err != nil {
		return nil, err
	}
	return st.Current, nil
}

// Create turns the current draft into a booking, appends it to the bookings list and makes
// it the current booking. The two writes are not atomic.
func (s *Service) Create(ctx context.Context, store BookingStore, req CreateBookingRequest) (*domain.Booking, error) {
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if fields := validator.Validate(req); fields != nil {
		missing := make([]string, 0, len(fields))
		for f := range fields {
			missing = append(missing, strings.ToLower(f))
		}
		sort.Strings(missing)
		return nil, &MissingFieldsError{Fields: missing}
	}

	st, err := s.state(ctx, store)
	if err != nil {
		return nil, err
	}

	b := domain.Booking{
		ID:                 s.newID(),
		UserID:             GuestUserID,
		SubscriptionType:   st.Current.SubscriptionType(),
		Date:               req.Date,
		Time:               req.Time,
		ChecklistCompleted: false,
		CreatedAt:          s.now().UTC(),
	}
	if st.User != nil && st.User.ID != "" {
		b.UserID = st.User.ID
	}
	if d, ok := st.Current.Draft(); ok {
		b.PetID, b.PetName, b.Breed = d.PetID, d.PetName, d.Breed
	} else if prev, ok := st.Current.Booking(); ok {
		b.PetID, b.PetName, b.Breed = prev.PetID, prev.PetName, prev.Breed
	}

	if err := store.AddBooking(ctx, b); err != nil {
		return nil, fmt.Errorf("add booking: %w", err)
	}
	if err := store.SetCurrentBooking(ctx, domain.CurrentScheduled(b)); err != nil {
		return nil, fmt.Errorf("set current booking: %w", err)
	}
	return &b, nil
}

func (s *Service) List(ctx context.Context, store BookingStore) ([]domain.Booking, error) {
	return store.GetBookings(ctx)
}
