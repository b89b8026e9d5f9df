package review

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
	"pawconnect/internal/pkg/validator"
)

const (
	// TestimonialLimit is how many recent reviews the review page shows.
	TestimonialLimit = 6

	AnonymousUsername = "Anonymous"
	GuestUserID       = "guest"
)

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

func (s *Service) state(ctx context.Context, store ReviewStore) (flow.State, domain.Booking, error) {
	st, err := flow.LoadStage(ctx, store)
	if err != nil {
		return flow.State{}, domain.Booking{}, err
	}
	if perr := flow.Check(flow.PageReview, st); perr != nil {
		return flow.State{}, domain.Booking{}, perr
	}
	b, _ := st.Current.Booking()
	return st, b, nil
}

// Booking returns the booking under review and whether it has been reviewed already.
func (s *Service) Booking(ctx context.Context, store ReviewStore) (domain.Booking, flow.Stage, error) {
	st, b, err := s.state(ctx, store)
	if err != nil {
		return domain.Booking{}, 0, err
	}
	return b, st.Stage(), nil
}

// Testimonials returns the most recent reviews, newest first.
func (s *Service) Testimonials(ctx context.Context, store ReviewStore) ([]domain.Review, error) {
	all, err := store.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > TestimonialLimit {
		all = all[len(all)-TestimonialLimit:]
	}
	out := make([]domain.Review, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

// Create appends a review of the current booking. A booking may be reviewed any number of
// times.
func (s *Service) Create(ctx context.Context, store ReviewStore, req CreateReviewRequest) (*domain.Review, error) {
	st, b, err := s.state(ctx, store)
	if err != nil {
		return nil, err
	}

	req.Feedback = strings.TrimSpace(req.Feedback)
	if fields := validator.Validate(req); fields != nil {
		if _, ok := fields["Rating"]; ok {
			return nil, ErrInvalidRating
		}
		return nil, ErrEmptyFeedback
	}

	r := domain.Review{
		ID:        s.newID(),
		UserID:    GuestUserID,
		PetID:     orDefault(b.PetID, "unknown"),
		PetName:   orDefault(b.PetName, "Unknown Pet"),
		BookingID: orDefault(b.ID, "unknown"),
		Rating:    req.Rating,
		Feedback:  req.Feedback,
		Username:  AnonymousUsername,
		CreatedAt: s.now().UTC(),
	}
	if st.User != nil {
		r.UserID = orDefault(st.User.ID, GuestUserID)
		r.Username = orDefault(st.User.Username, AnonymousUsername)
	}

	if err := store.AddReview(ctx, r); err != nil {
		return nil, err
	}
	return &r, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
