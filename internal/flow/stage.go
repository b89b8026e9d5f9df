// Package flow holds the booking flow state machine: the stages a visitor moves through,
// the pages bound to them and the preconditions every page checks before it renders.
package flow

import (
	"context"

	"pawconnect/internal/domain"
)

type Stage int

const (
	StageNoDraft Stage = iota
	StagePetChosen
	StagePlanChosen
	StageScheduled
	StageChecklistDone
	StageReviewed
)

var stageNames = [...]string{
	StageNoDraft:       "no_draft",
	StagePetChosen:     "pet_chosen",
	StagePlanChosen:    "plan_chosen",
	StageScheduled:     "scheduled",
	StageChecklistDone: "checklist_done",
	StageReviewed:      "reviewed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// State is what the flow needs to know about a session.
type State struct {
	User    *domain.User
	Current *domain.CurrentBooking
	// Reviewed is set when a review exists for the current booking.
	Reviewed bool
}

func (s State) HasUser() bool  { return s.User != nil }
func (s State) HasDraft() bool { return s.Current != nil }

func (s State) HasPlan() bool {
	return s.Current != nil && s.Current.SubscriptionType() != ""
}

func (s State) HasScheduledBooking() bool {
	return s.Current != nil && s.Current.IsScheduled()
}

func (s State) ChecklistCompleted() bool {
	return s.Current != nil && s.Current.ChecklistCompleted()
}

// Stage derives how far along the flow the session is.
func (s State) Stage() Stage {
	switch {
	case !s.HasDraft():
		return StageNoDraft
	case s.ChecklistCompleted() && s.Reviewed:
		return StageReviewed
	case s.ChecklistCompleted():
		return StageChecklistDone
	case s.HasScheduledBooking():
		return StageScheduled
	case s.HasPlan():
		return StagePlanChosen
	default:
		return StagePetChosen
	}
}

// StateSource is the part of the persistence gateway the page rules read.
type StateSource interface {
	GetUser(ctx context.Context) (*domain.User, error)
	GetCurrentBooking(ctx context.Context) (*domain.CurrentBooking, error)
}

// StageSource also reads reviews, which only the last stage depends on.
type StageSource interface {
	StateSource
	GetReviews(ctx context.Context) ([]domain.Review, error)
}

// LoadState reads the user and current booking slots, all that Rules consult. Reviewed is
// left false; use LoadStage when the reviewed stage matters.
func LoadState(ctx context.Context, src StateSource) (State, error) {
	user, err := src.GetUser(ctx)
	if err != nil {
		return State{}, err
	}
	cur, err := src.GetCurrentBooking(ctx)
	if err != nil {
		return State{}, err
	}
	return State{User: user, Current: cur}, nil
}

// LoadStage is LoadState plus the reviews lookup that sets Reviewed for a scheduled booking.
func LoadStage(ctx context.Context, src StageSource) (State, error) {
	st, err := LoadState(ctx, src)
	if err != nil || !st.HasScheduledBooking() {
		return st, err
	}

	b, _ := st.Current.Booking()
	reviews, err := src.GetReviews(ctx)
	if err != nil {
		return State{}, err
	}
	for _, r := range reviews {
		if r.BookingID == b.ID {
			st.Reviewed = true
			break
		}
	}
	return st, nil
}
