package flow

import "fmt"

// Precondition is one entry check of a page. When Holds is false the visitor is sent to
// Fallback.
type Precondition struct {
	Name     string
	Holds    func(State) bool
	Fallback Page
}

// Rules lists, per page, the preconditions in the order they are checked. The first one
// that fails decides the redirect, so the order encodes the "nearest satisfied stage".
var Rules = map[Page][]Precondition{
	PageDashboard: {
		{Name: "user logged in", Holds: State.HasUser, Fallback: PageLogin},
	},
	PagePlan: {
		{Name: "draft exists", Holds: State.HasDraft, Fallback: PageCatalog},
	},
	PageSchedule: {
		{Name: "draft exists", Holds: State.HasDraft, Fallback: PageCatalog},
		{Name: "plan selected", Holds: State.HasPlan, Fallback: PagePlan},
	},
	PageChecklist: {
		{Name: "booking scheduled", Holds: State.HasScheduledBooking, Fallback: PageCatalog},
	},
	PageReview: {
		{Name: "booking scheduled", Holds: State.HasScheduledBooking, Fallback: PageCatalog},
		{Name: "checklist completed", Holds: State.ChecklistCompleted, Fallback: PageChecklist},
	},
}

// PreconditionError reports a page that cannot be entered in the current state.
type PreconditionError struct {
	Page     Page
	Fallback Page
	Reason   string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition %q not met, redirect to %s", e.Page, e.Reason, e.Fallback)
}

// Check runs the page's preconditions against st and returns the first failure.
func Check(page Page, st State) *PreconditionError {
	for _, pc := range Rules[page] {
		if !pc.Holds(st) {
			return &PreconditionError{Page: page, Fallback: pc.Fallback, Reason: pc.Name}
		}
	}
	return nil
}
