package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrEmptyCurrentBooking = errors.New("current booking holds neither a draft nor a booking")

// CurrentBooking is the booking the visitor is actively working on: either a draft that is
// still being filled in or a booking that has been scheduled. Exactly one side is set.
//
// It is stored as one flat JSON object; a stored object with an "id" is a scheduled booking.
type CurrentBooking struct {
	draft   *BookingDraft
	booking *Booking
}

func CurrentDraft(d BookingDraft) CurrentBooking {
	return CurrentBooking{draft: &d}
}

func CurrentScheduled(b Booking) CurrentBooking {
	return CurrentBooking{booking: &b}
}

func (c CurrentBooking) Draft() (BookingDraft, bool) {
	if c.draft == nil {
		return BookingDraft{}, false
	}
	return *c.draft, true
}

func (c CurrentBooking) Booking() (Booking, bool) {
	if c.booking == nil {
		return Booking{}, false
	}
	return *c.booking, true
}

func (c CurrentBooking) IsScheduled() bool { return c.booking != nil }

// IsZero reports whether neither a draft nor a booking is held, as after decoding null.
func (c CurrentBooking) IsZero() bool { return c.booking == nil && c.draft == nil }

func (c CurrentBooking) PetID() string {
	if c.booking != nil {
		return c.booking.PetID
	}
	if c.draft != nil {
		return c.draft.PetID
	}
	return ""
}

func (c CurrentBooking) PetName() string {
	if c.booking != nil {
		return c.booking.PetName
	}
	if c.draft != nil {
		return c.draft.PetName
	}
	return ""
}

func (c CurrentBooking) SubscriptionType() SubscriptionType {
	if c.booking != nil {
		return c.booking.SubscriptionType
	}
	if c.draft != nil {
		return c.draft.SubscriptionType
	}
	return ""
}

func (c CurrentBooking) ChecklistCompleted() bool {
	return c.booking != nil && c.booking.ChecklistCompleted
}

func (c CurrentBooking) MarshalJSON() ([]byte, error) {
	switch {
	case c.booking != nil:
		return json.Marshal(c.booking)
	case c.draft != nil:
		return json.Marshal(c.draft)
	}
	return nil, ErrEmptyCurrentBooking
}

func (c *CurrentBooking) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = CurrentBooking{}
		return nil
	}

	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if probe.ID != "" {
		var b Booking
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*c = CurrentScheduled(b)
		return nil
	}

	var d BookingDraft
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*c = CurrentDraft(d)
	return nil
}
