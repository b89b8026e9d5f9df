package domain

import "time"

type SubscriptionType string

const (
	SubscriptionHourly SubscriptionType = "hourly"
	SubscriptionDaily  SubscriptionType = "daily"
	SubscriptionWeekly SubscriptionType = "weekly"
)

func (s SubscriptionType) Valid() bool {
	switch s {
	case SubscriptionHourly, SubscriptionDaily, SubscriptionWeekly:
		return true
	}
	return false
}

// BookingDraft is the booking being assembled across the catalog, plan and schedule pages.
type BookingDraft struct {
	PetID            string           `json:"petId"`
	PetName          string           `json:"petName"`
	Breed            string           `json:"breed"`
	SubscriptionType SubscriptionType `json:"subscriptionType,omitempty"`
	Date             string           `json:"date,omitempty"`
	Time             string           `json:"time,omitempty"`
}

// Booking is a scheduled booking. Only ChecklistCompleted changes after creation.
type Booking struct {
	ID                 string           `json:"id" gorm:"type:varchar(64);primaryKey"`
	UserID             string           `json:"userId" gorm:"type:varchar(64);not null"`
	PetID              string           `json:"petId" gorm:"type:varchar(64);not null"`
	PetName            string           `json:"petName" gorm:"type:varchar(255);not null"`
	Breed              string           `json:"breed" gorm:"type:text;not null"`
	SubscriptionType   SubscriptionType `json:"subscriptionType" gorm:"type:text;not null"`
	Date               string           `json:"date" gorm:"type:text;not null"`
	Time               string           `json:"time" gorm:"type:text;not null"`
	ChecklistCompleted bool             `json:"checklistCompleted" gorm:"not null;default:false"`
	CreatedAt          time.Time        `json:"createdAt" gorm:"not null;autoCreateTime"`
}

// BookingPatch carries the fields UpdateBooking merges into a stored booking.
// Nil fields are left untouched.
type BookingPatch struct {
	ChecklistCompleted *bool
}

func (p BookingPatch) Apply(b Booking) Booking {
	if p.ChecklistCompleted != nil {
		b.ChecklistCompleted = *p.ChecklistCompleted
	}
	return b
}
