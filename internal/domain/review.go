package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	UserID    string    `json:"userId" gorm:"type:varchar(64);not null"`
	PetID     string    `json:"petId" gorm:"type:varchar(64);not null;index"`
	PetName   string    `json:"petName" gorm:"-"`
	BookingID string    `json:"bookingId" gorm:"type:varchar(64);not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Feedback  string    `json:"feedback" gorm:"type:text;not null"`
	Username  string    `json:"username" gorm:"-"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`
}
