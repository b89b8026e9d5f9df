package booking

import "pawconnect/internal/domain"

// TimeSlots are the times the schedule page offers.
var TimeSlots = []string{
	"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM",
	"05:00 PM", "06:00 PM",
}

type CreateBookingRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type PageResponse struct {
	Current   *domain.CurrentBooking `json:"current_booking"`
	TimeSlots []string               `json:"time_slots"`
}

type CreateBookingResponse struct {
	Booking domain.Booking `json:"booking"`
	Next    string         `json:"next"`
}

type ListResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int              `json:"total"`
}
