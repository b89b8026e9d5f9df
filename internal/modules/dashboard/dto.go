package dashboard

import "pawconnect/internal/domain"

type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type QuickAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

type Response struct {
	Welcome      string          `json:"welcome"`
	Username     string          `json:"username"`
	Role         domain.UserRole `json:"role"`
	Stats        []Stat          `json:"stats"`
	QuickActions []QuickAction   `json:"quick_actions"`
	BookingCount int             `json:"booking_count"`
	// BookingSummary is empty when there are no bookings yet.
	BookingSummary string `json:"booking_summary,omitempty"`
}
