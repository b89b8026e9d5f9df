package subscription

import "pawconnect/internal/domain"

type Plan struct {
	Type     domain.SubscriptionType `json:"type"`
	Title    string                  `json:"title"`
	Price    string                  `json:"price"`
	Duration string                  `json:"duration"`
	Features []string                `json:"features"`
	Popular  bool                    `json:"popular,omitempty"`
}

var Plans = []Plan{
	{
		Type:     domain.SubscriptionHourly,
		Title:    "Hourly",
		Price:    "$15",
		Duration: "per hour",
		Features: []string{
			"Perfect for quick visits",
			"Flexible scheduling",
			"1-hour minimum",
			"Same-day booking available",
		},
	},
	{
		Type:     domain.SubscriptionDaily,
		Title:    "Daily",
		Price:    "$75",
		Duration: "per day",
		Features: []string{
			"Full day care (8 hours)",
			"Multiple play sessions",
			"Photo updates",
			"Feeding & medications",
		},
		Popular: true,
	},
	{
		Type:     domain.SubscriptionWeekly,
		Title:    "Weekly",
		Price:    "$450",
		Duration: "per week",
		Features: []string{
			"Best value for long trips",
			"7 days of care",
			"Daily updates & photos",
			"Priority booking",
		},
	},
}
