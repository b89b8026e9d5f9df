package subscription

import "pawconnect/internal/domain"

type SelectPlanRequest struct {
	SubscriptionType domain.SubscriptionType `json:"subscription_type" binding:"required"`
}

type PageResponse struct {
	Plans   []Plan                 `json:"plans"`
	Current *domain.CurrentBooking `json:"current_booking"`
}

type SelectPlanResponse struct {
	Current domain.CurrentBooking `json:"current_booking"`
	Next    string                `json:"next"`
}
