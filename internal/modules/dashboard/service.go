package dashboard

import (
	"context"
	"fmt"

	"pawconnect/internal/flow"
)

var Stats = []Stat{
	{Label: "Available Pets", Value: "50+"},
	{Label: "Happy Owners", Value: "1,200+"},
	{Label: "Trusted Companions", Value: "300+"},
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) Build(ctx context.Context, store Store) (*Response, error) {
	u, err := store.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &flow.PreconditionError{Page: flow.PageDashboard, Fallback: flow.PageLogin, Reason: "user logged in"}
	}
	bookings, err := store.GetBookings(ctx)
	if err != nil {
		return nil, err
	}

	res := &Response{
		Welcome:      fmt.Sprintf("Welcome back, %s", u.Username),
		Username:     u.Username,
		Role:         u.Role,
		Stats:        Stats,
		BookingCount: len(bookings),
	}

	bookingsAction := QuickAction{Title: "Total Bookings", Description: "View and manage your bookings", Path: "/bookings"}
	if len(bookings) == 0 {
		bookingsAction.Path = flow.PageCatalog.Path()
	} else {
		res.BookingSummary = fmt.Sprintf("Total %d booking(s) Today", len(bookings))
	}
	res.QuickActions = []QuickAction{
		{Title: "Browse Pets", Description: "Find your perfect pet companion", Path: flow.PageCatalog.Path()},
		bookingsAction,
		{Title: "Safety Guide", Description: "Learn about pet care safety", Path: flow.PageChecklist.Path()},
	}
	return res, nil
}
