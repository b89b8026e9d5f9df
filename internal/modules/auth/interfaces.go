package auth

import (
	"context"

	"pawconnect/internal/domain"
)

// UserStore is the user slot of a session's gateway.
type UserStore interface {
	GetUser(ctx context.Context) (*domain.User, error)
	SetUser(ctx context.Context, u domain.User) error
	ClearUser(ctx context.Context) error
}
