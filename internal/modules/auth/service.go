package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pawconnect/internal/domain"
	"pawconnect/internal/pkg/validator"
)

// Service logs visitors in and out. Nothing is checked against an account store: logging in
// records who the visitor says they are and replaces the session's previous user.
type Service struct {
	newID func() string
}

func NewService() *Service {
	return &Service{newID: uuid.NewString}
}

func (s *Service) Login(ctx context.Context, users UserStore, req LoginRequest) (*domain.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	if strings.TrimSpace(req.Password) == "" {
		req.Password = ""
	}
	if req.Role == "" {
		req.Role = domain.RoleOwner
	}
	if fields := validator.Validate(req); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, fields)
	}

	u := domain.User{
		ID:       s.newID(),
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	}
	if err := users.SetUser(ctx, u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) Logout(ctx context.Context, users UserStore) error {
	return users.ClearUser(ctx)
}

func (s *Service) Current(ctx context.Context, users UserStore) (*domain.User, error) {
	u, err := users.GetUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotLoggedIn
	}
	return u, nil
}
