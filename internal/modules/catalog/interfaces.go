package catalog

import (
	"context"

	"pawconnect/internal/domain"
)

type PetStore interface {
	GetPets(ctx context.Context) ([]domain.Pet, error)
	GetReviewsByPetID(ctx context.Context, petID string) ([]domain.Review, error)
	GetCurrentBooking(ctx context.Context) (*domain.CurrentBooking, error)
	SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error
}
