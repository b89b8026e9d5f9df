package catalog

import (
	"context"

	"pawconnect/internal/domain"
)

type Service struct {
	defaults []domain.Pet
}

func NewService(defaults []domain.Pet) *Service {
	return &Service{defaults: defaults}
}

// List returns the session's pets, or a copy of the built-in catalog while the slot is
// empty. The defaults are not written back, so browsing alone leaves the session untouched.
func (s *Service) List(ctx context.Context, store PetStore) ([]domain.Pet, error) {
	pets, err := store.GetPets(ctx)
	if err != nil {
		return nil, err
	}
	if len(pets) > 0 {
		return pets, nil
	}
	return append([]domain.Pet(nil), s.defaults...), nil
}

func (s *Service) Get(ctx context.Context, store PetStore, id string) (*domain.Pet, error) {
	pets, err := s.List(ctx, store)
	if err != nil {
		return nil, err
	}
	for i := range pets {
		if pets[i].ID == id {
			return &pets[i], nil
		}
	}
	return nil, ErrPetNotFound
}

func (s *Service) Reviews(ctx context.Context, store PetStore, id string) ([]domain.Review, error) {
	if _, err := s.Get(ctx, store, id); err != nil {
		return nil, err
	}
	return store.GetReviewsByPetID(ctx, id)
}

// SelectedPetID is the pet of the current booking, or "" when there is none.
func (s *Service) SelectedPetID(ctx context.Context, store PetStore) (string, error) {
	cur, err := store.GetCurrentBooking(ctx)
	if err != nil || cur == nil {
		return "", err
	}
	return cur.PetID(), nil
}

// Book starts a new draft for the pet. Any current booking, draft or scheduled, is replaced.
func (s *Service) Book(ctx context.Context, store PetStore, id string) (domain.BookingDraft, error) {
	p, err := s.Get(ctx, store, id)
	if err != nil {
		return domain.BookingDraft{}, err
	}
	if !p.Available {
		return domain.BookingDraft{}, ErrPetUnavailable
	}

	draft := domain.BookingDraft{PetID: p.ID, PetName: p.Name, Breed: p.Breed}
	if err := store.SetCurrentBooking(ctx, domain.CurrentDraft(draft)); err != nil {
		return domain.BookingDraft{}, err
	}
	return draft, nil
}
