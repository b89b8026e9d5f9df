// Package storage is the persistence gateway: five JSON slots per session on top of a
// key-value store.
//
// Reads of a missing slot return the empty value (nil singleton, empty collection). Writes
// overwrite the whole slot. AddBooking, UpdateBooking and AddReview read the collection,
// change it and write it back without any lock, so two interleaved calls on the same session
// keep only the last writer's version.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"pawconnect/internal/domain"
	"pawconnect/internal/repository"
)

// Slot names. They match the keys the browser client used so stored data stays readable.
const (
	SlotUser           = "pawconnect_user"
	SlotPets           = "pawconnect_pets"
	SlotBookings       = "pawconnect_bookings"
	SlotCurrentBooking = "pawconnect_current_booking"
	SlotReviews        = "pawconnect_reviews"
)

var ErrCorrupted = errors.New("stored value is corrupted")

// Provider hands out gateways bound to one namespace (a session id) of a shared store.
type Provider struct {
	store repository.KVStore
}

func NewProvider(store repository.KVStore) *Provider {
	return &Provider{store: store}
}

func (p *Provider) For(namespace string) *Gateway {
	return &Gateway{store: p.store, prefix: "session:" + namespace + ":"}
}

type Gateway struct {
	store  repository.KVStore
	prefix string
}

func (g *Gateway) key(slot string) string { return g.prefix + slot }

// read decodes a slot into dst and reports whether the slot existed.
func (g *Gateway) read(ctx context.Context, slot string, dst any) (bool, error) {
	raw, err := g.store.Get(ctx, g.key(slot))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", slot, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupted, slot, err)
	}
	return true, nil
}

func (g *Gateway) write(ctx context.Context, slot string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", slot, err)
	}
	if err := g.store.Set(ctx, g.key(slot), raw); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}

func (g *Gateway) remove(ctx context.Context, slot string) error {
	if err := g.store.Delete(ctx, g.key(slot)); err != nil {
		return fmt.Errorf("delete %s: %w", slot, err)
	}
	return nil
}

/* ---------- USER ---------- */

func (g *Gateway) GetUser(ctx context.Context) (*domain.User, error) {
	var u *domain.User
	if _, err := g.read(ctx, SlotUser, &u); err != nil {
		return nil, err
	}
	return u, nil
}

func (g *Gateway) SetUser(ctx context.Context, u domain.User) error {
	return g.write(ctx, SlotUser, u)
}

func (g *Gateway) ClearUser(ctx context.Context) error {
	return g.remove(ctx, SlotUser)
}

/* ---------- PETS ---------- */

func (g *Gateway) GetPets(ctx context.Context) ([]domain.Pet, error) {
	pets := []domain.Pet{}
	if _, err := g.read(ctx, SlotPets, &pets); err != nil {
		return nil, err
	}
	return nonNil(pets), nil
}

func (g *Gateway) SetPets(ctx context.Context, pets []domain.Pet) error {
	return g.write(ctx, SlotPets, nonNil(pets))
}

// GetPetByID returns nil when no pet has the id.
func (g *Gateway) GetPetByID(ctx context.Context, id string) (*domain.Pet, error) {
	pets, err := g.GetPets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pets {
		if pets[i].ID == id {
			return &pets[i], nil
		}
	}
	return nil, nil
}

/* ---------- BOOKINGS ---------- */

func (g *Gateway) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	if _, err := g.read(ctx, SlotBookings, &bookings); err != nil {
		return nil, err
	}
	return nonNil(bookings), nil
}

func (g *Gateway) SetBookings(ctx context.Context, bookings []domain.Booking) error {
	return g.write(ctx, SlotBookings, nonNil(bookings))
}

func (g *Gateway) AddBooking(ctx context.Context, b domain.Booking) error {
	bookings, err := g.GetBookings(ctx)
	if err != nil {
		return err
	}
	return g.SetBookings(ctx, append(bookings, b))
}

// UpdateBooking merges patch into the booking with the given id. An unknown id rewrites the
// list unchanged.
func (g *Gateway) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) error {
	bookings, err := g.GetBookings(ctx)
	if err != nil {
		return err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i] = patch.Apply(bookings[i])
		}
	}
	return g.SetBookings(ctx, bookings)
}

/* ---------- CURRENT BOOKING ---------- */

func (g *Gateway) GetCurrentBooking(ctx context.Context) (*domain.CurrentBooking, error) {
	var c domain.CurrentBooking
	ok, err := g.read(ctx, SlotCurrentBooking, &c)
	if err != nil || !ok || c.IsZero() {
		return nil, err
	}
	return &c, nil
}

func (g *Gateway) SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error {
	return g.write(ctx, SlotCurrentBooking, c)
}

func (g *Gateway) ClearCurrentBooking(ctx context.Context) error {
	return g.remove(ctx, SlotCurrentBooking)
}

/* ---------- REVIEWS ---------- */

func (g *Gateway) GetReviews(ctx context.Context) ([]domain.Review, error) {
	reviews := []domain.Review{}
	if _, err := g.read(ctx, SlotReviews, &reviews); err != nil {
		return nil, err
	}
	return nonNil(reviews), nil
}

func (g *Gateway) SetReviews(ctx context.Context, reviews []domain.Review) error {
	return g.write(ctx, SlotReviews, nonNil(reviews))
}

func (g *Gateway) AddReview(ctx context.Context, r domain.Review) error {
	reviews, err := g.GetReviews(ctx)
	if err != nil {
		return err
	}
	return g.SetReviews(ctx, append(reviews, r))
}

func (g *Gateway) GetReviewsByPetID(ctx context.Context, petID string) ([]domain.Review, error) {
	reviews, err := g.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(reviews))
	for _, r := range reviews {
		if r.PetID == petID {
			out = append(out, r)
		}
	}
	return out, nil
}

// a stored JSON null decodes to a nil slice; collections are never nil to callers.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
