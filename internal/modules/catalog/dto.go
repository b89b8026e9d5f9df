package catalog

import "pawconnect/internal/domain"

type CatalogResponse struct {
	Pets []domain.Pet `json:"pets"`
	// SelectedPetID is the pet of the session's current booking, empty when there is none.
	SelectedPetID string `json:"selected_pet_id,omitempty"`
}

type BookResponse struct {
	Draft domain.BookingDraft `json:"draft"`
	Next  string              `json:"next"`
}
