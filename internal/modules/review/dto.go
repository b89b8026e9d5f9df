package review

import "pawconnect/internal/domain"

type CreateReviewRequest struct {
	Rating   int    `json:"rating" validate:"min=1,max=5"`
	Feedback string `json:"feedback" validate:"required"`
}

// Form is the review form's state. After a submission it comes back cleared.
type Form struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

type PageResponse struct {
	Booking      domain.Booking  `json:"booking"`
	Stage        string          `json:"stage"`
	Form         Form            `json:"form"`
	Testimonials []domain.Review `json:"testimonials"`
}

type CreateReviewResponse struct {
	Review       domain.Review   `json:"review"`
	Form         Form            `json:"form"`
	Testimonials []domain.Review `json:"testimonials"`
}
