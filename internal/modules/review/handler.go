package review

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawconnect/internal/flow"
	"pawconnect/internal/middleware"
	"pawconnect/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	page := rg.Group(flow.PageReview.Path(), middleware.RequirePage(flow.PageReview))
	{
		page.GET("", h.Page)
		page.POST("", h.Create)
	}
}

// Page handles GET /review
func (h *Handler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	gw := middleware.Gateway(c)

	b, stage, err := h.svc.Booking(ctx, gw)
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load booking")
		}
		return
	}
	testimonials, err := h.svc.Testimonials(ctx, gw)
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load reviews")
		}
		return
	}

	response.Success(c, http.StatusOK, PageResponse{Booking: b, Stage: stage.String(), Form: Form{}, Testimonials: testimonials})
}

// Create handles POST /review
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	ctx := c.Request.Context()
	gw := middleware.Gateway(c)

	rv, err := h.svc.Create(ctx, gw, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Please select a rating from 1 to 5 stars")
		case errors.Is(err, ErrEmptyFeedback):
			response.Error(c, http.StatusBadRequest, "EMPTY_FEEDBACK", "Please write some feedback")
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to save review")
		}
		return
	}

	testimonials, err := h.svc.Testimonials(ctx, gw)
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load reviews")
		}
		return
	}

	log.Printf("review_created session_id=%s review_id=%s booking_id=%s rating=%d", middleware.SessionID(c), rv.ID, rv.BookingID, rv.Rating)
	response.Success(c, http.StatusCreated, CreateReviewResponse{
		Review:       *rv,
		Form:         Form{},
		Testimonials: testimonials,
	})
}
