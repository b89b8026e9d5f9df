package booking

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
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	page := rg.Group(flow.PageSchedule.Path(), middleware.RequirePage(flow.PageSchedule))
	{
		page.GET("", h.Page)
		page.POST("", h.Create)
	}
	rg.GET("/bookings", h.List)
}

// Page handles GET /booking
func (h *Handler) Page(c *gin.Context) {
	cur, err := h.service.Current(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load booking")
		}
		return
	}
	response.Success(c, http.StatusOK, PageResponse{Current: cur, TimeSlots: TimeSlots})
}

// Create handles POST /booking
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), middleware.Gateway(c), req)
	if err != nil {
		var missing *MissingFieldsError
		switch {
		case errors.As(err, &missing):
			response.ErrorWithDetails(c, http.StatusBadRequest, "MISSING_INFORMATION", MissingFieldsMessage, gin.H{"missing": missing.Fields})
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to create booking")
		}
		return
	}

	log.Printf("booking_created session_id=%s booking_id=%s pet_id=%s user_id=%s", middleware.SessionID(c), b.ID, b.PetID, b.UserID)
	response.Success(c, http.StatusCreated, CreateBookingResponse{Booking: *b, Next: flow.PageChecklist.Path()})
}

// List handles GET /bookings
func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load bookings")
		}
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Bookings: bookings, Total: len(bookings)})
}
