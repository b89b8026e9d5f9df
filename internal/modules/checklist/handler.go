package checklist

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
	page := rg.Group(flow.PageChecklist.Path(), middleware.RequirePage(flow.PageChecklist))
	{
		page.GET("", h.Page)
		page.POST("/progress", h.Progress)
		page.POST("", h.Complete)
	}
}

// Page handles GET /checklist
func (h *Handler) Page(c *gin.Context) {
	b, cl, err := h.service.Open(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load checklist")
		}
		return
	}
	response.Success(c, http.StatusOK, PageResponse{
		Items:            h.service.Items(),
		Booking:          b,
		ProgressResponse: toProgress(cl),
	})
}

// Progress handles POST /checklist/progress
func (h *Handler) Progress(c *gin.Context) {
	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	response.Success(c, http.StatusOK, toProgress(h.service.Progress(req.Checked)))
}

// Complete handles POST /checklist
func (h *Handler) Complete(c *gin.Context) {
	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	b, err := h.service.Complete(c.Request.Context(), middleware.Gateway(c), req.Checked)
	if err != nil {
		switch {
		case errors.Is(err, ErrIncomplete):
			response.ErrorWithDetails(c, http.StatusBadRequest, "CHECKLIST_INCOMPLETE",
				"Please complete every safety item before continuing", toProgress(h.service.Progress(req.Checked)))
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to save checklist")
		}
		return
	}

	log.Printf("checklist_completed session_id=%s booking_id=%s", middleware.SessionID(c), b.ID)
	response.Success(c, http.StatusOK, CompleteResponse{Booking: b, Next: flow.PageReview.Path()})
}
