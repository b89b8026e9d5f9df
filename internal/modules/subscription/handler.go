package subscription

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
	page := rg.Group(flow.PagePlan.Path(), middleware.RequirePage(flow.PagePlan))
	{
		page.GET("", h.Page)
		page.POST("", h.SelectPlan)
	}
}

// Page handles GET /subscription
func (h *Handler) Page(c *gin.Context) {
	cur, err := h.service.Current(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load booking")
		}
		return
	}
	response.Success(c, http.StatusOK, PageResponse{Plans: Plans, Current: cur})
}

// SelectPlan handles POST /subscription
func (h *Handler) SelectPlan(c *gin.Context) {
	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please choose a subscription plan")
		return
	}

	cur, err := h.service.SelectPlan(c.Request.Context(), middleware.Gateway(c), req.SubscriptionType)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownPlan):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Subscription type must be hourly, daily or weekly")
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to save plan")
		}
		return
	}

	log.Printf("plan_selected session_id=%s pet_id=%s plan=%s", middleware.SessionID(c), cur.PetID(), req.SubscriptionType)
	response.Success(c, http.StatusOK, SelectPlanResponse{Current: cur, Next: flow.PageSchedule.Path()})
}
