package dashboard

import (
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
	rg.GET(flow.PageDashboard.Path(), middleware.RequirePage(flow.PageDashboard), h.Get)
}

// Get handles GET /dashboard
func (h *Handler) Get(c *gin.Context) {
	res, err := h.service.Build(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load dashboard")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}
