package catalog

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
	pets := rg.Group(flow.PageCatalog.Path(), middleware.RequirePage(flow.PageCatalog))
	{
		pets.GET("", h.List)
		pets.GET("/:id", h.Get)
		pets.GET("/:id/reviews", h.Reviews)
		pets.POST("/:id/book", h.Book)
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPetNotFound):
		response.Error(c, http.StatusNotFound, "PET_NOT_FOUND", "Pet not found")
	case errors.Is(err, ErrPetUnavailable):
		response.Error(c, http.StatusConflict, "PET_UNAVAILABLE", "This pet is already booked")
	case response.FlowError(c, err):
	default:
		response.Internal(c, err, "Failed to load pets")
	}
}

// List handles GET /pets
func (h *Handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	gw := middleware.Gateway(c)

	pets, err := h.service.List(ctx, gw)
	if err != nil {
		h.writeError(c, err)
		return
	}
	selected, err := h.service.SelectedPetID(ctx, gw)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CatalogResponse{Pets: pets, SelectedPetID: selected})
}

// Get handles GET /pets/:id
func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), middleware.Gateway(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p)
}

// Reviews handles GET /pets/:id/reviews
func (h *Handler) Reviews(c *gin.Context) {
	reviews, err := h.service.Reviews(c.Request.Context(), middleware.Gateway(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// Book handles POST /pets/:id/book
func (h *Handler) Book(c *gin.Context) {
	draft, err := h.service.Book(c.Request.Context(), middleware.Gateway(c), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	log.Printf("pet_selected session_id=%s pet_id=%s", middleware.SessionID(c), draft.PetID)
	response.Success(c, http.StatusOK, BookResponse{Draft: draft, Next: flow.PagePlan.Path()})
}
