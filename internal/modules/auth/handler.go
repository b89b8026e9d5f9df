package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pawconnect/internal/domain"
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
	rg.GET(flow.PageLogin.Path(), h.LoginPage)
	rg.POST(flow.PageLogin.Path(), h.Login)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)
}

// LoginPage handles GET /
func (h *Handler) LoginPage(c *gin.Context) {
	u, err := middleware.Gateway(c).GetUser(c.Request.Context())
	if err != nil {
		if !response.FlowError(c, err) {
			response.Internal(c, err, "Failed to load user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"roles": []domain.UserRole{domain.RoleOwner, domain.RoleCompanion},
		"user":  toUserResponse(u),
	})
}

// Login handles POST /
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username, password and a valid role are required")
		return
	}

	u, err := h.service.Login(c.Request.Context(), middleware.Gateway(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Username and password must not be blank")
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to log in")
		}
		return
	}

	log.Printf("user_login session_id=%s user_id=%s role=%s", middleware.SessionID(c), u.ID, u.Role)
	response.Success(c, http.StatusOK, gin.H{
		"user": toUserResponse(u),
		"next": flow.PageDashboard.Path(),
	})
}

// Logout handles POST /logout
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.Gateway(c)); err != nil {
		response.Internal(c, err, "Failed to log out")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"next": flow.PageLogin.Path()})
}

// Me handles GET /me
func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Current(c.Request.Context(), middleware.Gateway(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotLoggedIn):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Not logged in")
		case response.FlowError(c, err):
		default:
			response.Internal(c, err, "Failed to load user")
		}
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}
