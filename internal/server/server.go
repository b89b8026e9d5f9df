// Package server assembles the HTTP router: middleware, page modules and the catch-all page.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pawconnect/internal/flow"
	"pawconnect/internal/middleware"
	"pawconnect/internal/modules/auth"
	"pawconnect/internal/modules/booking"
	"pawconnect/internal/modules/catalog"
	"pawconnect/internal/modules/checklist"
	"pawconnect/internal/modules/dashboard"
	"pawconnect/internal/modules/review"
	"pawconnect/internal/modules/subscription"
	"pawconnect/internal/pkg/jwt"
	"pawconnect/internal/pkg/response"
	"pawconnect/internal/repository"
	"pawconnect/internal/storage"
)

type Options struct {
	Store       repository.KVStore
	Tokens      *jwt.Service
	Session     middleware.SessionConfig
	CORSOrigins []string
	// RequestLog enables gin's access log.
	RequestLog bool
}

func NewRouter(opts Options) *gin.Engine {
	r := gin.New()
	if opts.RequestLog {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	pages := r.Group("/")
	pages.Use(middleware.Session(opts.Tokens, storage.NewProvider(opts.Store), opts.Session))
	{
		auth.NewHandler(auth.NewService()).RegisterRoutes(pages)
		dashboard.NewHandler(dashboard.NewService()).RegisterRoutes(pages)
		catalog.NewHandler(catalog.NewService(catalog.DefaultPets)).RegisterRoutes(pages)
		subscription.NewHandler(subscription.NewService()).RegisterRoutes(pages)
		booking.NewHandler(booking.NewService()).RegisterRoutes(pages)
		checklist.NewHandler(checklist.NewService(flow.SafetyChecklist)).RegisterRoutes(pages)
		review.NewHandler(review.NewService()).RegisterRoutes(pages)
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Page not found")
	})

	return r
}
