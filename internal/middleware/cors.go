package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var localOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the local dev origins plus extra ones from config. Credentials are allowed
// so the session cookie travels with cross-origin requests.
func CORS(extraOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = append(append([]string{}, localOrigins...), extraOrigins...)
	cfg.AllowCredentials = true
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "X-Requested-With", "X-Request-ID"}
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.MaxAge = 10 * time.Minute
	return cors.New(cfg)
}
