package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pawconnect/internal/pkg/jwt"
	"pawconnect/internal/pkg/response"
	"pawconnect/internal/storage"
)

const (
	SessionCookieName = "pawconnect_session"

	ctxSessionID = "session_id"
	ctxGateway   = "gateway"
)

type SessionConfig struct {
	Secure   bool
	SameSite http.SameSite
}

// Session attaches a session id and its storage gateway to the request. A missing, expired
// or forged cookie starts a fresh session.
func Session(tokens *jwt.Service, stores *storage.Provider, cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := ""
		if raw, err := c.Cookie(SessionCookieName); err == nil && raw != "" {
			if claims, err := tokens.ValidateToken(raw); err == nil {
				sid = claims.SessionID
			}
		}

		if sid == "" {
			sid = uuid.NewString()
			token, err := tokens.GenerateToken(sid)
			if err != nil {
				response.Internal(c, err, "Failed to start session")
				c.Abort()
				return
			}
			c.SetSameSite(cfg.SameSite)
			c.SetCookie(SessionCookieName, token, int(tokens.TTL().Seconds()), "/", "", cfg.Secure, true)
			log.Printf("session_started session_id=%s client_ip=%s", sid, c.ClientIP())
		}

		c.Set(ctxSessionID, sid)
		c.Set(ctxGateway, stores.For(sid))
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// Gateway returns the storage gateway of the request's session. It panics when the Session
// middleware did not run, which is a wiring bug.
func Gateway(c *gin.Context) *storage.Gateway {
	return c.MustGet(ctxGateway).(*storage.Gateway)
}
