// Package testutil builds gin routers with a live session for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/middleware"
	"pawconnect/internal/pkg/jwt"
	"pawconnect/internal/repository"
	"pawconnect/internal/storage"
)

const SessionID = "test-session"

// Envelope mirrors the response package's JSON shape.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// Session is a router with the session middleware installed, a cookie for SessionID and
// the gateway of that session.
type Session struct {
	Router  *gin.Engine
	Cookie  *http.Cookie
	Gateway *storage.Gateway
	Store   *repository.MemoryStore
}

func NewSession(t *testing.T) *Session {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := jwt.New("test-secret", time.Hour)
	store := repository.NewMemoryStore()
	stores := storage.NewProvider(store)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.Session(tokens, stores, middleware.SessionConfig{SameSite: http.SameSiteLaxMode}))

	token, err := tokens.GenerateToken(SessionID)
	require.NoError(t, err)

	return &Session{
		Router:  r,
		Cookie:  &http.Cookie{Name: middleware.SessionCookieName, Value: token},
		Gateway: stores.For(SessionID),
		Store:   store,
	}
}

// Do sends a JSON request with the session cookie and decodes the envelope when there is one.
func (s *Session) Do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(s.Cookie)

	rr := httptest.NewRecorder()
	s.Router.ServeHTTP(rr, req)

	var env Envelope
	if rr.Body.Len() > 0 {
		_ = json.Unmarshal(rr.Body.Bytes(), &env)
	}
	return rr, env
}

// Decode unmarshals the envelope's data into v.
func Decode(t *testing.T, env Envelope, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, v))
}

// SlotKey is the raw store key of a slot in the test session, for planting bad data.
func SlotKey(slot string) string {
	return "session:" + SessionID + ":" + slot
}
