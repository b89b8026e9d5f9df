package booking

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/domain"
	"pawconnect/internal/pkg/testutil"
)

func setupHandler(t *testing.T) *testutil.Session {
	t.Helper()
	s := testutil.NewSession(t)
	NewHandler(newTestService()).RegisterRoutes(&s.Router.RouterGroup)
	return s
}

func TestHandler_Redirects(t *testing.T) {
	s := setupHandler(t)

	rr, _ := s.Do(t, http.MethodGet, "/booking", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/pets", rr.Header().Get("Location"))

	require.NoError(t, s.Gateway.SetCurrentBooking(t.Context(), domain.CurrentDraft(domain.BookingDraft{PetID: "3"})))
	rr, _ = s.Do(t, http.MethodGet, "/booking", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/subscription", rr.Header().Get("Location"))
}

func TestHandler_CreateAndList(t *testing.T) {
	s := setupHandler(t)
	require.NoError(t, s.Gateway.SetCurrentBooking(t.Context(), planned()))

	rr, env := s.Do(t, http.MethodGet, "/booking", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var page struct {
		TimeSlots []string `json:"time_slots"`
	}
	testutil.Decode(t, env, &page)
	assert.Len(t, page.TimeSlots, 10)

	rr, env = s.Do(t, http.MethodPost, "/booking", gin.H{"date": "2025-06-01"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "MISSING_INFORMATION", env.Error.Code)
	assert.Equal(t, MissingFieldsMessage, env.Error.Message)
	assert.Equal(t, map[string]any{"missing": []any{"time"}}, env.Error.Details)

	rr, env = s.Do(t, http.MethodPost, "/booking", gin.H{"date": "2025-06-01", "time": "10:00 AM"})
	require.Equal(t, http.StatusCreated, rr.Code)
	var created CreateBookingResponse
	testutil.Decode(t, env, &created)
	assert.Equal(t, "Luna", created.Booking.PetName)
	assert.False(t, created.Booking.ChecklistCompleted)
	assert.Equal(t, "/checklist", created.Next)

	rr, env = s.Do(t, http.MethodGet, "/bookings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list ListResponse
	testutil.Decode(t, env, &list)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, created.Booking.ID, list.Bookings[0].ID)
}
