package checklist

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
	"pawconnect/internal/pkg/testutil"
	"pawconnect/internal/storage"
)

func setupHandler(t *testing.T) *testutil.Session {
	t.Helper()
	s := testutil.NewSession(t)
	NewHandler(NewService(flow.SafetyChecklist)).RegisterRoutes(&s.Router.RouterGroup)
	return s
}

func TestHandler_RedirectsWithoutBooking(t *testing.T) {
	s := setupHandler(t)
	require.NoError(t, s.Gateway.SetCurrentBooking(t.Context(), domain.CurrentDraft(domain.BookingDraft{PetID: "3"})))

	rr, _ := s.Do(t, http.MethodGet, "/checklist", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/pets", rr.Header().Get("Location"))

	rr, _ = s.Do(t, http.MethodPost, "/checklist", gin.H{"checked": allIDs()})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestHandler_ProgressAndComplete(t *testing.T) {
	s := setupHandler(t)
	b := domain.Booking{ID: "b1", PetID: "3", PetName: "Luna"}
	require.NoError(t, s.Gateway.AddBooking(t.Context(), b))
	require.NoError(t, s.Gateway.SetCurrentBooking(t.Context(), domain.CurrentScheduled(b)))

	rr, env := s.Do(t, http.MethodGet, "/checklist", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var page PageResponse
	testutil.Decode(t, env, &page)
	assert.Len(t, page.Items, 8)
	assert.Equal(t, "b1", page.Booking.ID)
	assert.Equal(t, 8, page.Total)
	assert.Equal(t, 0, page.CheckedCount)

	rr, env = s.Do(t, http.MethodPost, "/checklist/progress", gin.H{"checked": []string{"1", "3", "5", "7"}})
	require.Equal(t, http.StatusOK, rr.Code)
	var progress ProgressResponse
	testutil.Decode(t, env, &progress)
	assert.Equal(t, 4, progress.CheckedCount)
	assert.InDelta(t, 50.0, progress.Progress, 0.001)
	assert.False(t, progress.ShowCompletion)

	rr, env = s.Do(t, http.MethodPost, "/checklist", gin.H{"checked": []string{"1", "2"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "CHECKLIST_INCOMPLETE", env.Error.Code)

	rr, env = s.Do(t, http.MethodPost, "/checklist", gin.H{"checked": allIDs()})
	require.Equal(t, http.StatusOK, rr.Code)
	var done CompleteResponse
	testutil.Decode(t, env, &done)
	assert.True(t, done.Booking.ChecklistCompleted)
	assert.Equal(t, "/review", done.Next)

	list, err := s.Gateway.GetBookings(t.Context())
	require.NoError(t, err)
	assert.True(t, list[0].ChecklistCompleted)
}

func TestHandler_CorruptedReviewsDoNotBlockChecklist(t *testing.T) {
	s := setupHandler(t)
	b := domain.Booking{ID: "b1", PetID: "3"}
	require.NoError(t, s.Gateway.AddBooking(t.Context(), b))
	require.NoError(t, s.Gateway.SetCurrentBooking(t.Context(), domain.CurrentScheduled(b)))
	require.NoError(t, s.Store.Set(t.Context(), testutil.SlotKey(storage.SlotReviews), []byte("{oops")))

	rr, _ := s.Do(t, http.MethodGet, "/checklist", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, _ = s.Do(t, http.MethodPost, "/checklist", gin.H{"checked": allIDs()})
	assert.Equal(t, http.StatusOK, rr.Code)
}
