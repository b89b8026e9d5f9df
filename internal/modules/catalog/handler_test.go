package catalog

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/domain"
	"pawconnect/internal/pkg/testutil"
	"pawconnect/internal/storage"
)

func setupHandler(t *testing.T) *testutil.Session {
	t.Helper()
	s := testutil.NewSession(t)
	NewHandler(NewService(DefaultPets)).RegisterRoutes(&s.Router.RouterGroup)
	return s
}

func TestHandler_ListAndGet(t *testing.T) {
	s := setupHandler(t)

	rr, env := s.Do(t, http.MethodGet, "/pets", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list CatalogResponse
	testutil.Decode(t, env, &list)
	assert.Len(t, list.Pets, 6)
	assert.Empty(t, list.SelectedPetID)

	rr, env = s.Do(t, http.MethodGet, "/pets/6", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var pet domain.Pet
	testutil.Decode(t, env, &pet)
	assert.Equal(t, "Charlie", pet.Name)
	assert.False(t, pet.Available)

	rr, env = s.Do(t, http.MethodGet, "/pets/99", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "PET_NOT_FOUND", env.Error.Code)
}

func TestHandler_Book(t *testing.T) {
	s := setupHandler(t)

	rr, env := s.Do(t, http.MethodPost, "/pets/3/book", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var res BookResponse
	testutil.Decode(t, env, &res)
	assert.Equal(t, "Luna", res.Draft.PetName)
	assert.Equal(t, "/subscription", res.Next)

	rr, env = s.Do(t, http.MethodGet, "/pets", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list CatalogResponse
	testutil.Decode(t, env, &list)
	assert.Equal(t, "3", list.SelectedPetID)

	rr, env = s.Do(t, http.MethodPost, "/pets/6/book", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "PET_UNAVAILABLE", env.Error.Code)
}

func TestHandler_PetReviews(t *testing.T) {
	s := setupHandler(t)
	require.NoError(t, s.Gateway.AddReview(t.Context(), domain.Review{ID: "r1", PetID: "2", Rating: 4, Feedback: "Sweet"}))

	rr, env := s.Do(t, http.MethodGet, "/pets/2/reviews", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var res struct {
		Reviews []domain.Review `json:"reviews"`
	}
	testutil.Decode(t, env, &res)
	require.Len(t, res.Reviews, 1)
	assert.Equal(t, "Sweet", res.Reviews[0].Feedback)
}

func TestHandler_CorruptedReviewsDoNotBlockBrowsing(t *testing.T) {
	s := setupHandler(t)
	ctx := t.Context()
	require.NoError(t, s.Gateway.SetCurrentBooking(ctx, domain.CurrentScheduled(domain.Booking{ID: "b1", PetID: "3", SubscriptionType: domain.SubscriptionDaily})))
	require.NoError(t, s.Store.Set(ctx, testutil.SlotKey(storage.SlotReviews), []byte("{oops")))

	rr, _ := s.Do(t, http.MethodGet, "/pets", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, env := s.Do(t, http.MethodPost, "/pets/1/book", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var res BookResponse
	testutil.Decode(t, env, &res)
	assert.Equal(t, "Max", res.Draft.PetName)

	rr, env = s.Do(t, http.MethodGet, "/pets/1/reviews", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "STORAGE_CORRUPTED", env.Error.Code)
}
