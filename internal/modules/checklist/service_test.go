package checklist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pawconnect/internal/domain"
	"pawconnect/internal/flow"
	"pawconnect/internal/repository"
	"pawconnect/internal/storage"
)

type mockBookingStore struct {
	mock.Mock
}

func (m *mockBookingStore) GetUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockBookingStore) GetCurrentBooking(ctx context.Context) (*domain.CurrentBooking, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).(*domain.CurrentBooking)
	return c, args.Error(1)
}

func (m *mockBookingStore) SetCurrentBooking(ctx context.Context, c domain.CurrentBooking) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockBookingStore) UpdateBooking(ctx context.Context, id string, patch domain.BookingPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func allIDs() []string {
	ids := make([]string, 0, len(flow.SafetyChecklist))
	for _, it := range flow.SafetyChecklist {
		ids = append(ids, it.ID)
	}
	return ids
}

func scheduledGateway(t *testing.T) (*storage.Gateway, domain.Booking) {
	t.Helper()
	ctx := context.Background()
	gw := storage.NewProvider(repository.NewMemoryStore()).For("test")
	b := domain.Booking{ID: "b1", PetID: "3", PetName: "Luna", SubscriptionType: domain.SubscriptionDaily, Date: "2025-06-01", Time: "10:00 AM"}
	require.NoError(t, gw.AddBooking(ctx, domain.Booking{ID: "b0", PetID: "1"}))
	require.NoError(t, gw.AddBooking(ctx, b))
	require.NoError(t, gw.SetCurrentBooking(ctx, domain.CurrentScheduled(b)))
	return gw, b
}

func TestComplete_DualWrite(t *testing.T) {
	ctx := context.Background()
	gw, _ := scheduledGateway(t)

	b, err := NewService(flow.SafetyChecklist).Complete(ctx, gw, allIDs())
	require.NoError(t, err)
	assert.True(t, b.ChecklistCompleted)

	cur, err := gw.GetCurrentBooking(ctx)
	require.NoError(t, err)
	assert.True(t, cur.ChecklistCompleted())

	list, err := gw.GetBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].ChecklistCompleted)
	assert.True(t, list[1].ChecklistCompleted)
	assert.Equal(t, "b1", list[1].ID)
}

func TestComplete_Incomplete(t *testing.T) {
	ctx := context.Background()
	gw, _ := scheduledGateway(t)

	_, err := NewService(flow.SafetyChecklist).Complete(ctx, gw, allIDs()[:7])
	assert.ErrorIs(t, err, ErrIncomplete)

	cur, err := gw.GetCurrentBooking(ctx)
	require.NoError(t, err)
	assert.False(t, cur.ChecklistCompleted())
}

func TestComplete_IgnoresUnknownAndDuplicateIDs(t *testing.T) {
	ctx := context.Background()
	gw, _ := scheduledGateway(t)
	checked := append(allIDs()[:7], "7", "99")

	_, err := NewService(flow.SafetyChecklist).Complete(ctx, gw, checked)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestComplete_RequiresScheduledBooking(t *testing.T) {
	ctx := context.Background()
	gw := storage.NewProvider(repository.NewMemoryStore()).For("test")
	require.NoError(t, gw.SetCurrentBooking(ctx, domain.CurrentDraft(domain.BookingDraft{PetID: "3", SubscriptionType: domain.SubscriptionDaily})))

	_, err := NewService(flow.SafetyChecklist).Complete(ctx, gw, allIDs())
	var perr *flow.PreconditionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, flow.PageCatalog, perr.Fallback)
}

func TestComplete_ListUpdateFailureKeepsCurrent(t *testing.T) {
	store := new(mockBookingStore)
	cur := domain.CurrentScheduled(domain.Booking{ID: "b1"})
	boom := errors.New("write failed")
	store.On("GetUser", mock.Anything).Return(nil, nil)
	store.On("GetCurrentBooking", mock.Anything).Return(&cur, nil)
	store.On("SetCurrentBooking", mock.Anything, mock.Anything).Return(nil).Once()
	store.On("UpdateBooking", mock.Anything, "b1", mock.Anything).Return(boom).Once()

	_, err := NewService(flow.SafetyChecklist).Complete(context.Background(), store, allIDs())
	assert.ErrorIs(t, err, boom)
	store.AssertExpectations(t)
}

func TestOpen_CompletedBookingShowsAllTicked(t *testing.T) {
	ctx := context.Background()
	gw, b := scheduledGateway(t)
	svc := NewService(flow.SafetyChecklist)

	_, cl, err := svc.Open(ctx, gw)
	require.NoError(t, err)
	assert.Equal(t, 0, cl.CheckedCount())

	b.ChecklistCompleted = true
	require.NoError(t, gw.SetCurrentBooking(ctx, domain.CurrentScheduled(b)))
	_, cl, err = svc.Open(ctx, gw)
	require.NoError(t, err)
	assert.True(t, cl.IsComplete())
}

func TestProgress(t *testing.T) {
	svc := NewService(flow.SafetyChecklist)

	cl := svc.Progress([]string{"1", "2"})
	assert.Equal(t, 2, cl.CheckedCount())
	assert.InDelta(t, 25.0, cl.Progress(), 0.001)
	assert.False(t, cl.ShowCompletion())

	cl = svc.Progress(allIDs())
	assert.InDelta(t, 100.0, cl.Progress(), 0.001)
	assert.True(t, cl.ShowCompletion())
}
