package booking

import (
	"context"
	"testing"
	"time"

	"findmygym/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GymExists(ctx context.Context, gymID int64) (bool, error) {
	args := m.Called(ctx, gymID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockStore) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockStore) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func str(s string) *string { return &s }

func TestCreateBooking_Success(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	store.On("GymExists", ctx, int64(4)).Return(true, nil)
	store.On("Create", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == 1 && b.Status == domain.BookingPending && b.TimeSlot == nil && *b.Notes == "first visit"
	})).Return(nil)

	got, err := svc.Create(ctx, 1, CreateBookingRequest{
		GymID:       4,
		BookingType: "trial",
		Date:        "2026-10-20",
		TimeSlot:    str("  "),
		Notes:       str("first visit"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(999), got.ID)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), got.Date)
	store.AssertExpectations(t)
}

func TestCreateBooking_Validation(t *testing.T) {
	svc := NewService(new(MockStore))

	for name, req := range map[string]CreateBookingRequest{
		"missing gym":  {BookingType: "trial", Date: "2026-10-20"},
		"missing type": {GymID: 1, Date: "2026-10-20"},
		"missing date": {GymID: 1, BookingType: "trial"},
		"bad date":     {GymID: 1, BookingType: "trial", Date: "next tuesday"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestParseDate_Layouts(t *testing.T) {
	for _, raw := range []string{"2026-10-20", "2026-10-20T09:30", "2026-10-20T09:30:00Z"} {
		got, err := parseDate(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, 20, got.Day())
	}
}

func TestUpdateStatus_AnyTransitionByOwner(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	store.On("GetByID", ctx, int64(10)).Return(&domain.Booking{ID: 10, UserID: 1, Status: domain.BookingCompleted}, nil)
	store.On("UpdateStatus", ctx, int64(10), domain.BookingPending).
		Return(&domain.Booking{ID: 10, UserID: 1, Status: domain.BookingPending}, nil)

	got, err := svc.UpdateStatus(ctx, 1, 10, domain.BookingPending)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingPending, got.Status)
}

func TestUpdateStatus_Rejections(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	store.On("GetByID", ctx, int64(10)).Return(&domain.Booking{ID: 10, UserID: 1}, nil)
	store.On("GetByID", ctx, int64(11)).Return(nil, ErrNotFound)

	_, err := svc.UpdateStatus(ctx, 2, 10, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(ctx, 1, 10, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, 1, 11, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrNotFound)

	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
