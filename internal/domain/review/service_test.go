package review

import (
	"context"
	"errors"
	"testing"

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

func (m *MockStore) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil {
		rv.ID = 999 // simulate DB insert
		rv.User = &domain.User{ID: rv.UserID, Name: "Asha"}
	}
	return args.Error(0)
}

func (m *MockStore) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockStore) List(ctx context.Context, f ListFilters) ([]domain.Review, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStore) ToggleHelpful(ctx context.Context, reviewID, userID int64) (bool, error) {
	args := m.Called(ctx, reviewID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) CreateReport(ctx context.Context, rep *domain.ReviewReport) error {
	return m.Called(ctx, rep).Error(0)
}

func score(v float64) *float64 { return &v }

func TestService_Create_Success(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	store.On("GymExists", ctx, int64(3)).Return(true, nil)
	store.On("Create", ctx, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.GymID == 3 && rv.UserID == 7 && rv.Rating == 4.5 && !rv.IsVerified && rv.Cleanliness == nil
	})).Return(nil)

	got, err := svc.Create(ctx, 7, CreateReviewRequest{GymID: 3, Rating: 4.5, Text: " Clean and friendly ", Cleanliness: score(0)})

	require.NoError(t, err)
	assert.Equal(t, int64(999), got.ID)
	assert.Equal(t, "Clean and friendly", got.Text)
	require.NotNil(t, got.User)
	assert.Equal(t, "Asha", got.User.Name)
	store.AssertExpectations(t)
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(new(MockStore))

	cases := []struct {
		name    string
		req     CreateReviewRequest
		missing bool
	}{
		{"no text", CreateReviewRequest{GymID: 1, Rating: 4}, true},
		{"no gym", CreateReviewRequest{Rating: 4, Text: "ok"}, true},
		{"no rating", CreateReviewRequest{GymID: 1, Text: "ok"}, true},
		{"rating too high", CreateReviewRequest{GymID: 1, Rating: 6, Text: "ok"}, false},
		{"category too low", CreateReviewRequest{GymID: 1, Rating: 4, Text: "ok", Staff: score(0.5)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tc.req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Equal(t, tc.missing, verr.Missing)
		})
	}
}

func TestService_Create_UnknownGym(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	store.On("GymExists", mock.Anything, int64(42)).Return(false, nil)

	_, err := svc.Create(context.Background(), 1, CreateReviewRequest{GymID: 42, Rating: 3, Text: "meh"})

	assert.ErrorIs(t, err, ErrGymNotFound)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Delete_Ownership(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	store.On("GetByID", ctx, int64(10)).Return(&domain.Review{ID: 10, UserID: 1}, nil)
	store.On("GetByID", ctx, int64(11)).Return(nil, ErrNotFound)
	store.On("Delete", ctx, int64(10)).Return(nil)

	assert.ErrorIs(t, svc.Delete(ctx, 2, 10), ErrForbidden)
	assert.ErrorIs(t, svc.Delete(ctx, 1, 11), ErrNotFound)
	assert.NoError(t, svc.Delete(ctx, 1, 10))
	store.AssertNumberOfCalls(t, "Delete", 1)
}

func TestService_List_DefaultsAndPages(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)

	store.On("List", mock.Anything, ListFilters{Sort: SortRecent, Page: 1, Limit: 10}).
		Return([]domain.Review{{ID: 1}}, int64(21), nil)

	res, err := svc.List(context.Background(), ListFilters{Sort: SortRecent})

	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalPages)
	assert.Len(t, res.Reviews, 1)
}

func TestService_ToggleHelpful(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	store.On("ToggleHelpful", mock.Anything, int64(5), int64(1)).Return(true, nil).Once()
	store.On("ToggleHelpful", mock.Anything, int64(5), int64(1)).Return(false, nil).Once()

	first, err := svc.ToggleHelpful(context.Background(), 1, 5)
	require.NoError(t, err)
	second, err := svc.ToggleHelpful(context.Background(), 1, 5)
	require.NoError(t, err)

	assert.Equal(t, "added", first)
	assert.Equal(t, "removed", second)
}

func TestService_Report(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Report(ctx, 1, 5, ReportRequest{Reason: "  "}), ErrInvalidRequest)

	store.On("GetByID", ctx, int64(5)).Return(&domain.Review{ID: 5}, nil)
	store.On("CreateReport", ctx, mock.Anything).Return(ErrConflict).Once()
	assert.ErrorIs(t, svc.Report(ctx, 1, 5, ReportRequest{Reason: "spam"}), ErrConflict)

	store.On("GetByID", ctx, int64(6)).Return(nil, ErrNotFound)
	assert.ErrorIs(t, svc.Report(ctx, 1, 6, ReportRequest{Reason: "spam"}), ErrNotFound)

	store.On("CreateReport", ctx, mock.Anything).Return(errors.New("disk full"))
	assert.EqualError(t, svc.Report(ctx, 1, 5, ReportRequest{Reason: "spam"}), "disk full")
}
