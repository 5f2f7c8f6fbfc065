package review

import (
	"context"
	"math"
	"strings"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/validator"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

type Store interface {
	GymExists(ctx context.Context, gymID int64) (bool, error)
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, f ListFilters) ([]domain.Review, int64, error)
	Delete(ctx context.Context, id int64) error
	ToggleHelpful(ctx context.Context, reviewID, userID int64) (bool, error)
	CreateReport(ctx context.Context, rep *domain.ReviewReport) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ValidationError carries per-field failures of a create request.
type ValidationError struct {
	Fields  map[string]string
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return "missing required fields"
	}
	return "rating values must be between 1 and 5"
}

func (e *ValidationError) Unwrap() error { return ErrInvalidRequest }

func (s *Service) Create(ctx context.Context, userID int64, req CreateReviewRequest) (*View, error) {
	req.Text = strings.TrimSpace(req.Text)
	req.normalize()
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs, Missing: validator.HasTag(errs, "required")}
	}

	ok, err := s.store.GymExists(ctx, req.GymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrGymNotFound
	}

	rv := &domain.Review{
		GymID:         req.GymID,
		UserID:        userID,
		Rating:        req.Rating,
		Cleanliness:   req.Cleanliness,
		Equipment:     req.Equipment,
		Staff:         req.Staff,
		ValueForMoney: req.ValueForMoney,
		Text:          req.Text,
		IsVerified:    false,
	}
	if err := s.store.Create(ctx, rv); err != nil {
		return nil, err
	}

	v := ToView(*rv)
	return &v, nil
}

func (s *Service) List(ctx context.Context, f ListFilters) (*ListResponse, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	f.Limit = min(f.Limit, maxLimit)

	rows, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToView(r))
	}
	return &ListResponse{
		Reviews:    out,
		Total:      total,
		Page:       f.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

// Delete removes the caller's own review.
func (s *Service) Delete(ctx context.Context, userID, reviewID int64) error {
	rv, err := s.store.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if rv.UserID != userID {
		return ErrForbidden
	}
	return s.store.Delete(ctx, reviewID)
}

// ToggleHelpful returns "added" or "removed".
func (s *Service) ToggleHelpful(ctx context.Context, userID, reviewID int64) (string, error) {
	added, err := s.store.ToggleHelpful(ctx, reviewID, userID)
	if err != nil {
		return "", err
	}
	if added {
		return "added", nil
	}
	return "removed", nil
}

func (s *Service) Report(ctx context.Context, userID, reviewID int64, req ReportRequest) error {
	req.Reason = strings.TrimSpace(req.Reason)
	if errs := validator.Validate(req); errs != nil {
		return ErrInvalidRequest
	}
	if _, err := s.store.GetByID(ctx, reviewID); err != nil {
		return err
	}
	return s.store.CreateReport(ctx, &domain.ReviewReport{ReviewID: reviewID, UserID: userID, Reason: req.Reason})
}
