package profile

import (
	"context"
	"strings"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/utils"
)

type Store interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	Counts(ctx context.Context, userID int64) (Counts, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]any) error
	ReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, userID int64) (*Profile, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.Counts(ctx, userID)
	if err != nil {
		return nil, err
	}
	p := toProfile(u)
	p.Counts = &counts
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID int64, req UpdateProfileRequest) (*Profile, error) {
	fields := map[string]any{}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.FitnessGoals != nil {
		fields["fitness_goals"] = utils.ListToString(*req.FitnessGoals)
	}
	if req.PreferredWorkouts != nil {
		fields["preferred_workouts"] = utils.ListToString(*req.PreferredWorkouts)
	}
	if req.BudgetRange != nil {
		fields["budget_range"] = *req.BudgetRange
	}

	if len(fields) > 0 {
		if err := s.store.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfile(u), nil
}

func (s *Service) Reviews(ctx context.Context, userID int64) ([]UserReview, error) {
	rows, err := s.store.ReviewsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]UserReview, 0, len(rows))
	for _, rv := range rows {
		out = append(out, toUserReview(rv))
	}
	return out, nil
}
