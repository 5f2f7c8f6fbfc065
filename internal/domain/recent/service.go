package recent

import (
	"context"

	"findmygym/internal/domain/catalog"
)

type Store interface {
	Track(ctx context.Context, userID, gymID int64) error
	IDs(ctx context.Context, userID int64, limit int) ([]int64, error)
	Merge(ctx context.Context, userID int64, ids []int64) error
}

type GymSummaries interface {
	Summaries(ctx context.Context, ids []int64) ([]catalog.GymSummary, error)
}

type Service struct {
	store Store
	gyms  GymSummaries
}

func NewService(store Store, gyms GymSummaries) *Service {
	return &Service{store: store, gyms: gyms}
}

// List returns the recently viewed gyms, most recent first. Ids of gyms that no
// longer exist or were deactivated are skipped.
func (s *Service) List(ctx context.Context, userID int64) ([]catalog.GymSummary, error) {
	ids, err := s.store.IDs(ctx, userID, ShowLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalog.GymSummary{}, nil
	}
	return s.gyms.Summaries(ctx, ids)
}

func (s *Service) Merge(ctx context.Context, userID int64, ids []int64) ([]catalog.GymSummary, error) {
	if err := s.store.Merge(ctx, userID, ids); err != nil {
		return nil, err
	}
	return s.List(ctx, userID)
}
