package deal

import (
	"context"
	"time"

	"findmygym/internal/domain"
)

// ActiveLimit caps the deals shown on the home page.
const ActiveLimit = 6

type Store interface {
	ListActive(ctx context.Context, now time.Time, limit int) ([]domain.Deal, error)
}

type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

func (s *Service) Active(ctx context.Context) ([]View, error) {
	rows, err := s.store.ListActive(ctx, s.now(), ActiveLimit)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(rows))
	for _, d := range rows {
		out = append(out, ToView(d))
	}
	return out, nil
}
