package favorite

import (
	"context"

	"findmygym/internal/domain"
	"findmygym/internal/domain/catalog"
)

type Store interface {
	GymExists(ctx context.Context, gymID int64) (bool, error)
	Create(ctx context.Context, f *domain.Favorite) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Delete(ctx context.Context, userID, gymID int64) error
}

// GymSummaries builds listing cards for gym ids, preserving their order.
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

func (s *Service) List(ctx context.Context, userID int64) ([]Item, error) {
	favs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favs) == 0 {
		return []Item{}, nil
	}

	ids := make([]int64, 0, len(favs))
	favByGym := make(map[int64]int64, len(favs))
	for _, f := range favs {
		ids = append(ids, f.GymID)
		favByGym[f.GymID] = f.ID
	}

	cards, err := s.gyms.Summaries(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]Item, 0, len(cards))
	for _, c := range cards {
		out = append(out, Item{GymSummary: c, FavoriteID: favByGym[c.ID]})
	}
	return out, nil
}

func (s *Service) Add(ctx context.Context, userID, gymID int64) (*domain.Favorite, error) {
	if gymID <= 0 {
		return nil, ErrInvalidRequest
	}
	ok, err := s.store.GymExists(ctx, gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrGymNotFound
	}

	f := &domain.Favorite{UserID: userID, GymID: gymID}
	if err := s.store.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) Remove(ctx context.Context, userID, gymID int64) error {
	if gymID <= 0 {
		return ErrInvalidRequest
	}
	return s.store.Delete(ctx, userID, gymID)
}
