package favorite

import (
	"context"
	"fmt"

	"findmygym/internal/database"
	"findmygym/internal/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) GymExists(ctx context.Context, gymID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Gym{}).Where("id = ?", gymID).Count(&count).Error
	return count > 0, err
}

// Create maps a duplicate (user, gym) pair to ErrAlreadyFavorited.
func (r *FavoriteRepository) Create(ctx context.Context, f *domain.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyFavorited
		}
		return fmt.Errorf("create favorite: %w", err)
	}
	return nil
}

// ListByUser returns bookmarks newest first.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var rows []domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return rows, nil
}

// Delete is idempotent: removing a missing pair is not an error.
func (r *FavoriteRepository) Delete(ctx context.Context, userID, gymID int64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND gym_id = ?", userID, gymID).
		Delete(&domain.Favorite{}).Error
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
