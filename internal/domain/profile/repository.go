package profile

import (
	"context"
	"errors"
	"fmt"

	"findmygym/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *ProfileRepository) Counts(ctx context.Context, userID int64) (Counts, error) {
	var c Counts
	db := r.db.WithContext(ctx)
	for _, q := range []struct {
		model any
		dst   *int64
	}{
		{&domain.Review{}, &c.Reviews},
		{&domain.Favorite{}, &c.Favorites},
		{&domain.Booking{}, &c.Bookings},
	} {
		if err := db.Model(q.model).Where("user_id = ?", userID).Count(q.dst).Error; err != nil {
			return Counts{}, fmt.Errorf("count user rows: %w", err)
		}
	}
	return c, nil
}

// UpdateFields writes only the given columns.
func (r *ProfileRepository) UpdateFields(ctx context.Context, userID int64, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ReviewsByUser returns the user's reviews newest first, with their gyms.
func (r *ProfileRepository) ReviewsByUser(ctx context.Context, userID int64) ([]domain.Review, error) {
	var rows []domain.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Gym").
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return rows, nil
}
