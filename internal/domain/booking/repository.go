package booking

import (
	"context"
	"errors"
	"fmt"

	"findmygym/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GymExists(ctx context.Context, gymID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Gym{}).Where("id = ?", gymID).Count(&count).Error
	return count > 0, err
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(b).Error; err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return db.Preload("Gym").First(b, b.ID).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByUser returns the user's bookings, newest first, with their gyms.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Gym").
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return rows, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	db := r.db.WithContext(ctx)
	res := db.Model(&domain.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var b domain.Booking
	if err := db.Preload("Gym").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
