package deal

import (
	"context"
	"fmt"
	"time"

	"findmygym/internal/domain"

	"gorm.io/gorm"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// ListActive returns active deals whose validity window contains now, largest discount first.
func (r *DealRepository) ListActive(ctx context.Context, now time.Time, limit int) ([]domain.Deal, error) {
	var rows []domain.Deal
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now).
		Preload("Gym").
		Order("discount DESC, id ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	return rows, nil
}

// DeactivateExpired switches off active deals that ended before now.
func (r *DealRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Deal{}).
		Where("is_active = ? AND valid_until < ?", true, now).
		Update("is_active", false)
	if res.Error != nil {
		return 0, fmt.Errorf("deactivate deals: %w", res.Error)
	}
	return res.RowsAffected, nil
}
