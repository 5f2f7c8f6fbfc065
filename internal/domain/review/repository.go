package review

import (
	"context"
	"errors"
	"fmt"

	"findmygym/internal/database"
	"findmygym/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) GymExists(ctx context.Context, gymID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Gym{}).Where("id = ?", gymID).Count(&count).Error
	return count > 0, err
}

// Create inserts the review and reloads it with its author.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit(clause.Associations).Create(rv).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return db.Preload("User").First(rv, rv.ID).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) List(ctx context.Context, f ListFilters) ([]domain.Review, int64, error) {
	var rows []domain.Review
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Review{})
	if f.GymID > 0 {
		q = q.Where("gym_id = ?", f.GymID)
	}
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Rating > 0 {
		q = q.Where("rating >= ? AND rating < ?", f.Rating, f.Rating+1)
	}

	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count reviews: %w", err)
	}

	orderExpr := "created_at DESC"
	switch f.Sort {
	case SortHighest:
		orderExpr = "rating DESC"
	case SortLowest:
		orderExpr = "rating ASC"
	case SortHelpful:
		orderExpr = "helpful_count DESC"
	}

	err := q.Order(orderExpr + ", id DESC").
		Preload("User").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	return rows, total, nil
}

// Delete removes a review together with its helpful marks and reports.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&domain.ReviewHelpful{}).Error; err != nil {
			return err
		}
		if err := tx.Where("review_id = ?", id).Delete(&domain.ReviewReport{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Review{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ToggleHelpful flips the caller's helpful mark and keeps helpful_count in step.
// It reports whether the mark now exists.
func (r *ReviewRepository) ToggleHelpful(ctx context.Context, reviewID, userID int64) (bool, error) {
	added := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Review{}).Where("id = ?", reviewID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		var existing domain.ReviewHelpful
		err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(&domain.Review{}).Where("id = ?", reviewID).
				UpdateColumn("helpful_count", gorm.Expr("helpful_count - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&domain.ReviewHelpful{ReviewID: reviewID, UserID: userID}).Error; err != nil {
				return err
			}
			added = true
			return tx.Model(&domain.Review{}).Where("id = ?", reviewID).
				UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error
		default:
			return err
		}
	})
	return added, err
}

func (r *ReviewRepository) CreateReport(ctx context.Context, rep *domain.ReviewReport) error {
	if err := r.db.WithContext(ctx).Create(rep).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}
