package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"findmygym/internal/domain"

	"gorm.io/gorm"
)

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

type GymRepository struct {
	db *gorm.DB
}

func NewGymRepository(db *gorm.DB) *GymRepository {
	return &GymRepository{db: db}
}

// withSummary preloads what a listing card needs.
func withSummary(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Amenities").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "gym_id", "rating")
		}).
		Preload("Memberships", func(db *gorm.DB) *gorm.DB {
			return db.Order("price ASC")
		}).
		Preload("Hours", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC")
		})
}

// List returns active gyms matching f and the total match count.
// With paginate=false every match is returned in store order.
func (r *GymRepository) List(ctx context.Context, f ListFilters, paginate bool) ([]domain.Gym, int64, error) {
	var gyms []domain.Gym
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Gym{}).
		Where("is_active = ?", true)

	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.PriceRange != "" {
		q = q.Where("price_range = ?", f.PriceRange)
	}
	if s := strings.ToLower(f.Query); s != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(s)+"%")
	}
	// Subquery instead of JOIN keeps one row per gym.
	if len(f.Amenities) > 0 {
		sub := r.db.WithContext(ctx).Model(&domain.GymAmenity{}).
			Select("gym_id").
			Where("amenity_name IN ?", f.Amenities)
		q = q.Where("id IN (?)", sub)
	}

	countQuery := q.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count gyms: %w", err)
	}

	q = withSummary(q.Order(f.orderClause()))
	if paginate {
		q = q.Limit(f.Limit).Offset(f.Offset())
	}
	if err := q.Find(&gyms).Error; err != nil {
		return nil, 0, fmt.Errorf("list gyms: %w", err)
	}
	return gyms, total, nil
}

// ListActive returns every active gym with summary relations.
func (r *GymRepository) ListActive(ctx context.Context) ([]domain.Gym, error) {
	var gyms []domain.Gym
	err := withSummary(r.db.WithContext(ctx).Where("is_active = ?", true).Order("created_at DESC, id DESC")).
		Find(&gyms).Error
	if err != nil {
		return nil, fmt.Errorf("list active gyms: %w", err)
	}
	return gyms, nil
}

// GetBySlug loads a gym with every relation in display order.
func (r *GymRepository) GetBySlug(ctx context.Context, slug string) (*domain.Gym, error) {
	var gym domain.Gym
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		Preload("Hours", func(db *gorm.DB) *gorm.DB { return db.Order("day_of_week ASC") }).
		Preload("Amenities").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Memberships", func(db *gorm.DB) *gorm.DB { return db.Order("price ASC") }).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC, id DESC") }).
		Preload("Reviews.User").
		Preload("Classes", func(db *gorm.DB) *gorm.DB { return db.Order("day_of_week ASC, start_time ASC") }).
		First(&gym).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get gym %q: %w", slug, err)
	}
	return &gym, nil
}

// GetBySlugs returns the active gyms among slugs, in no particular order.
func (r *GymRepository) GetBySlugs(ctx context.Context, slugs []string) ([]domain.Gym, error) {
	var gyms []domain.Gym
	err := withSummary(r.db.WithContext(ctx).Where("slug IN ? AND is_active = ?", slugs, true)).
		Find(&gyms).Error
	if err != nil {
		return nil, fmt.Errorf("get gyms by slug: %w", err)
	}
	return gyms, nil
}

// GetByIDs returns the active gyms among ids, in no particular order.
func (r *GymRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Gym, error) {
	if len(ids) == 0 {
		return []domain.Gym{}, nil
	}
	var gyms []domain.Gym
	err := withSummary(r.db.WithContext(ctx).Where("id IN ? AND is_active = ?", ids, true)).
		Find(&gyms).Error
	if err != nil {
		return nil, fmt.Errorf("get gyms by id: %w", err)
	}
	return gyms, nil
}
