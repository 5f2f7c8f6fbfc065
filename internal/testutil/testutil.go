// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"findmygym/internal/database"
	"findmygym/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// NewDB opens a private shared-cache in-memory SQLite database with all tables migrated.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: email, PasswordHash: "x", Role: domain.RoleMember}
	require.NoError(t, db.Create(u).Error)
	return u
}

// GymOption customizes a gym before it is inserted.
type GymOption func(g *domain.Gym)

func WithType(tp domain.GymType) GymOption {
	return func(g *domain.Gym) { g.Type = tp }
}

func WithPrice(p domain.PriceRange) GymOption {
	return func(g *domain.Gym) { g.PriceRange = p }
}

func WithName(name string) GymOption {
	return func(g *domain.Gym) { g.Name = name }
}

func WithLocation(lat, lng float64) GymOption {
	return func(g *domain.Gym) { g.Lat, g.Lng = lat, lng }
}

func WithCreatedAt(ts time.Time) GymOption {
	return func(g *domain.Gym) { g.CreatedAt = ts }
}

func WithAmenities(names ...string) GymOption {
	return func(g *domain.Gym) {
		for _, n := range names {
			g.Amenities = append(g.Amenities, domain.GymAmenity{AmenityName: n})
		}
	}
}

func WithMemberships(prices ...float64) GymOption {
	return func(g *domain.Gym) {
		for i, p := range prices {
			g.Memberships = append(g.Memberships, domain.Membership{
				PlanName: "Plan " + strconv.Itoa(i+1),
				Price:    p,
				Features: `["gym_access"]`,
			})
		}
	}
}

// WithWeekHours opens the gym every day between open and close.
func WithWeekHours(open, close string) GymOption {
	return func(g *domain.Gym) {
		for d := 0; d < 7; d++ {
			g.Hours = append(g.Hours, domain.GymHour{DayOfWeek: d, OpenTime: open, CloseTime: close})
		}
	}
}

// CreateGym inserts an active gym with the given slug; the name is derived from the slug.
func CreateGym(t testing.TB, db *gorm.DB, slug string, opts ...GymOption) *domain.Gym {
	t.Helper()
	g := &domain.Gym{
		Name:       strings.ReplaceAll(slug, "-", " "),
		Slug:       slug,
		Address:    "1 Test Road, Bangalore",
		Lat:        12.9716,
		Lng:        77.5946,
		PriceRange: domain.PriceMid,
		Type:       domain.GymCommercial,
		IsActive:   true,
	}
	for _, opt := range opts {
		opt(g)
	}
	require.NoError(t, db.Create(g).Error)
	return g
}

// Deactivate flips is_active off; a plain Create cannot store false over the column default.
func Deactivate(t testing.TB, db *gorm.DB, gymID int64) {
	t.Helper()
	require.NoError(t, db.Model(&domain.Gym{}).Where("id = ?", gymID).Update("is_active", false).Error)
}

func CreateReview(t testing.TB, db *gorm.DB, gymID, userID int64, rating float64) *domain.Review {
	t.Helper()
	r := &domain.Review{GymID: gymID, UserID: userID, Rating: rating, Text: "solid gym"}
	require.NoError(t, db.Create(r).Error)
	return r
}

func Float(v float64) *float64 {
	return &v
}

func String(v string) *string {
	return &v
}

// HeaderAuth stands in for JWT auth: it copies X-Test-User-ID into the gin context.
func HeaderAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader("X-Test-User-ID"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
				c.Set("user_id", id)
				c.Set("role", string(domain.RoleMember))
			}
		}
		c.Next()
	}
}

// NewMockDB returns a gorm handle over go-sqlmock speaking the PostgreSQL dialect.
func NewMockDB(t testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}
