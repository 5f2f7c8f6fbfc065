package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"findmygym/internal/domain"
	"findmygym/internal/domain/auth"
	"findmygym/internal/pkg/utils"
	"findmygym/internal/tasktracker"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const seedPassword = "password123"

var priceMultiplier = map[domain.PriceRange]float64{
	domain.PriceBudget:  0.5,
	domain.PriceMid:     1,
	domain.PricePremium: 2,
}

type planSeed struct {
	Name     string
	Price    float64
	Months   int
	Features string
	Popular  bool
}

var plans = []planSeed{
	{"Day Pass", 200, 0, `["gym_access"]`, false},
	{"Monthly", 1500, 1, `["gym_access","locker"]`, false},
	{"Quarterly", 4000, 3, `["gym_access","locker","group_classes"]`, true},
	{"Annual", 12000, 12, `["gym_access","locker","group_classes","personal_trainer_1_session"]`, false},
}

// clearOrder deletes children before parents.
var clearOrder = []string{
	"review_reports", "review_helpfuls", "deals", "bookings", "favorites", "reviews",
	"gym_classes", "memberships", "gym_photos", "gym_amenities", "gym_hours", "gyms",
	"users", "project_tasks",
}

type Summary struct {
	Users, Gyms, Hours, Amenities, Memberships, Photos, Reviews, Classes, Deals, Tasks int64
}

type Seeder struct {
	db     *gorm.DB
	rng    *rand.Rand
	now    time.Time
	logger *zerolog.Logger
	// tasksPath may point to a missing file; project tasks are then skipped.
	tasksPath string
}

func (s *Seeder) intn(lo, hi int) int {
	return s.rng.Intn(hi-lo+1) + lo
}

// float1 returns a value in [lo, hi] rounded to one decimal.
func (s *Seeder) float1(lo, hi float64) float64 {
	return math.Round((s.rng.Float64()*(hi-lo)+lo)*10) / 10
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

func subset[T any](rng *rand.Rand, items []T, n int) []T {
	shuffled := append([]T(nil), items...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled[:min(n, len(shuffled))]
}

func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	db := s.db.WithContext(ctx)

	s.logger.Info().Msg("clearing existing data")
	for _, table := range clearOrder {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return Summary{}, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	var users []domain.User
	var gyms []domain.Gym
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		if users, err = s.seedUsers(tx); err != nil {
			return err
		}
		if gyms, err = s.seedGyms(tx); err != nil {
			return err
		}
		for _, step := range []func(*gorm.DB, []domain.Gym) error{
			s.seedHours, s.seedAmenities, s.seedMemberships, s.seedPhotos, s.seedClasses, s.seedDeals,
		} {
			if err := step(tx, gyms); err != nil {
				return err
			}
		}
		return s.seedReviews(tx, gyms, users)
	})
	if err != nil {
		return Summary{}, err
	}

	if err := s.seedProjectTasks(ctx); err != nil {
		return Summary{}, err
	}
	return s.summary(db)
}

func (s *Seeder) seedUsers(tx *gorm.DB) ([]domain.User, error) {
	hash, err := auth.HashPassword(seedPassword)
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, 0, len(userSeeds))
	for _, u := range userSeeds {
		goals, workouts, budget := u.FitnessGoals, u.PreferredWorkouts, u.BudgetRange
		users = append(users, domain.User{
			Name:              u.Name,
			Email:             u.Email,
			PasswordHash:      hash,
			Role:              domain.RoleMember,
			FitnessGoals:      &goals,
			PreferredWorkouts: &workouts,
			BudgetRange:       &budget,
		})
	}
	if err := tx.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return users, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func (s *Seeder) seedGyms(tx *gorm.DB) ([]domain.Gym, error) {
	gyms := make([]domain.Gym, 0, len(gymSeeds))
	for _, g := range gymSeeds {
		slug := g.Slug
		if slug == "" {
			slug = utils.Slugify(g.Name)
		}
		gyms = append(gyms, domain.Gym{
			Name:        g.Name,
			Slug:        slug,
			Description: g.Description,
			Address:     g.Address,
			Lat:         g.Lat,
			Lng:         g.Lng,
			Phone:       optional(g.Phone),
			Website:     optional(g.Website),
			PriceRange:  g.PriceRange,
			Type:        g.Type,
			ImageURL:    optional(g.ImageURL),
			IsActive:    true,
		})
	}
	if err := tx.Create(&gyms).Error; err != nil {
		return nil, fmt.Errorf("seed gyms: %w", err)
	}
	return gyms, nil
}

// seedHours opens Sunday 08:00-18:00 and every other day 06:00-22:00.
func (s *Seeder) seedHours(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.GymHour
	for _, g := range gyms {
		for day := 0; day < 7; day++ {
			open, closing := "06:00", "22:00"
			if day == int(time.Sunday) {
				open, closing = "08:00", "18:00"
			}
			rows = append(rows, domain.GymHour{GymID: g.ID, DayOfWeek: day, OpenTime: open, CloseTime: closing})
		}
	}
	return create(tx, "hours", rows)
}

func (s *Seeder) seedAmenities(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.GymAmenity
	for _, g := range gyms {
		n := s.intn(6, 12)
		if g.Type == domain.GymBudget {
			n = s.intn(4, 6)
		}
		for _, a := range subset(s.rng, amenityPool, n) {
			rows = append(rows, domain.GymAmenity{GymID: g.ID, AmenityName: a.Name, Icon: a.Icon})
		}
	}
	return create(tx, "amenities", rows)
}

func (s *Seeder) seedMemberships(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.Membership
	for _, g := range gyms {
		mult, ok := priceMultiplier[g.PriceRange]
		if !ok {
			mult = 1
		}
		for _, p := range plans {
			rows = append(rows, domain.Membership{
				GymID:          g.ID,
				PlanName:       p.Name,
				Price:          math.Round(p.Price * mult),
				DurationMonths: p.Months,
				Features:       p.Features,
				IsPopular:      p.Popular,
			})
		}
	}
	return create(tx, "memberships", rows)
}

func (s *Seeder) seedPhotos(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.GymPhoto
	for _, g := range gyms {
		if g.ImageURL != nil {
			rows = append(rows, domain.GymPhoto{GymID: g.ID, URL: *g.ImageURL, Caption: "Main entrance", IsPrimary: true})
		}
		extra := s.intn(2, 4)
		for i := 0; i < extra; i++ {
			rows = append(rows, domain.GymPhoto{
				GymID:   g.ID,
				URL:     pick(s.rng, stockPhotos),
				Caption: fmt.Sprintf("Photo %d", i+1),
				Order:   i + 1,
			})
		}
	}
	return create(tx, "photos", rows)
}

func (s *Seeder) seedReviews(tx *gorm.DB, gyms []domain.Gym, users []domain.User) error {
	var rows []domain.Review
	for _, g := range gyms {
		for _, u := range subset(s.rng, users, s.intn(3, 7)) {
			clean, equip, staff, value := s.float1(2, 5), s.float1(2, 5), s.float1(2, 5), s.float1(2, 5)
			rows = append(rows, domain.Review{
				GymID:         g.ID,
				UserID:        u.ID,
				Rating:        s.float1(2.5, 5),
				Cleanliness:   &clean,
				Equipment:     &equip,
				Staff:         &staff,
				ValueForMoney: &value,
				Text:          pick(s.rng, reviewTexts),
				HelpfulCount:  s.intn(0, 15),
				IsVerified:    s.rng.Float64() > 0.5,
			})
		}
	}
	return create(tx, "reviews", rows)
}

// seedClasses skips budget gyms.
func (s *Seeder) seedClasses(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.GymClass
	for _, g := range gyms {
		if g.Type == domain.GymBudget {
			continue
		}
		for _, c := range subset(s.rng, classTypes, s.intn(3, 6)) {
			start := s.intn(6, 18) * 60
			end := start + c.Minutes
			rows = append(rows, domain.GymClass{
				GymID:      g.ID,
				ClassName:  c.Name,
				Instructor: pick(s.rng, instructors),
				DayOfWeek:  s.intn(1, 6),
				StartTime:  clock(start),
				EndTime:    clock(end),
				Capacity:   s.intn(10, 30),
				Category:   c.Category,
			})
		}
	}
	return create(tx, "classes", rows)
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// seedDeals gives every fourth gym a live promotion and adds one expired deal.
func (s *Seeder) seedDeals(tx *gorm.DB, gyms []domain.Gym) error {
	var rows []domain.Deal
	for i, g := range gyms {
		if i%4 != 0 {
			continue
		}
		discount := s.intn(2, 8) * 5
		code := fmt.Sprintf("FIT%d", discount)
		rows = append(rows, domain.Deal{
			GymID:       g.ID,
			Title:       fmt.Sprintf("%d%% off at %s", discount, g.Name),
			Description: "Limited-time discount on every membership plan.",
			Discount:    discount,
			Code:        &code,
			ValidFrom:   s.now.AddDate(0, 0, -7),
			ValidUntil:  s.now.AddDate(0, 1, 0),
		})
	}
	if len(gyms) > 1 {
		rows = append(rows, domain.Deal{
			GymID:       gyms[1].ID,
			Title:       "Monsoon offer",
			Description: "Ended last month.",
			Discount:    30,
			ValidFrom:   s.now.AddDate(0, -2, 0),
			ValidUntil:  s.now.AddDate(0, -1, 0),
		})
	}
	return create(tx, "deals", rows)
}

func (s *Seeder) seedProjectTasks(ctx context.Context) error {
	tasks, err := tasktracker.Load(s.tasksPath)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.tasksPath).Msg("skipping project tasks")
		return nil
	}
	_, err = tasktracker.Sync(ctx, s.db, tasks)
	return err
}

func create[T any](tx *gorm.DB, what string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
		return fmt.Errorf("seed %s: %w", what, err)
	}
	return nil
}

func (s *Seeder) summary(db *gorm.DB) (Summary, error) {
	var sum Summary
	for _, c := range []struct {
		model any
		dst   *int64
	}{
		{&domain.User{}, &sum.Users},
		{&domain.Gym{}, &sum.Gyms},
		{&domain.GymHour{}, &sum.Hours},
		{&domain.GymAmenity{}, &sum.Amenities},
		{&domain.Membership{}, &sum.Memberships},
		{&domain.GymPhoto{}, &sum.Photos},
		{&domain.Review{}, &sum.Reviews},
		{&domain.GymClass{}, &sum.Classes},
		{&domain.Deal{}, &sum.Deals},
		{&domain.ProjectTask{}, &sum.Tasks},
	} {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return Summary{}, fmt.Errorf("count: %w", err)
		}
	}
	return sum, nil
}

func (sum Summary) Print(w io.Writer) {
	fmt.Fprintln(w, "\nSeed complete")
	for _, row := range []struct {
		label string
		n     int64
	}{
		{"Users", sum.Users},
		{"Gyms", sum.Gyms},
		{"Hours", sum.Hours},
		{"Amenities", sum.Amenities},
		{"Memberships", sum.Memberships},
		{"Photos", sum.Photos},
		{"Reviews", sum.Reviews},
		{"Classes", sum.Classes},
		{"Deals", sum.Deals},
		{"Tasks", sum.Tasks},
	} {
		fmt.Fprintf(w, "  %-13s %4d\n", row.label+":", row.n)
	}
}
