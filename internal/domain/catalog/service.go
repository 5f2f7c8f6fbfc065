package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"findmygym/internal/domain"
	"findmygym/internal/domain/review"
	"findmygym/internal/pkg/utils"

	"github.com/rs/zerolog/log"
)

const (
	FeaturedCount  = 6
	MaxCompareGyms = 3
)

// Store is the read side of the gym catalog.
type Store interface {
	List(ctx context.Context, f ListFilters, paginate bool) ([]domain.Gym, int64, error)
	ListActive(ctx context.Context) ([]domain.Gym, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Gym, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]domain.Gym, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Gym, error)
}

// ViewTracker records that a user opened a gym page.
type ViewTracker interface {
	Track(ctx context.Context, userID, gymID int64) error
}

// FeaturedCache stores the featured list between store reads.
type FeaturedCache interface {
	Get(ctx context.Context) ([]GymSummary, bool)
	Set(ctx context.Context, gyms []GymSummary)
}

type Service struct {
	store    Store
	views    ViewTracker
	featured FeaturedCache
	now      func() time.Time
	loc      *time.Location
}

type Option func(*Service)

func WithViewTracker(v ViewTracker) Option {
	return func(s *Service) { s.views = v }
}

func WithFeaturedCache(c FeaturedCache) Option {
	return func(s *Service) { s.featured = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation evaluates opening hours in loc instead of the clock's own zone.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func (s *Service) clock() time.Time {
	if s.loc != nil {
		return s.now().In(s.loc)
	}
	return s.now()
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List runs the filter, sort and paginate pipeline. Derived filters and sorts are
// applied in memory over the full match set so total reflects what survives them.
func (s *Service) List(ctx context.Context, f ListFilters) (*ListResponse, error) {
	if !f.NeedsDerived() {
		gyms, total, err := s.store.List(ctx, f, true)
		if err != nil {
			return nil, err
		}
		return &ListResponse{
			Gyms:       s.summaries(gyms, f),
			Total:      total,
			Page:       f.Page,
			TotalPages: totalPages(total, f.Limit),
		}, nil
	}

	gyms, _, err := s.store.List(ctx, f, false)
	if err != nil {
		return nil, err
	}

	items := s.summaries(gyms, f)
	if f.MinRating > 0 {
		kept := items[:0]
		for _, g := range items {
			if g.Rating >= f.MinRating {
				kept = append(kept, g)
			}
		}
		items = kept
	}

	switch f.Sort {
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	case SortDistance:
		sort.SliceStable(items, func(i, j int) bool { return *items[i].DistanceKm < *items[j].DistanceKm })
	}

	total := int64(len(items))
	start := min(f.Offset(), len(items))
	end := min(start+f.Limit, len(items))

	return &ListResponse{
		Gyms:       items[start:end],
		Total:      total,
		Page:       f.Page,
		TotalPages: totalPages(total, f.Limit),
	}, nil
}

// Detail loads a gym by slug and records the view for signed-in callers.
func (s *Service) Detail(ctx context.Context, slug string, userID int64) (*GymDetail, error) {
	gym, err := s.store.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if userID > 0 && s.views != nil {
		if err := s.views.Track(ctx, userID, gym.ID); err != nil {
			log.Warn().Err(err).Int64("user_id", userID).Int64("gym_id", gym.ID).Msg("track recent view failed")
		}
	}

	ratings := ratingsOf(gym.Reviews)
	reviews := make([]review.View, 0, len(gym.Reviews))
	for _, r := range gym.Reviews {
		reviews = append(reviews, review.ToView(r))
	}

	detail := &GymDetail{
		Gym:                *gym,
		Reviews:            reviews,
		Memberships:        toMembershipViews(gym.Memberships),
		Rating:             AverageRating(ratings),
		ReviewCount:        len(gym.Reviews),
		CategoryRatings:    CategoryAverages(gym.Reviews),
		RatingDistribution: RatingHistogram(ratings),
		OpenStatus:         IsOpen(gym.Hours, s.clock()),
		LowestPrice:        LowestPrice(gym.Memberships),
	}
	return detail, nil
}

// Featured returns the top rated active gyms, read through the cache when present.
func (s *Service) Featured(ctx context.Context) ([]GymSummary, error) {
	if s.featured != nil {
		if cached, ok := s.featured.Get(ctx); ok {
			now := s.clock()
			for i := range cached {
				cached[i].OpenStatus = IsOpen(cached[i].Hours, now)
			}
			return cached, nil
		}
	}

	gyms, err := s.store.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	items := s.summaries(gyms, ListFilters{})
	sort.SliceStable(items, func(i, j int) bool { return items[i].Rating > items[j].Rating })
	if len(items) > FeaturedCount {
		items = items[:FeaturedCount]
	}

	if s.featured != nil {
		s.featured.Set(ctx, items)
	}
	return items, nil
}

// Compare lines up to three gyms side by side with the union of their amenities.
func (s *Service) Compare(ctx context.Context, slugs []string) (*CompareResponse, error) {
	slugs = dedupe(slugs)
	if len(slugs) == 0 || len(slugs) > MaxCompareGyms {
		return nil, fmt.Errorf("%w: compare needs 1 to %d gyms", ErrInvalidRequest, MaxCompareGyms)
	}

	gyms, err := s.store.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}
	if len(gyms) == 0 {
		return nil, ErrNotFound
	}

	bySlug := make(map[string]domain.Gym, len(gyms))
	union := map[string]struct{}{}
	for _, g := range gyms {
		bySlug[g.Slug] = g
		for _, a := range g.Amenities {
			union[a.AmenityName] = struct{}{}
		}
	}

	amenities := make([]string, 0, len(union))
	for name := range union {
		amenities = append(amenities, name)
	}
	sort.Strings(amenities)

	now := s.clock()
	out := &CompareResponse{Gyms: make([]CompareGym, 0, len(gyms)), Amenities: amenities}
	for _, slug := range slugs {
		g, ok := bySlug[slug]
		if !ok {
			continue
		}
		has := make(map[string]bool, len(amenities))
		for _, name := range amenities {
			has[name] = false
		}
		for _, a := range g.Amenities {
			has[a.AmenityName] = true
		}
		out.Gyms = append(out.Gyms, CompareGym{
			GymSummary:  summarize(g, ListFilters{}, now),
			Memberships: toMembershipViews(g.Memberships),
			HasAmenity:  has,
		})
	}
	return out, nil
}

// Summaries returns cards for ids in the order given, skipping unknown or inactive gyms.
func (s *Service) Summaries(ctx context.Context, ids []int64) ([]GymSummary, error) {
	gyms, err := s.store.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]domain.Gym, len(gyms))
	for _, g := range gyms {
		byID[g.ID] = g
	}

	now := s.clock()
	out := make([]GymSummary, 0, len(ids))
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			out = append(out, summarize(g, ListFilters{}, now))
		}
	}
	return out, nil
}

func (s *Service) summaries(gyms []domain.Gym, f ListFilters) []GymSummary {
	now := s.clock()
	out := make([]GymSummary, 0, len(gyms))
	for _, g := range gyms {
		out = append(out, summarize(g, f, now))
	}
	return out
}

// Summarize builds the card for a gym loaded with summary relations.
func Summarize(g domain.Gym, now time.Time) GymSummary {
	return summarize(g, ListFilters{}, now)
}

func summarize(g domain.Gym, f ListFilters, now time.Time) GymSummary {
	hours := g.Hours
	if hours == nil {
		hours = []domain.GymHour{}
	}

	item := GymSummary{
		ID:          g.ID,
		Name:        g.Name,
		Slug:        g.Slug,
		Description: g.Description,
		Address:     g.Address,
		Lat:         g.Lat,
		Lng:         g.Lng,
		Phone:       g.Phone,
		Website:     g.Website,
		PriceRange:  g.PriceRange,
		Type:        g.Type,
		ImageURL:    g.ImageURL,
		Rating:      AverageRating(ratingsOf(g.Reviews)),
		ReviewCount: len(g.Reviews),
		Amenities:   amenityNames(g.Amenities),
		LowestPrice: LowestPrice(g.Memberships),
		Hours:       hours,
		OpenStatus:  IsOpen(hours, now),
	}
	if item.LowestPrice != nil {
		item.LowestPriceLabel = utils.FormatPrice(*item.LowestPrice)
	}
	if f.HasLocation() {
		d := DistanceKm(*f.Lat, *f.Lng, g.Lat, g.Lng)
		item.DistanceKm = &d
	}
	return item
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// ParseSlugs splits a comma separated slug list.
func ParseSlugs(raw string) []string {
	out := []string{}
	for _, s := range utils.SplitCSV(raw) {
		out = append(out, strings.ToLower(s))
	}
	return out
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
