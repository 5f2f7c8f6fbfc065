package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/utils"
)

const (
	DefaultLimit = 12
	MaxLimit     = 50
)

const (
	SortRating    = "rating"
	SortName      = "name"
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortDistance  = "distance"
)

// ListFilters is the typed form of the gym listing query string.
type ListFilters struct {
	Page       int
	Limit      int
	Sort       string
	Type       domain.GymType
	PriceRange domain.PriceRange
	Query      string
	MinRating  float64
	Amenities  []string
	Lat        *float64
	Lng        *float64
}

// ParseListFilters reads the listing query string. Malformed numbers fall back to
// defaults instead of failing the request.
func ParseListFilters(q url.Values) ListFilters {
	f := ListFilters{
		Page:       1,
		Limit:      DefaultLimit,
		Sort:       SortRating,
		Type:       domain.GymType(strings.TrimSpace(q.Get("type"))),
		PriceRange: domain.PriceRange(strings.TrimSpace(q.Get("priceRange"))),
		Query:      strings.TrimSpace(q.Get("q")),
		Amenities:  utils.SplitCSV(q.Get("amenities")),
	}

	if v, err := strconv.Atoi(q.Get("page")); err == nil && v > 0 {
		f.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		f.Limit = min(v, MaxLimit)
	}
	if v, err := strconv.ParseFloat(q.Get("minRating"), 64); err == nil && v > 0 {
		f.MinRating = v
	}

	lat, latErr := strconv.ParseFloat(q.Get("lat"), 64)
	lng, lngErr := strconv.ParseFloat(q.Get("lng"), 64)
	if latErr == nil && lngErr == nil {
		f.Lat, f.Lng = &lat, &lng
	}

	switch s := strings.ToLower(strings.TrimSpace(q.Get("sort"))); s {
	case SortName, SortNewest, SortPriceLow, SortPriceHigh, SortRating:
		f.Sort = s
	case SortDistance:
		if f.HasLocation() {
			f.Sort = s
		}
	}

	return f
}

func (f ListFilters) HasLocation() bool {
	return f.Lat != nil && f.Lng != nil
}

// NeedsDerived reports whether filtering or ordering depends on values computed
// after the query, which forces in-memory pagination.
func (f ListFilters) NeedsDerived() bool {
	return f.Sort == SortRating || f.Sort == SortDistance || f.MinRating > 0
}

func (f ListFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// orderClause maps the sort key to a store-level ORDER BY. Derived sorts keep the
// default recency order and are re-sorted after aggregation.
func (f ListFilters) orderClause() string {
	switch f.Sort {
	case SortName:
		return "name ASC, id ASC"
	case SortNewest:
		return "created_at DESC, id DESC"
	case SortPriceLow:
		return "price_range ASC, id DESC"
	case SortPriceHigh:
		return "price_range DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}
