package catalog

import (
	"math"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/utils"
)

const earthRadiusKm = 6371.0

// CategoryRatings holds per-category review averages.
type CategoryRatings struct {
	Cleanliness   float64 `json:"cleanliness"`
	Equipment     float64 `json:"equipment"`
	Staff         float64 `json:"staff"`
	ValueForMoney float64 `json:"valueForMoney"`
}

// AverageRating returns the mean rounded to one decimal, 0 for no ratings.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return utils.Round1(sum / float64(len(ratings)))
}

// CategoryAverages averages the category scores of reviews that carry all four of them.
func CategoryAverages(reviews []domain.Review) CategoryRatings {
	var acc CategoryRatings
	n := 0
	for _, r := range reviews {
		if !r.HasCategoryScores() {
			continue
		}
		acc.Cleanliness += *r.Cleanliness
		acc.Equipment += *r.Equipment
		acc.Staff += *r.Staff
		acc.ValueForMoney += *r.ValueForMoney
		n++
	}
	if n == 0 {
		return CategoryRatings{}
	}

	d := float64(n)
	return CategoryRatings{
		Cleanliness:   utils.Round1(acc.Cleanliness / d),
		Equipment:     utils.Round1(acc.Equipment / d),
		Staff:         utils.Round1(acc.Staff / d),
		ValueForMoney: utils.Round1(acc.ValueForMoney / d),
	}
}

// RatingHistogram counts ratings into five buckets by floor(rating).
// Out-of-range values are clamped into [1,5] so every rating is counted.
func RatingHistogram(ratings []float64) [5]int {
	var buckets [5]int
	for _, r := range ratings {
		b := int(math.Floor(r))
		if b < 1 {
			b = 1
		}
		if b > 5 {
			b = 5
		}
		buckets[b-1]++
	}
	return buckets
}

// DistanceKm is the haversine distance rounded to one decimal kilometre.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return utils.Round1(earthRadiusKm * c)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// LowestPrice returns the cheapest membership price, nil when there are none.
func LowestPrice(memberships []domain.Membership) *float64 {
	if len(memberships) == 0 {
		return nil
	}
	lowest := memberships[0].Price
	for _, m := range memberships[1:] {
		if m.Price < lowest {
			lowest = m.Price
		}
	}
	return &lowest
}

func ratingsOf(reviews []domain.Review) []float64 {
	out := make([]float64, len(reviews))
	for i, r := range reviews {
		out[i] = r.Rating
	}
	return out
}
