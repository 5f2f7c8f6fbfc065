package catalog

import (
	"findmygym/internal/domain"
	"findmygym/internal/domain/review"
	"findmygym/internal/pkg/utils"
)

// GymSummary is the card representation used by listings, featured and favorites.
type GymSummary struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Description      string            `json:"description"`
	Address          string            `json:"address"`
	Lat              float64           `json:"lat"`
	Lng              float64           `json:"lng"`
	Phone            *string           `json:"phone"`
	Website          *string           `json:"website"`
	PriceRange       domain.PriceRange `json:"priceRange"`
	Type             domain.GymType    `json:"type"`
	ImageURL         *string           `json:"imageUrl"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"reviewCount"`
	Amenities        []string          `json:"amenities"`
	LowestPrice      *float64          `json:"lowestPrice"`
	LowestPriceLabel string            `json:"lowestPriceLabel,omitempty"`
	Hours            []domain.GymHour  `json:"hours"`
	OpenStatus       OpenStatus        `json:"openStatus"`
	DistanceKm       *float64          `json:"distanceKm,omitempty"`
}

type ListResponse struct {
	Gyms       []GymSummary `json:"gyms"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

// EmptyList is the shape served when the store is unavailable.
func EmptyList() ListResponse {
	return ListResponse{Gyms: []GymSummary{}, Page: 1}
}

type MembershipView struct {
	ID             int64    `json:"id"`
	PlanName       string   `json:"planName"`
	Price          float64  `json:"price"`
	PriceLabel     string   `json:"priceLabel"`
	DurationMonths int      `json:"durationMonths"`
	Features       []string `json:"features"`
	IsPopular      bool     `json:"isPopular"`
}

// GymDetail is a gym with every relation plus its aggregates.
// Reviews and Memberships shadow the embedded relations with richer views.
type GymDetail struct {
	domain.Gym
	Reviews            []review.View    `json:"reviews"`
	Memberships        []MembershipView `json:"memberships"`
	Rating             float64          `json:"rating"`
	ReviewCount        int              `json:"reviewCount"`
	CategoryRatings    CategoryRatings  `json:"categoryRatings"`
	RatingDistribution [5]int           `json:"ratingDistribution"`
	OpenStatus         OpenStatus       `json:"openStatus"`
	LowestPrice        *float64         `json:"lowestPrice"`
}

type CompareGym struct {
	GymSummary
	Memberships []MembershipView `json:"memberships"`
	HasAmenity  map[string]bool  `json:"hasAmenity"`
}

type CompareResponse struct {
	Gyms      []CompareGym `json:"gyms"`
	Amenities []string     `json:"amenities"`
}

func toMembershipViews(ms []domain.Membership) []MembershipView {
	out := make([]MembershipView, 0, len(ms))
	for _, m := range ms {
		out = append(out, MembershipView{
			ID:             m.ID,
			PlanName:       m.PlanName,
			Price:          m.Price,
			PriceLabel:     utils.FormatPrice(m.Price),
			DurationMonths: m.DurationMonths,
			Features:       utils.StringToList(m.Features),
			IsPopular:      m.IsPopular,
		})
	}
	return out
}

func amenityNames(as []domain.GymAmenity) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.AmenityName)
	}
	return out
}
