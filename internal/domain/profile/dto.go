package profile

import (
	"time"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/utils"
)

type Counts struct {
	Reviews   int64 `json:"reviews"`
	Favorites int64 `json:"favorites"`
	Bookings  int64 `json:"bookings"`
}

type Profile struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Avatar            *string   `json:"avatar"`
	FitnessGoals      []string  `json:"fitnessGoals"`
	PreferredWorkouts []string  `json:"preferredWorkouts"`
	BudgetRange       *string   `json:"budgetRange"`
	CreatedAt         time.Time `json:"createdAt"`
	Counts            *Counts   `json:"counts,omitempty"`
}

func toProfile(u *domain.User) *Profile {
	return &Profile{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Avatar:            u.Avatar,
		FitnessGoals:      decodeList(u.FitnessGoals),
		PreferredWorkouts: decodeList(u.PreferredWorkouts),
		BudgetRange:       u.BudgetRange,
		CreatedAt:         u.CreatedAt,
	}
}

func decodeList(s *string) []string {
	if s == nil {
		return []string{}
	}
	return utils.StringToList(*s)
}

// UpdateProfileRequest is a partial update. Absent fields are left alone; name is
// only applied when non-empty.
type UpdateProfileRequest struct {
	Name              *string   `json:"name"`
	FitnessGoals      *[]string `json:"fitnessGoals"`
	PreferredWorkouts *[]string `json:"preferredWorkouts"`
	BudgetRange       *string   `json:"budgetRange"`
}

type GymRef struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Address string `json:"address"`
}

type UserReview struct {
	domain.Review
	Gym *GymRef `json:"gym"`
}

func toUserReview(rv domain.Review) UserReview {
	v := UserReview{Review: rv}
	if rv.Gym != nil {
		v.Gym = &GymRef{Name: rv.Gym.Name, Slug: rv.Gym.Slug, Address: rv.Gym.Address}
	}
	return v
}
