package favorite

import "findmygym/internal/domain/catalog"

type AddFavoriteRequest struct {
	GymID int64 `json:"gymId" validate:"required,gt=0"`
}

// Item is a favorited gym card. FavoriteID identifies the bookmark, not the gym.
type Item struct {
	catalog.GymSummary
	FavoriteID int64 `json:"favoriteId"`
}

type ListResponse struct {
	Gyms []Item `json:"gyms"`
}
