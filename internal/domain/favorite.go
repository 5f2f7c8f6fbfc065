package domain

import (
	"time"
)

// Favorite is a user's bookmark of a gym. A pair (user, gym) exists at most once.
type Favorite struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"userId" gorm:"not null;index;uniqueIndex:idx_user_gym"`
	GymID     int64     `json:"gymId" gorm:"not null;index;uniqueIndex:idx_user_gym"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	Gym *Gym `json:"-" gorm:"foreignKey:GymID"`
}

func (Favorite) TableName() string {
	return "favorites"
}
