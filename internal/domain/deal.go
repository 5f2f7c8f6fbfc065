package domain

import "time"

// Deal is a time-boxed promotion offered by a gym. Discount is a percentage.
type Deal struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	GymID       int64     `json:"gymId" gorm:"not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Discount    int       `json:"discount"`
	Code        *string   `json:"code"`
	ValidFrom   time.Time `json:"validFrom" gorm:"not null"`
	ValidUntil  time.Time `json:"validUntil" gorm:"not null;index"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"createdAt"`

	Gym *Gym `json:"-" gorm:"foreignKey:GymID"`
}

func (Deal) TableName() string {
	return "deals"
}
