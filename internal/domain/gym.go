package domain

import "time"

type PriceRange string

const (
	PriceBudget  PriceRange = "budget"
	PriceMid     PriceRange = "mid"
	PricePremium PriceRange = "premium"
)

type GymType string

const (
	GymCommercial GymType = "commercial"
	GymCrossfit   GymType = "crossfit"
	GymYoga       GymType = "yoga"
	GymWomenOnly  GymType = "women_only"
	Gym24x7       GymType = "24x7"
	GymBudget     GymType = "budget"
)

type Gym struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null;index"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description string     `json:"description" gorm:"type:text"`
	Address     string     `json:"address"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Phone       *string    `json:"phone"`
	Website     *string    `json:"website"`
	PriceRange  PriceRange `json:"priceRange" gorm:"type:varchar(20);index"`
	Type        GymType    `json:"type" gorm:"type:varchar(20);index"`
	ImageURL    *string    `json:"imageUrl"`
	IsActive    bool       `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Relations
	Hours       []GymHour    `json:"hours,omitempty" gorm:"foreignKey:GymID"`
	Amenities   []GymAmenity `json:"amenities,omitempty" gorm:"foreignKey:GymID"`
	Photos      []GymPhoto   `json:"photos,omitempty" gorm:"foreignKey:GymID"`
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:GymID"`
	Classes     []GymClass   `json:"classes,omitempty" gorm:"foreignKey:GymID"`
	Reviews     []Review     `json:"reviews,omitempty" gorm:"foreignKey:GymID"`
}

func (Gym) TableName() string {
	return "gyms"
}

// GymHour is one row of the weekly schedule. DayOfWeek follows time.Weekday (0 = Sunday),
// times are "15:04" strings.
type GymHour struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	GymID     int64  `json:"gymId" gorm:"not null;index"`
	DayOfWeek int    `json:"dayOfWeek" gorm:"not null"`
	OpenTime  string `json:"openTime" gorm:"type:varchar(5)"`
	CloseTime string `json:"closeTime" gorm:"type:varchar(5)"`
	IsClosed  bool   `json:"isClosed"`
}

func (GymHour) TableName() string {
	return "gym_hours"
}

type GymAmenity struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	GymID       int64  `json:"gymId" gorm:"not null;index"`
	AmenityName string `json:"amenityName" gorm:"not null;index"`
	Icon        string `json:"icon"`
}

func (GymAmenity) TableName() string {
	return "gym_amenities"
}

type GymPhoto struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	GymID     int64  `json:"gymId" gorm:"not null;index"`
	URL       string `json:"url" gorm:"not null"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"isPrimary"`
	Order     int    `json:"order" gorm:"column:sort_order"`
}

func (GymPhoto) TableName() string {
	return "gym_photos"
}

// Membership is a purchasable plan. Features is a JSON encoded string list.
type Membership struct {
	ID             int64   `json:"id" gorm:"primaryKey"`
	GymID          int64   `json:"gymId" gorm:"not null;index"`
	PlanName       string  `json:"planName" gorm:"not null"`
	Price          float64 `json:"price"`
	DurationMonths int     `json:"durationMonths"`
	Features       string  `json:"-" gorm:"type:text"`
	IsPopular      bool    `json:"isPopular"`
}

func (Membership) TableName() string {
	return "memberships"
}

type GymClass struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	GymID      int64  `json:"gymId" gorm:"not null;index"`
	ClassName  string `json:"className" gorm:"not null"`
	Instructor string `json:"instructor"`
	DayOfWeek  int    `json:"dayOfWeek"`
	StartTime  string `json:"startTime" gorm:"type:varchar(5)"`
	EndTime    string `json:"endTime" gorm:"type:varchar(5)"`
	Capacity   int    `json:"capacity"`
	Category   string `json:"category"`
}

func (GymClass) TableName() string {
	return "gym_classes"
}
