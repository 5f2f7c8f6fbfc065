package domain

import "time"

// Review is a user's rating of a gym. The four category scores are optional and only
// count towards category averages when all of them are set.
type Review struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	GymID         int64     `json:"gymId" gorm:"not null;index"`
	UserID        int64     `json:"userId" gorm:"not null;index"`
	Rating        float64   `json:"rating" gorm:"not null"`
	Cleanliness   *float64  `json:"cleanliness"`
	Equipment     *float64  `json:"equipment"`
	Staff         *float64  `json:"staff"`
	ValueForMoney *float64  `json:"valueForMoney"`
	Text          string    `json:"text" gorm:"type:text"`
	HelpfulCount  int       `json:"helpfulCount" gorm:"not null;default:0"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User *User `json:"-" gorm:"foreignKey:UserID"`
	Gym  *Gym  `json:"-" gorm:"foreignKey:GymID"`
}

func (Review) TableName() string {
	return "reviews"
}

// HasCategoryScores reports whether all four category scores are present and non-zero.
func (r Review) HasCategoryScores() bool {
	return nonZero(r.Cleanliness) && nonZero(r.Equipment) && nonZero(r.Staff) && nonZero(r.ValueForMoney)
}

func nonZero(v *float64) bool {
	return v != nil && *v != 0
}

type ReviewHelpful struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ReviewID  int64     `json:"reviewId" gorm:"not null;uniqueIndex:idx_review_helpful_user"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_review_helpful_user"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ReviewHelpful) TableName() string {
	return "review_helpfuls"
}

type ReviewReport struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	ReviewID  int64     `json:"reviewId" gorm:"not null;uniqueIndex:idx_review_report_user"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_review_report_user"`
	Reason    string    `json:"reason" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ReviewReport) TableName() string {
	return "review_reports"
}
