package domain

import "time"

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

// User is a registered FindMyGym account.
// FitnessGoals and PreferredWorkouts hold JSON encoded string lists.
type User struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash      string    `json:"-" gorm:"not null"`
	Role              UserRole  `json:"role" gorm:"type:varchar(20);default:member"`
	Avatar            *string   `json:"avatar"`
	FitnessGoals      *string   `json:"fitnessGoals" gorm:"type:text"`
	PreferredWorkouts *string   `json:"preferredWorkouts" gorm:"type:text"`
	BudgetRange       *string   `json:"budgetRange"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// UserRef is the public face of a user embedded in reviews.
type UserRef struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}
