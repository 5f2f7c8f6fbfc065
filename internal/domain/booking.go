package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a trial visit or inquiry requested by a user. Status transitions are not
// constrained: any status may be set to any other.
type Booking struct {
	ID          int64         `json:"id" gorm:"primaryKey"`
	UserID      int64         `json:"userId" gorm:"not null;index"`
	GymID       int64         `json:"gymId" gorm:"not null;index"`
	BookingType string        `json:"bookingType" gorm:"type:varchar(30);not null"`
	Date        time.Time     `json:"date" gorm:"not null"`
	TimeSlot    *string       `json:"timeSlot"`
	Notes       *string       `json:"notes" gorm:"type:text"`
	Status      BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	Gym *Gym `json:"-" gorm:"foreignKey:GymID"`
}

func (Booking) TableName() string {
	return "bookings"
}
