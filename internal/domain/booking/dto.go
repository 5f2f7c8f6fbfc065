package booking

import "findmygym/internal/domain"

type CreateBookingRequest struct {
	GymID       int64   `json:"gymId" validate:"required,gt=0"`
	BookingType string  `json:"bookingType" validate:"required,max=30"`
	Date        string  `json:"date" validate:"required"`
	TimeSlot    *string `json:"timeSlot"`
	Notes       *string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

type GymRef struct {
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Address  string  `json:"address"`
	ImageURL *string `json:"imageUrl"`
	Phone    *string `json:"phone"`
}

// View is a booking with the gym fields shown in booking lists.
type View struct {
	domain.Booking
	Gym *GymRef `json:"gym"`
}

func ToView(b domain.Booking) View {
	v := View{Booking: b}
	if b.Gym != nil {
		v.Gym = &GymRef{
			Name:     b.Gym.Name,
			Slug:     b.Gym.Slug,
			Address:  b.Gym.Address,
			ImageURL: b.Gym.ImageURL,
			Phone:    b.Gym.Phone,
		}
	}
	return v
}
