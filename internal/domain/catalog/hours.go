package catalog

import (
	"time"

	"findmygym/internal/domain"
)

// OpenStatus answers "is the gym open right now".
type OpenStatus struct {
	IsOpen   bool   `json:"isOpen"`
	ClosesAt string `json:"closesAt,omitempty"`
	OpensAt  string `json:"opensAt,omitempty"`
}

// IsOpen evaluates the weekly schedule at now. Times compare as "15:04" strings in
// now's location. When closed, OpensAt is today's opening if it is still ahead,
// otherwise the opening of the next day that is not closed, looking a full week ahead.
func IsOpen(hours []domain.GymHour, now time.Time) OpenStatus {
	today := int(now.Weekday())
	current := now.Format("15:04")

	h, ok := hourFor(hours, today)
	if !ok || h.IsClosed {
		return OpenStatus{OpensAt: nextOpening(hours, today)}
	}

	if h.OpenTime <= current && current < h.CloseTime {
		return OpenStatus{IsOpen: true, ClosesAt: h.CloseTime}
	}
	if current < h.OpenTime {
		return OpenStatus{OpensAt: h.OpenTime}
	}
	return OpenStatus{OpensAt: nextOpening(hours, today)}
}

func hourFor(hours []domain.GymHour, day int) (domain.GymHour, bool) {
	for _, h := range hours {
		if h.DayOfWeek == day {
			return h, true
		}
	}
	return domain.GymHour{}, false
}

func nextOpening(hours []domain.GymHour, today int) string {
	for i := 1; i <= 7; i++ {
		if h, ok := hourFor(hours, (today+i)%7); ok && !h.IsClosed {
			return h.OpenTime
		}
	}
	return ""
}
