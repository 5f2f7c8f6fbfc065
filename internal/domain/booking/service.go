package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"findmygym/internal/domain"
	"findmygym/internal/pkg/validator"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

type Store interface {
	GymExists(ctx context.Context, gymID int64) (bool, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*View, error) {
	req.BookingType = strings.TrimSpace(req.BookingType)
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	ok, err := s.store.GymExists(ctx, req.GymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrGymNotFound
	}

	b := &domain.Booking{
		UserID:      userID,
		GymID:       req.GymID,
		BookingType: req.BookingType,
		Date:        date,
		TimeSlot:    blankToNil(req.TimeSlot),
		Notes:       blankToNil(req.Notes),
		Status:      domain.BookingPending,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}

	v := ToView(*b)
	return &v, nil
}

func (s *Service) List(ctx context.Context, userID int64) ([]View, error) {
	rows, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]View, 0, len(rows))
	for _, b := range rows {
		out = append(out, ToView(b))
	}
	return out, nil
}

// UpdateStatus sets any of the four statuses on the caller's own booking.
func (s *Service) UpdateStatus(ctx context.Context, userID, bookingID int64, status domain.BookingStatus) (*View, error) {
	b, err := s.store.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	updated, err := s.store.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}
	v := ToView(*updated)
	return &v, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
