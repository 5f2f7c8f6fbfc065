package booking

import "errors"

var (
	ErrValidation    = errors.New("validation error")
	ErrInvalidStatus = errors.New("invalid status")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("not_found")
	ErrGymNotFound   = errors.New("gym_not_found")
)
