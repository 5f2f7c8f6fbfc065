package auth

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
)
