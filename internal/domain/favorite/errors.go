package favorite

import "errors"

var (
	ErrAlreadyFavorited = errors.New("already favorited")
	ErrGymNotFound      = errors.New("gym not found")
	ErrInvalidRequest   = errors.New("invalid request")
)
