package catalog

import "errors"

var (
	ErrNotFound       = errors.New("gym not found")
	ErrInvalidRequest = errors.New("invalid request")
)
