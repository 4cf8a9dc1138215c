package services

import "errors"

// Error classes the controllers map to HTTP statuses. Anything else returned
// by a service is a store failure.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
