package domain

import "errors"

var (
	// ErrInvalidInput is returned before any scoring when a request is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDataUnavailable is returned when a user's own profile or history cannot be read.
	ErrDataUnavailable = errors.New("user data unavailable")
	// ErrPersistFailure is returned when a profile update could not be saved.
	ErrPersistFailure = errors.New("failed to persist profile")
	// ErrRouteNotFound is returned by catalog lookups.
	ErrRouteNotFound = errors.New("route not found")
)
