// Package usecase implements reading and editing user profiles.
package usecase

import "errors"

var (
	// ErrInvalidRating is returned when the self rating is outside 0..5.
	ErrInvalidRating = errors.New("self rating must be between 0 and 5")

	// ErrNotFound is returned by repositories when the user has no profile yet.
	ErrNotFound = errors.New("profile not found")

	ErrUnauthenticated = errors.New("login required")
)
