// Package usecase implements subscription and free-quota bookkeeping.
package usecase

import "errors"

var (
	// ErrUnauthenticated is returned when an operation needs a logged-in user.
	ErrUnauthenticated = errors.New("login required")

	// ErrNotFound is returned by repositories when the user has no row yet.
	ErrNotFound = errors.New("record not found")
)
