// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
type User struct {
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the page header.
	Name string `gorm:"size:120;not null"`

	// Email is stored trimmed and lower-cased, unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash. Never plaintext.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
