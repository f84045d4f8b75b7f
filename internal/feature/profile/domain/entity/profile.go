// Package entity defines the user's career profile.
package entity

import "time"

// MaxSelfRating is the top of the self-assessment scale.
const MaxSelfRating = 5

// Profile holds what a user tells us about their skills and goals. One row per user.
type Profile struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"uniqueIndex;not null"`
	SkillsText  string `gorm:"type:text"`
	TargetRoles string `gorm:"size:300"`
	ResumeLink  string `gorm:"size:500"`
	Notes       string `gorm:"type:text"`
	SelfRating  int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Profile) TableName() string { return "user_profiles" }
