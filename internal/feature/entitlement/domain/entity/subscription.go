// Package entity defines the domain entities for the entitlement feature.
package entity

import "time"

// Subscription records whether a user has paid access. One row per user, never deleted.
type Subscription struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"uniqueIndex;not null"`
	Active      bool `gorm:"not null;default:false"`
	ActivatedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AiUsage tracks the single free AI mentor chat. Used only ever moves from 0 to 1.
type AiUsage struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex;not null"`
	Used      int  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name stable across gorm naming strategies.
func (AiUsage) TableName() string {
	return "ai_usages"
}

// Consumed reports whether the free chat has been used.
func (u *AiUsage) Consumed() bool {
	return u != nil && u.Used > 0
}
