package adapters

import (
	"time"

	"gorm.io/datatypes"

	"careerinn/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessions table.
type SessionModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	UserID      uint   `gorm:"index;not null"`
	DisplayName string `gorm:"size:120"`
	History     datatypes.JSONSlice[entity.ChatMessage]
	CreatedAt   time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	history := make([]entity.ChatMessage, len(m.History))
	copy(history, m.History)
	return &entity.Session{
		ID:          m.ID,
		UserID:      m.UserID,
		DisplayName: m.DisplayName,
		History:     history,
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	history := datatypes.JSONSlice[entity.ChatMessage]{}
	history = append(history, s.History...)
	return &SessionModel{
		ID:          s.ID,
		UserID:      s.UserID,
		DisplayName: s.DisplayName,
		History:     history,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
}
