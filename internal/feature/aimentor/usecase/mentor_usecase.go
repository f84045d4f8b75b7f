package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"careerinn/internal/feature/auth/domain/entity"
)

const (
	// SystemPrompt is sent ahead of every conversation.
	SystemPrompt = "You are a helpful career mentor."

	// LockNotice is appended instead of calling the provider once the free chat is spent.
	LockNotice = "Your free AI chat ended. Subscribe for more."

	// NotConfiguredReply is the canned answer when no provider key is set.
	NotConfiguredReply = "AI is not configured. Set GROQ_API_KEY or use demo content."
)

// State is the conversation state derived from history and quota.
type State string

const (
	StateFresh  State = "FRESH"
	StateActive State = "ACTIVE"
	StateLocked State = "LOCKED"
)

// CompletionProvider produces the assistant's next message for a conversation.
type CompletionProvider interface {
	Complete(ctx context.Context, systemPrompt string, history []entity.ChatMessage) (string, error)
}

// QuotaService answers and records the single free chat.
type QuotaService interface {
	HasFreeQuotaRemaining(ctx context.Context, userID uint) (bool, error)
	ConsumeFreeQuota(ctx context.Context, userID uint) error
}

// SessionRepository loads and stores the session holding the history.
type SessionRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
}

// NullProvider answers every turn with NotConfiguredReply.
type NullProvider struct{}

// Complete returns NotConfiguredReply without any network call.
func (NullProvider) Complete(context.Context, string, []entity.ChatMessage) (string, error) {
	return NotConfiguredReply, nil
}

type mentorUsecase struct {
	provider CompletionProvider
	quota    QuotaService
	sessions SessionRepository
}

// NewMentorUsecase wires the AI mentor. A nil provider falls back to NullProvider.
func NewMentorUsecase(provider CompletionProvider, quota QuotaService, sessions SessionRepository) *mentorUsecase {
	if provider == nil {
		provider = NullProvider{}
	}
	return &mentorUsecase{provider: provider, quota: quota, sessions: sessions}
}

// SubmitTurn runs one chat turn and returns the updated history.
//
// A spent quota appends LockNotice and never reaches the provider. Blank text is
// ignored. Otherwise the user message and the provider's reply (or "AI error: ...")
// are appended. The provider is called exactly once, with no retry.
func (u *mentorUsecase) SubmitTurn(ctx context.Context, sessionID, text string) ([]entity.ChatMessage, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	remaining, err := u.quota.HasFreeQuotaRemaining(ctx, session.UserID)
	if err != nil {
		return session.History, fmt.Errorf("failed to check free quota: %w", err)
	}

	if !remaining {
		session.Append(entity.RoleAssistant, LockNotice)
		return u.save(ctx, session)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return session.History, nil
	}

	session.Append(entity.RoleUser, text)
	reply, err := u.provider.Complete(ctx, SystemPrompt, session.History)
	if err != nil {
		slog.Warn("ai completion failed", "error", fmt.Errorf("%w: %w", ErrExternalService, err), "user_id", session.UserID)
		reply = "AI error: " + err.Error()
	}
	session.Append(entity.RoleAssistant, reply)
	return u.save(ctx, session)
}

// EndAndLock spends the free chat and clears the history.
func (u *mentorUsecase) EndAndLock(ctx context.Context, sessionID string) error {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := u.quota.ConsumeFreeQuota(ctx, session.UserID); err != nil {
		return err
	}
	session.ResetHistory()
	if err := u.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	slog.Info("free ai chat locked", "user_id", session.UserID)
	return nil
}

// ClearHistory empties the conversation without touching the quota.
func (u *mentorUsecase) ClearHistory(ctx context.Context, sessionID string) error {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	session.ResetHistory()
	if err := u.sessions.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Conversation returns the history and the state it is in.
func (u *mentorUsecase) Conversation(ctx context.Context, sessionID string) ([]entity.ChatMessage, State, error) {
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	remaining, err := u.quota.HasFreeQuotaRemaining(ctx, session.UserID)
	if err != nil {
		return session.History, "", fmt.Errorf("failed to check free quota: %w", err)
	}
	switch {
	case !remaining:
		return session.History, StateLocked, nil
	case len(session.History) == 0:
		return session.History, StateFresh, nil
	default:
		return session.History, StateActive, nil
	}
}

func (u *mentorUsecase) save(ctx context.Context, session *entity.Session) ([]entity.ChatMessage, error) {
	if err := u.sessions.Save(ctx, session); err != nil {
		return session.History, fmt.Errorf("failed to save session: %w", err)
	}
	return session.History, nil
}
