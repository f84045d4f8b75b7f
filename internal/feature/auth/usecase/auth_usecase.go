package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"careerinn/internal/feature/auth/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps login timing constant when the email is unknown.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the credential store.
type UserRepository interface {
	// Create persists a new user. Returns ErrEmailAlreadyExists on a duplicate email.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns the user or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns the user or ErrUserNotFound.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthUsecase wires the credential and session stores. ttl bounds every new session.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, ttl time.Duration) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a user with a bcrypt-hashed password and returns the new ID.
func (u *authUsecase) Signup(ctx context.Context, name, email, password string) (uint, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return 0, ErrValidation
	}

	_, err := u.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return 0, ErrEmailAlreadyExists
	case !errors.Is(err, ErrUserNotFound):
		return 0, fmt.Errorf("failed to look up email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login verifies the credentials and opens a fresh session with an empty chat history.
// bcrypt runs even for unknown emails so response time does not reveal which emails exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	now := u.now()
	session := &entity.Session{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		DisplayName: user.Name,
		History:     []entity.ChatMessage{},
		CreatedAt:   now,
		ExpiresAt:   now.Add(u.ttl),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// Logout deletes the session. An unknown session ID is not an error.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CurrentSession resolves a session ID to a live session.
func (u *authUsecase) CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, err := u.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
