package jwtmw

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"careerinn/internal/feature/auth/domain/entity"
)

// ContextSession is the gin context key holding the current *entity.Session.
const ContextSession = "session"

// refreshSlack is how far a session's expiry must move past the cookie's before it is re-issued.
const refreshSlack = time.Minute

// TokenCodec reads and re-signs session cookie values.
type TokenCodec interface {
	ParseClaims(token string) (sessionID string, expiresAt time.Time, err error)
	GenerateTokenUntil(sessionID string, expiresAt time.Time) (string, error)
}

// SessionFinder resolves a session ID to a live session.
type SessionFinder interface {
	CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error)
}

// Cookie describes the session cookie.
type Cookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Set writes the signed token as an HttpOnly, SameSite=Lax cookie.
func (ck Cookie) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, token, int(ck.MaxAge.Seconds()), "/", "", ck.Secure, true)
}

// SetUntil writes the token with a lifetime ending at expiresAt.
func (ck Cookie) SetUntil(c *gin.Context, token string, expiresAt time.Time) {
	ck.MaxAge = time.Until(expiresAt).Round(time.Second)
	ck.Set(c, token)
}

// Clear expires the cookie in the browser.
func (ck Cookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ck.Name, "", -1, "/", "", ck.Secure, true)
}

// LoadSession resolves the session cookie, if any, and stores the session in the context.
// Requests without a valid session continue anonymously; a stale cookie is cleared.
// When the stored session has been extended past the cookie's expiry, the cookie is re-issued
// to match it.
func LoadSession(tokens TokenCodec, finder SessionFinder, cookie Cookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookie.Name)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		sessionID, tokenExpiry, err := tokens.ParseClaims(raw)
		if err != nil {
			cookie.Clear(c)
			c.Next()
			return
		}

		session, err := finder.CurrentSession(c.Request.Context(), sessionID)
		if err != nil {
			cookie.Clear(c)
			c.Next()
			return
		}

		if session.ExpiresAt.Sub(tokenExpiry) > refreshSlack {
			token, err := tokens.GenerateTokenUntil(session.ID, session.ExpiresAt)
			if err != nil {
				slog.Warn("failed to refresh session cookie", "error", err, "user_id", session.UserID)
			} else {
				cookie.SetUntil(c, token, session.ExpiresAt)
			}
		}

		c.Set(ContextSession, session)
		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession.
func CurrentSession(c *gin.Context) (*entity.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	session, ok := v.(*entity.Session)
	return session, ok && session != nil
}

// UserID returns the logged-in user's ID, or 0 for anonymous requests.
func UserID(c *gin.Context) uint {
	if session, ok := CurrentSession(c); ok {
		return session.UserID
	}
	return 0
}
