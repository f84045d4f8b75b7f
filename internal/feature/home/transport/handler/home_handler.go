// Package handler serves the home page and the static information pages.
package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// Home page chat call-to-action variants.
const (
	CTASignup    = ""
	CTAStart     = "start"
	CTAContinue  = "continue"
	CTASubscribe = "subscribe"
)

// QuotaChecker reports whether the free AI chat is still available.
type QuotaChecker interface {
	HasFreeQuotaRemaining(ctx context.Context, userID uint) (bool, error)
}

// HomeHandler serves / and the static information pages.
type HomeHandler struct {
	quota QuotaChecker
}

// NewHomeHandler creates a HomeHandler.
func NewHomeHandler(quota QuotaChecker) *HomeHandler {
	return &HomeHandler{quota: quota}
}

// Home renders / with a chat CTA that follows the session and quota.
func (h *HomeHandler) Home(c *gin.Context) {
	web.Render(c, "home.html", gin.H{"ChatCTA": h.chatCTA(c)})
}

func (h *HomeHandler) chatCTA(c *gin.Context) string {
	session, ok := jwtmw.CurrentSession(c)
	if !ok {
		return CTASignup
	}
	remaining, err := h.quota.HasFreeQuotaRemaining(c.Request.Context(), session.UserID)
	if err != nil {
		slog.Error("failed to read ai quota", "error", err, "user_id", session.UserID)
		return CTAContinue
	}
	switch {
	case !remaining:
		return CTASubscribe
	case len(session.History) > 0:
		return CTAContinue
	default:
		return CTAStart
	}
}

// Page returns a handler rendering a static template.
func Page(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		web.Render(c, name, gin.H{"Title": title})
	}
}
