// Package handler serves the subscription page.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// EntitlementUsecase is the subscription behaviour the page needs.
type EntitlementUsecase interface {
	IsSubscribed(ctx context.Context, userID uint) bool
	ActivateSubscription(ctx context.Context, userID uint) error
}

// SubscribeHandler serves GET and POST /subscribe.
type SubscribeHandler struct {
	entitlements EntitlementUsecase
}

// NewSubscribeHandler creates a SubscribeHandler.
func NewSubscribeHandler(entitlements EntitlementUsecase) *SubscribeHandler {
	return &SubscribeHandler{entitlements: entitlements}
}

// Show renders the subscribe page with the current state.
func (h *SubscribeHandler) Show(c *gin.Context) {
	userID := jwtmw.UserID(c)
	web.Render(c, "subscribe.html", gin.H{
		"Title":      "Subscribe",
		"Subscribed": h.entitlements.IsSubscribed(c.Request.Context(), userID),
	})
}

// Activate turns the subscription on and redirects to the dashboard.
// No payment is verified here.
func (h *SubscribeHandler) Activate(c *gin.Context) {
	userID := jwtmw.UserID(c)
	if err := h.entitlements.ActivateSubscription(c.Request.Context(), userID); err != nil {
		slog.Error("subscription activation failed", "error", err, "user_id", userID)
		web.Render(c, "subscribe.html", gin.H{
			"Title":      "Subscribe",
			"Subscribed": false,
			"Error":      "Could not activate your subscription. Please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
