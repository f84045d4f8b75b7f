// Package handler serves the dashboard and profile pages.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerinn/internal/feature/profile/domain/entity"
	"careerinn/internal/feature/profile/transport/http/dto"
	"careerinn/internal/feature/profile/usecase"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// ProfileUsecase loads and saves the signed-in user's profile.
type ProfileUsecase interface {
	Get(ctx context.Context, userID uint) (*entity.Profile, error)
	Update(ctx context.Context, userID uint, in usecase.ProfileInput) (*entity.Profile, error)
}

// EntitlementReader exposes the plan state shown on the dashboard.
type EntitlementReader interface {
	IsSubscribed(ctx context.Context, userID uint) bool
	HasFreeQuotaRemaining(ctx context.Context, userID uint) (bool, error)
}

// ProfileHandler serves /dashboard and /profile.
type ProfileHandler struct {
	profiles     ProfileUsecase
	entitlements EntitlementReader
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles ProfileUsecase, entitlements EntitlementReader) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, entitlements: entitlements}
}

// Dashboard renders the plan summary and profile card.
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	userID := jwtmw.UserID(c)
	data := gin.H{"Title": "Dashboard", "Subscribed": h.entitlements.IsSubscribed(ctx, userID)}

	free, err := h.entitlements.HasFreeQuotaRemaining(ctx, userID)
	if err != nil {
		slog.Error("failed to read ai quota", "error", err, "user_id", userID)
		free = false
	}
	data["FreeChatAvailable"] = free

	profile, err := h.profiles.Get(ctx, userID)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", userID)
	} else {
		data["Profile"] = profile
	}
	web.Render(c, "dashboard.html", data)
}

// Show renders the profile form.
func (h *ProfileHandler) Show(c *gin.Context) {
	userID := jwtmw.UserID(c)
	profile, err := h.profiles.Get(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", userID)
		web.Render(c, "profile.html", gin.H{
			"Title":   "Profile",
			"Profile": &entity.Profile{UserID: userID},
			"Error":   "Could not load your profile. Please try again.",
		})
		return
	}
	web.Render(c, "profile.html", gin.H{"Title": "Profile", "Profile": profile})
}

// Update saves the form and redirects to the dashboard. Invalid input re-renders the form.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := jwtmw.UserID(c)

	var req dto.ProfileReq
	_ = c.ShouldBind(&req)

	in, err := req.ToInput()
	if err == nil {
		_, err = h.profiles.Update(c.Request.Context(), userID, in)
	}
	if err != nil {
		msg := "Self rating must be a whole number from 0 to 5."
		if !errors.Is(err, usecase.ErrInvalidRating) {
			slog.Error("failed to save profile", "error", err, "user_id", userID)
			msg = "Could not save your profile. Please try again."
		}
		web.Render(c, "profile.html", gin.H{
			"Title": "Profile",
			"Profile": &entity.Profile{
				UserID:      userID,
				SkillsText:  req.SkillsText,
				TargetRoles: req.TargetRoles,
				ResumeLink:  req.ResumeLink,
				Notes:       req.Notes,
				SelfRating:  in.SelfRating,
			},
			"Error": msg,
		})
		return
	}

	slog.Info("profile updated", "user_id", userID)
	c.Redirect(http.StatusFound, "/dashboard")
}
