// Package handler provides the HTTP handlers for signup, login and logout.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerinn/internal/feature/auth/domain/entity"
	"careerinn/internal/feature/auth/transport/http/dto"
	"careerinn/internal/feature/auth/usecase"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// Messages shown inline on the auth pages.
const (
	msgAllFieldsRequired  = "All fields required"
	msgEmailExists        = "Email exists, login instead."
	msgInvalidCredentials = "Invalid credentials"
	msgTryAgain           = "Something went wrong. Please try again."
)

// AuthUsecase is the auth behaviour the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, name, email, password string) (uint, error)
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

// TokenGenerator signs a session ID for the cookie.
type TokenGenerator interface {
	GenerateToken(sessionID string) (string, error)
}

// AuthHandler serves the signup, login and logout pages.
type AuthHandler struct {
	auth   AuthUsecase
	tokens TokenGenerator
	cookie jwtmw.Cookie
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase, tokens TokenGenerator, cookie jwtmw.Cookie) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens, cookie: cookie}
}

// ShowSignup renders the signup form.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	web.Render(c, "signup.html", gin.H{"Title": "Sign up", "Name": "", "Email": ""})
}

// Signup creates the account and redirects to /login. Problems are shown on the form with 200.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	_ = c.ShouldBind(&req)

	page := gin.H{"Title": "Sign up", "Name": req.Name, "Email": req.Email}

	if _, err := h.auth.Signup(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, usecase.ErrValidation):
			page["Error"] = msgAllFieldsRequired
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			page["Error"] = msgEmailExists
		default:
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			page["Error"] = msgTryAgain
		}
		web.Render(c, "signup.html", page)
		return
	}

	slog.Info("user signup successful", "email", usecase.NormalizeEmail(req.Email), "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	web.Render(c, "login.html", gin.H{"Title": "Login", "Email": ""})
}

// Login authenticates, replaces any previous session and redirects to /dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	_ = c.ShouldBind(&req)

	page := gin.H{"Title": "Login", "Email": req.Email}

	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			page["Error"] = msgInvalidCredentials
		} else {
			slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
			page["Error"] = msgTryAgain
		}
		web.Render(c, "login.html", page)
		return
	}

	token, err := h.tokens.GenerateToken(session.ID)
	if err != nil {
		slog.Error("failed to sign session token", "error", err)
		page["Error"] = msgTryAgain
		web.Render(c, "login.html", page)
		return
	}

	// The previous session, if any, is dropped so no chat history survives a re-login.
	if old, ok := jwtmw.CurrentSession(c); ok && old.ID != session.ID {
		if err := h.auth.Logout(c.Request.Context(), old.ID); err != nil {
			slog.Warn("failed to drop previous session", "error", err)
		}
	}

	h.cookie.Set(c, token)
	slog.Info("user login successful", "user_id", session.UserID, "remote_addr", c.ClientIP())
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout deletes the session, clears the cookie and redirects home.
func (h *AuthHandler) Logout(c *gin.Context) {
	if session, ok := jwtmw.CurrentSession(c); ok {
		if err := h.auth.Logout(c.Request.Context(), session.ID); err != nil {
			slog.Error("logout failed", "error", err, "user_id", session.UserID)
		}
	}
	h.cookie.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
