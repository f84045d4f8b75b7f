// Package handler serves the AI mentor chat page.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerinn/internal/feature/aimentor/usecase"
	"careerinn/internal/feature/auth/domain/entity"
	jwtmw "careerinn/internal/platform/jwt"
	"careerinn/internal/platform/web"
)

// MentorUsecase is the conversation behaviour the chat page needs.
type MentorUsecase interface {
	SubmitTurn(ctx context.Context, sessionID, text string) ([]entity.ChatMessage, error)
	EndAndLock(ctx context.Context, sessionID string) error
	ClearHistory(ctx context.Context, sessionID string) error
	Conversation(ctx context.Context, sessionID string) ([]entity.ChatMessage, usecase.State, error)
}

// ChatbotHandler serves /chatbot and /chatbot/end. Routes are mounted behind LoginRequired.
type ChatbotHandler struct {
	mentor MentorUsecase
}

// NewChatbotHandler creates a ChatbotHandler.
func NewChatbotHandler(mentor MentorUsecase) *ChatbotHandler {
	return &ChatbotHandler{mentor: mentor}
}

// Show renders the transcript. ?reset=1 clears it first without touching the free chat.
func (h *ChatbotHandler) Show(c *gin.Context) {
	session, _ := jwtmw.CurrentSession(c)
	ctx := c.Request.Context()

	if c.Query("reset") == "1" {
		if err := h.mentor.ClearHistory(ctx, session.ID); err != nil {
			slog.Error("failed to clear chat history", "error", err, "user_id", session.UserID)
		}
		c.Redirect(http.StatusFound, "/chatbot")
		return
	}

	h.render(c, session, "")
}

// Submit runs one chat turn and re-renders the page.
func (h *ChatbotHandler) Submit(c *gin.Context) {
	session, _ := jwtmw.CurrentSession(c)

	errMsg := ""
	if _, err := h.mentor.SubmitTurn(c.Request.Context(), session.ID, c.PostForm("message")); err != nil {
		slog.Error("chat turn failed", "error", err, "user_id", session.UserID)
		errMsg = "Could not send your message. Please try again."
	}
	h.render(c, session, errMsg)
}

// End spends the free chat, clears the transcript and goes back to /chatbot.
func (h *ChatbotHandler) End(c *gin.Context) {
	session, _ := jwtmw.CurrentSession(c)
	if err := h.mentor.EndAndLock(c.Request.Context(), session.ID); err != nil {
		slog.Error("failed to end free chat", "error", err, "user_id", session.UserID)
	}
	c.Redirect(http.StatusFound, "/chatbot")
}

func (h *ChatbotHandler) render(c *gin.Context, session *entity.Session, errMsg string) {
	history, state, err := h.mentor.Conversation(c.Request.Context(), session.ID)
	if err != nil {
		slog.Error("failed to load conversation", "error", err, "user_id", session.UserID)
		errMsg = "Could not load your conversation. Please try again."
	}
	page := gin.H{
		"Title":   "AI mentor",
		"History": history,
		"State":   string(state),
		"Locked":  state == usecase.StateLocked,
	}
	if errMsg != "" {
		page["Error"] = errMsg
	}
	web.Render(c, "chatbot.html", page)
}
