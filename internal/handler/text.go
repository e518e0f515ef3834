package handler

import (
	"errors"
	"strings"

	"datelabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const invalidDateText = "That doesn't look like a date. Try something like 2020-11-29."

// handleText labels any date the user sends
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.labelService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	label, err := h.labelService.Label(userID, text)
	if errors.Is(err, service.ErrInvalidDate) {
		return c.Send(invalidDateText)
	}
	if err != nil {
		h.logger.Error("Failed to label date",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send("Something went wrong. Please try again later.")
	}

	h.logger.Debug("Date labelled",
		zap.Int64("user_id", userID),
		zap.String("date", label.Date.String()),
		zap.String("kind", label.Kind.String()),
	)

	return c.Send("🗓 "+label.DisplayString(), mainMenuMarkup())
}
