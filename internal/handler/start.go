package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command and the back button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.labelService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Something went wrong. Please try again later.")
	}

	if c.Callback() != nil {
		return h.editOrSend(c, mainMenuText, mainMenuMarkup())
	}
	return c.Send(mainMenuText, mainMenuMarkup())
}
