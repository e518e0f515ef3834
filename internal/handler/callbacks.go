package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"datelabel/internal/domain"
	"datelabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	pagePrefix = "page_"
	langPrefix = "lang_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parsePage extracts the page number from "page_N" callback data
func parsePage(data string) (int, error) {
	page, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(data), pagePrefix))
	if err != nil {
		return 0, fmt.Errorf("invalid page %q: %w", data, err)
	}
	if page < 1 {
		return 0, fmt.Errorf("invalid page %d", page)
	}
	return page, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback, nothing to send
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		_ = c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the message for callbacks and sends a new one for commands
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}
	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond()
}

// respond answers a callback with a toast, or sends a message for commands
func respond(c tele.Context, text string) error {
	if c.Callback() == nil {
		return c.Send(text)
	}
	return c.Respond(&tele.CallbackResponse{Text: text})
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Static buttons whose Unique didn't reach a dedicated handler
	key := callback.Unique
	if key == "" {
		key = data
	}
	switch key {
	case btnHistory.Unique:
		return h.handleHistory(c)
	case btnLanguage.Unique:
		return h.handleLanguageMenu(c)
	case btnBack.Unique:
		return h.handleStart(c)
	}

	// Dynamic buttons
	switch {
	case strings.HasPrefix(data, pagePrefix):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, langPrefix):
		return h.handleLanguageSelection(c, strings.TrimPrefix(data, langPrefix))
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleHistory shows the first page of recent lookups
func (h *Handler) handleHistory(c tele.Context) error {
	return h.showHistoryPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := parsePage(data)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid page"})
	}
	return h.showHistoryPage(c, page)
}

func (h *Handler) showHistoryPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	lock := h.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	labels, totalPages, err := h.historyService.GetHistory(userID, page)
	if err != nil {
		h.logger.Error("Failed to get history", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, "Failed to load history")
	}

	if len(labels) == 0 {
		if page > 1 {
			return respond(c, "No more dates")
		}
		return respond(c, "You haven't asked about any dates yet")
	}

	text, markup := historyMessage(labels, page, totalPages)
	return h.editOrSend(c, text, markup)
}

// historyMessage renders one page of history with navigation buttons
func historyMessage(labels []domain.Label, page, totalPages int) (string, *tele.ReplyMarkup) {
	var b strings.Builder
	b.WriteString("📅 Recent dates:\n\n")
	for _, label := range labels {
		b.WriteString("• ")
		b.WriteString(label.DisplayString())
		b.WriteString("\n")
	}
	if totalPages > 1 {
		fmt.Fprintf(&b, "\nPage %d/%d", page, totalPages)
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", pagePrefix, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", pagePrefix, page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return b.String(), markup
}

// handleLanguageMenu lists the available locales
func (h *Handler) handleLanguageMenu(c tele.Context) error {
	userID := c.Sender().ID

	current, err := h.labelService.Locale(userID)
	if err != nil {
		h.logger.Error("Failed to get locale", zap.Error(err), zap.Int64("user_id", userID))
		return respond(c, "Failed to load languages")
	}

	text, markup := languageMessage(h.labelService.Locales(), current)
	return h.editOrSend(c, text, markup)
}

// languageMessage renders the locale picker, marking the current locale
func languageMessage(locales []string, current string) (string, *tele.ReplyMarkup) {
	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(locales)+1)

	for _, locale := range locales {
		text := locale
		if locale == current {
			text = "✓ " + locale
		}
		rows = append(rows, markup.Row(markup.Data(text, langPrefix+locale)))
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)

	return "🌐 Choose the language for date labels:", markup
}

// handleLanguageSelection stores the chosen locale
func (h *Handler) handleLanguageSelection(c tele.Context, locale string) error {
	userID := c.Sender().ID

	err := h.labelService.SetLocale(userID, locale)
	if errors.Is(err, service.ErrUnknownLocale) {
		return c.Respond(&tele.CallbackResponse{Text: "Unknown language"})
	}
	if err != nil {
		h.logger.Error("Failed to set locale",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.String("locale", locale),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Failed to save language"})
	}

	h.logger.Info("Locale changed", zap.Int64("user_id", userID), zap.String("locale", locale))

	text, markup := languageMessage(h.labelService.Locales(), locale)
	return h.editOrSend(c, text, markup)
}
