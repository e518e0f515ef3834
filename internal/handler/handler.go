package handler

import (
	"sync"

	"datelabel/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot            *tele.Bot
	labelService   *service.LabelService
	historyService *service.HistoryService
	logger         *zap.Logger

	// Per-user locks so double-tapped buttons are processed one at a time
	callbackLocks map[int64]*sync.Mutex
	callbackMux   sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	labelService *service.LabelService,
	historyService *service.HistoryService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		labelService:   labelService,
		historyService: historyService,
		logger:         logger,
		callbackLocks:  make(map[int64]*sync.Mutex),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/history", h.handleHistory)
	h.bot.Handle("/lang", h.handleLanguageMenu)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnHistory, h.handleHistory)
	h.bot.Handle(&btnLanguage, h.handleLanguageMenu)
	h.bot.Handle(&btnBack, h.handleStart)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// userLock returns the lock serializing callbacks for a user
func (h *Handler) userLock(userID int64) *sync.Mutex {
	h.callbackMux.Lock()
	defer h.callbackMux.Unlock()

	lock, exists := h.callbackLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.callbackLocks[userID] = lock
	}
	return lock
}

// Inline keyboard buttons
var (
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "📅 Recent dates",
	}
	btnLanguage = tele.Btn{
		Unique: "language",
		Text:   "🌐 Language",
	}
	btnBack = tele.Btn{
		Unique: "back",
		Text:   "🏠 Back",
	}
)

const mainMenuText = "🏠 Main menu\n\nSend me a date like 2020-11-29 and I'll tell you how long ago it was."

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnHistory),
		menu.Row(btnLanguage),
	)
	return menu
}
