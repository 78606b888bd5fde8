package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
	"github.com/yared2/quizbot/internal/service"
)

type QuizService interface {
	Session(chatID int64) (*entities.QuizState, error)
	Answer(ctx context.Context, chatID int64, key entities.ChoiceKey) (service.AnswerResult, error)
	Next(ctx context.Context, chatID int64) (*entities.QuizState, error)
	Prev(ctx context.Context, chatID int64) (*entities.QuizState, error)
	Shuffle(ctx context.Context, chatID int64) (*entities.QuizState, error)
	Restart(ctx context.Context, chatID int64) (*entities.QuizState, error)
}

type LoaderService interface {
	Topics() []string
	LoadTopic(ctx context.Context, chatID int64, topic string) (*entities.QuizState, error)
	LoadURL(ctx context.Context, chatID int64, url string) (*entities.QuizState, error)
	Resume(ctx context.Context, chatID int64) (*entities.QuizState, error)
}

type Handler struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
	quiz   QuizService
	loader LoaderService
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	quiz QuizService,
	loader LoaderService,
) *Handler {
	return &Handler{
		bot:    bot,
		logger: logger,
		quiz:   quiz,
		loader: loader,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID

	if update.Message.IsCommand() {
		switch update.Message.Command() {
		case "start":
			_ = h.withErrorHandling(h.handleStart())(ctx, chatID)

		case "topics":
			h.handleTopics(chatID)

		case "load":
			_ = h.withErrorHandling(h.handleLoad(update.Message.CommandArguments()))(ctx, chatID)

		case "next":
			_ = h.withErrorHandling(h.handleMove(navNext))(ctx, chatID)

		case "prev":
			_ = h.withErrorHandling(h.handleMove(navPrev))(ctx, chatID)

		case "shuffle":
			_ = h.withErrorHandling(h.handleShuffle())(ctx, chatID)

		case "restart":
			_ = h.withErrorHandling(h.handleRestart())(ctx, chatID)

		case "score":
			_ = h.withErrorHandling(h.handleScore())(ctx, chatID)

		case "help":
			h.send(newHTMLMessage(chatID, msgHelp))

		default:
			h.send(newHTMLMessage(chatID, msgUnknownCommand))
		}

		return
	}

	// A pasted raw URL works like /load, matching the manual URL box of the
	// web version of this quiz.
	if text := strings.TrimSpace(update.Message.Text); strings.HasPrefix(text, "http://") || strings.HasPrefix(text, "https://") {
		_ = h.withErrorHandling(h.handleLoad(text))(ctx, chatID)
		return
	}

	h.send(newHTMLMessage(chatID, msgUnknownCommand))
}

func (h *Handler) sendError(chatID int64, text string) {
	h.send(newHTMLMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}
