package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
	"github.com/yared2/quizbot/internal/service"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	cd := decodeCallback(cb.Data)

	var toast string
	switch cd.Action {
	case actionAnswer:
		toast = h.answerCallback(ctx, chatID, cb, cd)
	case actionNav:
		h.navCallback(ctx, chatID, cb, cd)
	case actionQuiz:
		h.quizCallback(ctx, chatID, cb, cd)
	case actionTopic:
		h.topicCallback(ctx, chatID, cd)
	default:
		return
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, toast)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Error("callback answer error", zap.Error(err))
	}
}

// answerCallback records a choice and re-renders the question message with
// the locked state. The returned toast tells the user how it went.
func (h *Handler) answerCallback(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery, cd callbackData) string {
	if len(cd.Params) != 1 {
		return ""
	}

	key := entities.ChoiceKey(cd.Params[0])
	if !entities.ValidChoice(key) {
		return ""
	}

	res, err := h.quiz.Answer(ctx, chatID, key)
	if err != nil {
		if errors.Is(err, service.ErrNoActiveQuiz) {
			h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
			return ""
		}
		h.logger.Error("answer callback",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return ""
	}

	state, err := h.quiz.Session(chatID)
	if err == nil {
		h.editQuestion(chatID, cb.Message.MessageID, state)
	}

	switch {
	case !res.Recorded:
		return toastLocked
	case res.Correct:
		return toastCorrect
	default:
		return toastWrong
	}
}

func (h *Handler) navCallback(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery, cd callbackData) {
	if len(cd.Params) != 1 {
		return
	}

	var (
		state *entities.QuizState
		err   error
	)
	switch cd.Params[0] {
	case navNext:
		state, err = h.quiz.Next(ctx, chatID)
	case navPrev:
		state, err = h.quiz.Prev(ctx, chatID)
	default:
		return
	}
	if err != nil {
		_ = h.reportQuizError(chatID, err)
		return
	}

	h.editQuestion(chatID, cb.Message.MessageID, state)
}

func (h *Handler) quizCallback(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery, cd callbackData) {
	if len(cd.Params) != 1 {
		return
	}

	var (
		state *entities.QuizState
		err   error
	)
	switch cd.Params[0] {
	case quizShuffle:
		state, err = h.quiz.Shuffle(ctx, chatID)
	case quizRestart:
		state, err = h.quiz.Restart(ctx, chatID)
	default:
		return
	}
	if err != nil {
		_ = h.reportQuizError(chatID, err)
		return
	}

	h.editQuestion(chatID, cb.Message.MessageID, state)
}

// topicCallback switches the chat to a preset topic, replacing the active
// question set.
func (h *Handler) topicCallback(ctx context.Context, chatID int64, cd callbackData) {
	if len(cd.Params) != 1 {
		return
	}

	state, err := h.loader.LoadTopic(ctx, chatID, cd.Params[0])
	if err != nil {
		if err := h.reportLoadError(chatID, err); err != nil {
			h.logger.Error("topic callback",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return
	}

	h.sendQuestion(chatID, state)
}

func (h *Handler) editQuestion(chatID int64, messageID int, state *entities.QuizState) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, renderQuestion(state))
	edit.ParseMode = tgbotapi.ModeHTML
	kb := buildQuestionKeyboard(state)
	edit.ReplyMarkup = &kb
	h.send(edit)
}
