package telegram

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
	"github.com/yared2/quizbot/internal/questionset"
	"github.com/yared2/quizbot/internal/service"
)

// handleStart resumes the chat's previous session or greets the user.
// Restore failures stay silent for the user: the welcome text is shown and
// the details go to the log.
func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newHTMLMessage(chatID, msgWelcome))

		state, err := h.loader.Resume(ctx, chatID)
		if err != nil {
			h.logger.Warn("startup restore failed",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			return nil
		}

		h.sendQuestion(chatID, state)
		return nil
	}
}

// handleTopics shows the configured topic presets.
func (h *Handler) handleTopics(chatID int64) {
	topics := h.loader.Topics()
	if len(topics) == 0 {
		h.send(newHTMLMessage(chatID, msgNoTopics))
		return
	}

	msg := newHTMLMessage(chatID, msgPickTopic)
	msg.ReplyMarkup = buildTopicsKeyboard(topics)
	h.send(msg)
}

// handleLoad loads a question set from a user-provided URL. Failures here
// are user-triggered and are reported back to the chat.
func (h *Handler) handleLoad(rawURL string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		url := strings.TrimSpace(rawURL)
		if url == "" {
			h.send(newHTMLMessage(chatID, msgLoadUsage))
			return nil
		}

		state, err := h.loader.LoadURL(ctx, chatID, url)
		if err != nil {
			return h.reportLoadError(chatID, err)
		}

		h.sendQuestion(chatID, state)
		return nil
	}
}

func (h *Handler) handleMove(dir string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		var (
			state *entities.QuizState
			err   error
		)
		if dir == navNext {
			state, err = h.quiz.Next(ctx, chatID)
		} else {
			state, err = h.quiz.Prev(ctx, chatID)
		}
		if err != nil {
			return h.reportQuizError(chatID, err)
		}

		h.sendQuestion(chatID, state)
		return nil
	}
}

func (h *Handler) handleShuffle() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.quiz.Shuffle(ctx, chatID)
		if err != nil {
			return h.reportQuizError(chatID, err)
		}

		h.sendQuestion(chatID, state)
		return nil
	}
}

func (h *Handler) handleRestart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.quiz.Restart(ctx, chatID)
		if err != nil {
			return h.reportQuizError(chatID, err)
		}

		h.sendQuestion(chatID, state)
		return nil
	}
}

func (h *Handler) handleScore() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		state, err := h.quiz.Session(chatID)
		if err != nil {
			return h.reportQuizError(chatID, err)
		}

		h.send(newHTMLMessage(chatID, renderScore(state)))
		return nil
	}
}

// sendQuestion sends the current question with its keyboard.
func (h *Handler) sendQuestion(chatID int64, state *entities.QuizState) {
	msg := newHTMLMessage(chatID, renderQuestion(state))
	msg.ReplyMarkup = buildQuestionKeyboard(state)
	h.send(msg)
}

// reportLoadError translates load failures into chat messages; anything
// unexpected propagates to the error-handling middleware.
func (h *Handler) reportLoadError(chatID int64, err error) error {
	var fetchErr *questionset.FetchError
	switch {
	case errors.Is(err, service.ErrNoQuestions):
		h.send(newHTMLMessage(chatID, msgNoQuestions))
	case errors.Is(err, service.ErrUnknownTopic):
		h.send(newHTMLMessage(chatID, msgUnknownTopic))
	case errors.As(err, &fetchErr):
		h.send(newHTMLMessage(chatID, msgLoadFailed))
	default:
		return err
	}
	return nil
}

func (h *Handler) reportQuizError(chatID int64, err error) error {
	if errors.Is(err, service.ErrNoActiveQuiz) {
		h.send(newHTMLMessage(chatID, msgNoActiveQuiz))
		return nil
	}
	return err
}
