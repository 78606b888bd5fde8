package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// buildQuestionKeyboard builds the inline keyboard for the current
// question: choice buttons while it is unlocked, then navigation and quiz
// actions.
func buildQuestionKeyboard(state *entities.QuizState) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	q, ok := state.Current()
	if ok && !state.Locked(q) {
		var row []tgbotapi.InlineKeyboardButton
		for _, k := range entities.ChoiceKeys {
			if q.Options.Text(k) == "" {
				continue
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				strings.ToUpper(string(k)),
				buildAnswerCallback(string(k)),
			))
			if len(row) == 2 {
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
				row = nil
			}
		}
		if len(row) > 0 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(row...))
		}
	}

	var nav []tgbotapi.InlineKeyboardButton
	if state.Position() > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Prev", buildNavCallback(navPrev)))
	}
	if state.Position() < state.Total()-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Next ➡️", buildNavCallback(navNext)))
	}
	if len(nav) > 0 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔀 Shuffle", buildQuizCallback(quizShuffle)),
		tgbotapi.NewInlineKeyboardButtonData("🔄 Restart", buildQuizCallback(quizRestart)),
	))

	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// buildTopicsKeyboard builds one button per configured topic.
func buildTopicsKeyboard(topics []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, name := range topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(name, buildTopicCallback(name)),
		))
	}
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
}
