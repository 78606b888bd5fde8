// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome = "Welcome! This bot runs multiple-choice quizzes from remote NDJSON or CSV files.\n\n" +
		"Pick a preset with /topics, or send /load &lt;url&gt; with a raw file URL.\n" +
		"Answer by tapping a choice button; the first answer locks the question."

	msgHelp = "Commands:\n\n" +
		"/topics — pick a preset question set\n" +
		"/load &lt;url&gt; — load a raw NDJSON or CSV file\n" +
		"/next and /prev — move between questions\n" +
		"/shuffle — reorder the questions (answers are kept)\n" +
		"/restart — clear answers and score\n" +
		"/score — show your current score"

	msgUnknownCommand = "Unknown command. Use /help to see what this bot can do."
	msgNoActiveQuiz   = "No quiz is loaded yet. Pick one with /topics or /load &lt;url&gt;."
	msgLoadUsage      = "Usage: /load &lt;url&gt; — a raw NDJSON or CSV file URL."
	msgLoadFailed     = "Could not load that question set. Check the URL and try again."
	msgNoQuestions    = "That source contains no usable questions."
	msgUnknownTopic   = "Unknown topic. Use /topics to see what's available."
	msgPickTopic      = "Pick a topic:"
	msgNoTopics       = "No topics are configured."
	msgInternalError  = "Something went wrong. Try again later."
)

// Answer toasts shown in the callback popup.
const (
	toastCorrect = "✅ Correct!"
	toastWrong   = "❌ Wrong"
	toastLocked  = "This question is already locked"
)

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}
