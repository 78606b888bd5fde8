package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// renderQuestion renders the current question of a quiz state as HTML.
// Once a question is locked, the correct choice is marked with a check,
// the chosen wrong one with a cross, and the explanation is appended.
func renderQuestion(state *entities.QuizState) string {
	q, ok := state.Current()
	if !ok {
		return msgNoQuestions
	}

	chosen, locked := state.Chosen(q)

	var b strings.Builder
	fmt.Fprintf(&b, "<b>Question %d of %d</b>\n\n", state.Position()+1, state.Total())
	b.WriteString(html.EscapeString(q.Text))
	b.WriteString("\n\n")

	for _, k := range entities.ChoiceKeys {
		text := q.Options.Text(k)
		if text == "" {
			continue
		}
		switch {
		case locked && q.Correct(k):
			b.WriteString("✅ ")
		case locked && k == chosen:
			b.WriteString("❌ ")
		}
		fmt.Fprintf(&b, "<b>%s.</b> %s\n", strings.ToUpper(string(k)), html.EscapeString(text))
	}

	if locked && q.Explanation != "" {
		fmt.Fprintf(&b, "\n<i>%s</i>\n", html.EscapeString(q.Explanation))
	}

	fmt.Fprintf(&b, "\nScore: %d", state.Score())

	return b.String()
}

// renderScore renders the score summary for /score.
func renderScore(state *entities.QuizState) string {
	return fmt.Sprintf(
		"🎯 Score: <b>%d</b>\nAnswered: %d of %d questions.",
		state.Score(), state.Answered(), state.Total(),
	)
}
