package telegram

import "strings"

// Callback action constants.
const (
	actionAnswer = "answer"
	actionNav    = "nav"
	actionTopic  = "topic"
	actionQuiz   = "quiz"
)

// Nav sub-actions.
const (
	navPrev = "prev"
	navNext = "next"
)

// Quiz sub-actions.
const (
	quizShuffle = "shuffle"
	quizRestart = "restart"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

func buildAnswerCallback(key string) string {
	return callbackData{Action: actionAnswer, Params: []string{key}}.encode()
}

func buildNavCallback(dir string) string {
	return callbackData{Action: actionNav, Params: []string{dir}}.encode()
}

func buildTopicCallback(name string) string {
	return callbackData{Action: actionTopic, Params: []string{name}}.encode()
}

func buildQuizCallback(sub string) string {
	return callbackData{Action: actionQuiz, Params: []string{sub}}.encode()
}
