package telegram

import "testing"

func TestCallbackDataRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{name: "answer", data: buildAnswerCallback("b"), action: actionAnswer, params: []string{"b"}},
		{name: "nav next", data: buildNavCallback(navNext), action: actionNav, params: []string{"next"}},
		{name: "topic", data: buildTopicCallback("java"), action: actionTopic, params: []string{"java"}},
		{name: "quiz shuffle", data: buildQuizCallback(quizShuffle), action: actionQuiz, params: []string{"shuffle"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cd := decodeCallback(tc.data)
			if cd.Action != tc.action {
				t.Fatalf("action = %q, want %q", cd.Action, tc.action)
			}
			if len(cd.Params) != len(tc.params) {
				t.Fatalf("params = %v, want %v", cd.Params, tc.params)
			}
			for i := range tc.params {
				if cd.Params[i] != tc.params[i] {
					t.Fatalf("params = %v, want %v", cd.Params, tc.params)
				}
			}
		})
	}
}

func TestDecodeCallbackBareAction(t *testing.T) {
	cd := decodeCallback("answer")
	if cd.Action != actionAnswer || len(cd.Params) != 0 {
		t.Fatalf("unexpected decode: %+v", cd)
	}
}
