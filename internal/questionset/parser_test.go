package questionset

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		hint string
		text string
		want Format
	}{
		{name: "ndjson extension", hint: "https://example.com/data/java.ndjson", text: "whatever", want: FormatNDJSON},
		{name: "jsonl extension upper case", hint: "SET.JSONL", text: "whatever", want: FormatNDJSON},
		{name: "csv extension", hint: "sets/geo.csv", text: "whatever", want: FormatCSV},
		{name: "sniff json object", hint: "https://example.com/data", text: "  \n {\"id\":1}", want: FormatNDJSON},
		{name: "sniff csv", hint: "https://example.com/data", text: "id,question,a", want: FormatCSV},
		{name: "empty text defaults to csv", hint: "", text: "", want: FormatCSV},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.hint, tc.text); got != tc.want {
				t.Fatalf("Detect(%q, %q) = %v, want %v", tc.hint, tc.text, got, tc.want)
			}
		})
	}
}

func TestParseNDJSON(t *testing.T) {
	raw := strings.Join([]string{
		`{"id":1,"question":"2+2?","options":{"a":"3","b":"4"},"answer":"b"}`,
		``,
		`not json at all`,
		`{"id":"x7","question":"Capital?","choices":{"a":"Paris","b":"Rome","c":"Oslo","d":"Bern"},"correct":" A ","explanation":"obvious"}`,
	}, "\r\n")

	questions := NewParser(zap.NewNop()).Parse(raw, "https://example.com/set.ndjson")
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions (bad line skipped), got %d", len(questions))
	}

	first := questions[0]
	if first.ID != "1" {
		t.Fatalf("numeric id not stringified: %q", first.ID)
	}
	wantOpts := entities.Options{A: "3", B: "4"}
	if first.Options != wantOpts {
		t.Fatalf("missing options not defaulted: %+v", first.Options)
	}
	if first.Answer != entities.ChoiceB {
		t.Fatalf("answer = %q, want b", first.Answer)
	}

	second := questions[1]
	if second.ID != "x7" {
		t.Fatalf("id = %q, want x7", second.ID)
	}
	if second.Answer != entities.ChoiceA {
		t.Fatalf("correct alias not trimmed/lowercased: %q", second.Answer)
	}
	if second.Options.A != "Paris" || second.Options.D != "Bern" {
		t.Fatalf("choices alias not applied: %+v", second.Options)
	}
	if second.Explanation != "obvious" {
		t.Fatalf("explanation = %q", second.Explanation)
	}
}

func TestParseNDJSONMissingIDDefaultsToLineIndex(t *testing.T) {
	raw := `{"question":"Q1","options":{"a":"x"},"answer":"a"}` + "\n" +
		`{"question":"Q2","options":{"a":"y"},"answer":"a"}` + "\n"

	questions := NewParser(zap.NewNop()).Parse(raw, "set.ndjson")
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "1" || questions[1].ID != "2" {
		t.Fatalf("fallback ids = %q, %q; want 1, 2", questions[0].ID, questions[1].ID)
	}
}

func TestParseCSV(t *testing.T) {
	raw := "id,question,a,b,c,d,correct\r\n" +
		"1,Capital of France?,Paris,Lyon,Nice,Lille,a\r\n" +
		",,,,,,\n" +
		`2,"Largest ""ocean""?","Pacific, obviously",Atlantic,Indian,Arctic, A ` + "\n"

	questions := NewParser(zap.NewNop()).Parse(raw, "sets/geo.csv")
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions (blank row dropped), got %d", len(questions))
	}

	first := questions[0]
	if first.ID != "1" || first.Answer != entities.ChoiceA {
		t.Fatalf("unexpected first question: %+v", first)
	}
	wantOpts := entities.Options{A: "Paris", B: "Lyon", C: "Nice", D: "Lille"}
	if first.Options != wantOpts {
		t.Fatalf("options = %+v, want %+v", first.Options, wantOpts)
	}

	second := questions[1]
	if second.Text != `Largest "ocean"?` {
		t.Fatalf("quoted field mangled: %q", second.Text)
	}
	if second.Options.A != "Pacific, obviously" {
		t.Fatalf("embedded comma mangled: %q", second.Options.A)
	}
	if second.Answer != entities.ChoiceA {
		t.Fatalf("answer not trimmed/lowercased: %q", second.Answer)
	}
}

func TestParseCSVMissingIDDefaultsToRowIndex(t *testing.T) {
	raw := "question,a,b,correct\nQ1,x,y,a\nQ2,x,y,b\n"

	questions := NewParser(zap.NewNop()).Parse(raw, "set.csv")
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "1" || questions[1].ID != "2" {
		t.Fatalf("fallback ids = %q, %q; want 1, 2", questions[0].ID, questions[1].ID)
	}
}

func TestParseCSVHeaderNormalization(t *testing.T) {
	raw := " ID , Question ,A,B, Correct \n7,Who?,me,you,b\n"

	questions := NewParser(zap.NewNop()).Parse(raw, "set.csv")
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	q := questions[0]
	if q.ID != "7" || q.Text != "Who?" || q.Answer != entities.ChoiceB {
		t.Fatalf("header names not trimmed/lowercased: %+v", q)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	rec := rawRecord{
		ID:       "q1",
		Question: " 2+2? ",
		Options:  map[string]any{"a": 3, "b": "4"},
		Answer:   " B ",
	}

	once := normalize(rec, "9")
	again := normalize(rawRecord{
		ID:       once.ID,
		Question: once.Text,
		Options: map[string]any{
			"a": once.Options.A,
			"b": once.Options.B,
			"c": once.Options.C,
			"d": once.Options.D,
		},
		Answer:      string(once.Answer),
		Explanation: once.Explanation,
	}, "9")

	if once != again {
		t.Fatalf("normalize not idempotent:\nonce:  %+v\nagain: %+v", once, again)
	}
	if once.Options.A != "3" {
		t.Fatalf("numeric option not stringified: %q", once.Options.A)
	}
	if once.Answer != entities.ChoiceB {
		t.Fatalf("answer = %q, want b", once.Answer)
	}
}
