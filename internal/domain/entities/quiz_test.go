package entities

import (
	"sort"
	"testing"
)

func sampleQuestions() []Question {
	return []Question{
		{ID: "q1", Text: "Q1", Options: Options{A: "a1", B: "b1"}, Answer: ChoiceB},
		{ID: "q2", Text: "Q2", Options: Options{A: "a2", B: "b2"}, Answer: ChoiceA},
		{ID: "q3", Text: "Q3", Options: Options{A: "a3", B: "b3"}, Answer: ChoiceA},
		{ID: "q4", Text: "Q4", Options: Options{A: "a4", B: "b4"}, Answer: ChoiceD},
		{ID: "q5", Text: "Q5", Options: Options{A: "a5", B: "b5"}, Answer: ChoiceC},
	}
}

func TestNewQuizStateFiltersInvalid(t *testing.T) {
	questions := append(sampleQuestions(),
		Question{ID: "no-text", Options: Options{A: "x"}, Answer: ChoiceA},
		Question{ID: "no-answer", Text: "Q", Options: Options{A: "x"}},
		Question{ID: "no-option-a", Text: "Q", Options: Options{B: "y"}, Answer: ChoiceB},
	)

	state := NewQuizState("https://example.com/set.ndjson", questions)
	if state.Total() != 5 {
		t.Fatalf("expected 5 valid questions, got %d", state.Total())
	}
	if state.Position() != 0 || state.Score() != 0 || state.Answered() != 0 {
		t.Fatalf("fresh state not zeroed: pos=%d score=%d answered=%d",
			state.Position(), state.Score(), state.Answered())
	}
}

func TestAnswerFirstChoiceIsFinal(t *testing.T) {
	state := NewQuizState("", sampleQuestions())

	recorded, correct := state.Answer(ChoiceB)
	if !recorded || !correct {
		t.Fatalf("first answer: recorded=%v correct=%v, want true/true", recorded, correct)
	}
	if state.Score() != 1 {
		t.Fatalf("score = %d, want 1", state.Score())
	}

	recorded, correct = state.Answer(ChoiceC)
	if recorded || correct {
		t.Fatalf("second answer on locked question: recorded=%v correct=%v, want false/false", recorded, correct)
	}
	if state.Score() != 1 {
		t.Fatalf("score changed by ignored answer: %d", state.Score())
	}

	q, _ := state.Current()
	chosen, ok := state.Chosen(q)
	if !ok || chosen != ChoiceB {
		t.Fatalf("locked choice = %q, want b", chosen)
	}
}

func TestAnswerWrongChoice(t *testing.T) {
	state := NewQuizState("", sampleQuestions())

	recorded, correct := state.Answer(ChoiceA)
	if !recorded || correct {
		t.Fatalf("recorded=%v correct=%v, want true/false", recorded, correct)
	}
	if state.Score() != 0 {
		t.Fatalf("score = %d, want 0", state.Score())
	}

	q, _ := state.Current()
	if !state.Locked(q) {
		t.Fatal("wrong answer must still lock the question")
	}
}

func TestNavigationClamps(t *testing.T) {
	state := NewQuizState("", sampleQuestions())

	if state.Prev() {
		t.Fatal("Prev at start must be a no-op")
	}
	for i := 0; i < 10; i++ {
		state.Next()
	}
	if state.Position() != state.Total()-1 {
		t.Fatalf("position = %d, want %d", state.Position(), state.Total()-1)
	}
	if state.Next() {
		t.Fatal("Next at end must be a no-op")
	}
	if !state.Prev() {
		t.Fatal("Prev should move back from the end")
	}
	if state.Position() != state.Total()-2 {
		t.Fatalf("position = %d after Prev", state.Position())
	}
}

func TestShuffleKeepsAnswersAndScore(t *testing.T) {
	state := NewQuizState("", sampleQuestions())

	if recorded, correct := state.Answer(ChoiceB); !recorded || !correct {
		t.Fatal("setup: expected q1 answered correctly")
	}
	state.Next()
	state.Next()

	for i := 0; i < 20; i++ {
		state.Shuffle()

		if state.Position() != 0 {
			t.Fatalf("shuffle must reset position, got %d", state.Position())
		}
		if state.Total() != 5 {
			t.Fatalf("shuffle changed set size: %d", state.Total())
		}
		if state.Score() != 1 || state.Answered() != 1 {
			t.Fatalf("shuffle lost progress: score=%d answered=%d", state.Score(), state.Answered())
		}

		var ids []string
		for {
			q, _ := state.Current()
			ids = append(ids, q.ID)
			if !state.Next() {
				break
			}
		}
		sort.Strings(ids)
		want := []string{"q1", "q2", "q3", "q4", "q5"}
		for j := range want {
			if ids[j] != want[j] {
				t.Fatalf("shuffle changed question multiset: %v", ids)
			}
		}

		chosen, ok := state.Chosen(Question{ID: "q1"})
		if !ok || chosen != ChoiceB {
			t.Fatalf("q1 lock lost after shuffle: %q, %v", chosen, ok)
		}
	}
}

func TestRestartClearsProgressKeepsOrder(t *testing.T) {
	state := NewQuizState("", sampleQuestions())
	state.Answer(ChoiceB)
	state.Next()
	state.Answer(ChoiceA)

	state.Restart()

	if state.Position() != 0 || state.Score() != 0 || state.Answered() != 0 {
		t.Fatalf("restart incomplete: pos=%d score=%d answered=%d",
			state.Position(), state.Score(), state.Answered())
	}
	q, _ := state.Current()
	if q.ID != "q1" {
		t.Fatalf("restart reordered questions: first is %q", q.ID)
	}
}

func TestRestoreClampsIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		wantPos int
	}{
		{name: "in bounds", index: 3, wantPos: 3},
		{name: "past the end", index: 42, wantPos: 4},
		{name: "negative", index: -1, wantPos: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state := NewQuizState("", sampleQuestions())
			state.Restore(PersistedState{
				Index:    tc.index,
				Answered: map[string]ChoiceKey{"q2": ChoiceA, "stale": ChoiceD},
				Score:    1,
			})

			if state.Position() != tc.wantPos {
				t.Fatalf("position = %d, want %d", state.Position(), tc.wantPos)
			}
			if state.Score() != 1 {
				t.Fatalf("score = %d, want 1", state.Score())
			}
			// Answers restore verbatim, stale ids included.
			if chosen, ok := state.Chosen(Question{ID: "stale"}); !ok || chosen != ChoiceD {
				t.Fatalf("stale answer dropped: %q, %v", chosen, ok)
			}
		})
	}
}

func TestEmptySet(t *testing.T) {
	state := NewQuizState("", nil)

	if _, ok := state.Current(); ok {
		t.Fatal("empty set must have no current question")
	}
	if recorded, _ := state.Answer(ChoiceA); recorded {
		t.Fatal("answer on empty set must be ignored")
	}
	if state.Next() || state.Prev() {
		t.Fatal("navigation on empty set must be a no-op")
	}
	state.Restore(PersistedState{Index: 5})
	if state.Position() != 0 {
		t.Fatalf("restore on empty set: position = %d, want 0", state.Position())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	state := NewQuizState("https://example.com/set.csv", sampleQuestions())
	state.Answer(ChoiceB)
	state.Next()

	snap := state.Snapshot()
	if snap.SourceURL != "https://example.com/set.csv" || snap.Index != 1 || snap.Score != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	fresh := NewQuizState(snap.SourceURL, sampleQuestions())
	fresh.Restore(snap)
	if fresh.Position() != 1 || fresh.Score() != 1 || fresh.Answered() != 1 {
		t.Fatalf("restore mismatch: pos=%d score=%d answered=%d",
			fresh.Position(), fresh.Score(), fresh.Answered())
	}
}
