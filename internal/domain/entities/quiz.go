package entities

import "math/rand"

// QuizState is the state machine for one loaded question set: the ordered
// questions, the current position, the per-question answer map and the
// running score. A fresh instance replaces the previous one whenever a new
// set is loaded; it is never merged with prior state.
type QuizState struct {
	SourceURL string // the source the active set was loaded from

	questions []Question
	current   int
	answered  map[string]ChoiceKey
	score     int
}

// NewQuizState builds a quiz state from parsed questions. Questions that
// fail the validity filter are silently dropped; position, answers and score
// start from zero.
func NewQuizState(sourceURL string, questions []Question) *QuizState {
	valid := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Valid() {
			valid = append(valid, q)
		}
	}

	return &QuizState{
		SourceURL: sourceURL,
		questions: valid,
		answered:  make(map[string]ChoiceKey),
	}
}

// Current returns the question at the current position.
// The second return value is false if the set is empty.
func (s *QuizState) Current() (Question, bool) {
	if len(s.questions) == 0 {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// Next advances the position by one and reports whether it moved.
// At the last question it is a no-op; there is no wraparound.
func (s *QuizState) Next() bool {
	if s.current >= len(s.questions)-1 {
		return false
	}
	s.current++
	return true
}

// Prev moves the position back by one and reports whether it moved.
func (s *QuizState) Prev() bool {
	if s.current <= 0 {
		return false
	}
	s.current--
	return true
}

// Answer records the choice for the current question. The first answer is
// final: if the question is already locked, the call is ignored and recorded
// is false. correct reports whether the recorded choice was the right one.
func (s *QuizState) Answer(key ChoiceKey) (recorded, correct bool) {
	q, ok := s.Current()
	if !ok {
		return false, false
	}
	if _, locked := s.answered[q.ID]; locked {
		return false, false
	}

	s.answered[q.ID] = key
	if q.Correct(key) {
		s.score++
		return true, true
	}
	return true, false
}

// Shuffle permutes the question order uniformly at random and resets the
// position to the start. Answers and score are kept: locked questions stay
// locked and counted, only their place in the sequence changes.
func (s *QuizState) Shuffle() {
	rand.Shuffle(len(s.questions), func(i, j int) {
		s.questions[i], s.questions[j] = s.questions[j], s.questions[i]
	})
	s.current = 0
}

// Restart clears all answers and the score and returns to the first
// question. Question order and content are untouched.
func (s *QuizState) Restart() {
	s.answered = make(map[string]ChoiceKey)
	s.score = 0
	s.current = 0
}

// Position returns the zero-based index of the current question.
func (s *QuizState) Position() int { return s.current }

// Total returns the number of questions in the active set.
func (s *QuizState) Total() int { return len(s.questions) }

// Score returns the number of correctly answered questions.
func (s *QuizState) Score() int { return s.score }

// Answered returns the number of locked questions.
func (s *QuizState) Answered() int { return len(s.answered) }

// Chosen returns the choice recorded for the given question, if any.
func (s *QuizState) Chosen(q Question) (ChoiceKey, bool) {
	k, ok := s.answered[q.ID]
	return k, ok
}

// Locked reports whether the given question has already been answered.
func (s *QuizState) Locked(q Question) bool {
	_, ok := s.answered[q.ID]
	return ok
}

// Snapshot captures the durable part of the state for persistence.
func (s *QuizState) Snapshot() PersistedState {
	answered := make(map[string]ChoiceKey, len(s.answered))
	for id, k := range s.answered {
		answered[id] = k
	}

	return PersistedState{
		SourceURL: s.SourceURL,
		Index:     s.current,
		Answered:  answered,
		Score:     s.score,
	}
}

// Restore applies a previously persisted snapshot to a freshly loaded set.
// The position is clamped to the set's bounds; answers and score are taken
// verbatim, without re-validation against the new set's question ids.
func (s *QuizState) Restore(p PersistedState) {
	s.current = p.Index
	if s.current < 0 {
		s.current = 0
	}
	if last := len(s.questions) - 1; s.current > last && last >= 0 {
		s.current = last
	}
	if len(s.questions) == 0 {
		s.current = 0
	}

	s.answered = make(map[string]ChoiceKey, len(p.Answered))
	for id, k := range p.Answered {
		s.answered[id] = k
	}
	s.score = p.Score
}
