package storage

import (
	"sync"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// Sessions provides in-memory storage for active quiz states by chat ID.
// Each chat owns at most one state; loading a new question set replaces the
// previous state wholesale.
type Sessions struct {
	mu     sync.RWMutex
	states map[int64]*entities.QuizState
}

// NewSessions creates an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{
		states: make(map[int64]*entities.QuizState),
	}
}

// Put stores the quiz state for a chat, replacing any prior one.
func (s *Sessions) Put(chatID int64, state *entities.QuizState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[chatID] = state
}

// Get retrieves the quiz state for a chat.
func (s *Sessions) Get(chatID int64) (*entities.QuizState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[chatID]
	return state, ok
}

// Delete removes the quiz state for a chat.
func (s *Sessions) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, chatID)
}
