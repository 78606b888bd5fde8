package storage

import (
	"testing"

	"github.com/yared2/quizbot/internal/domain/entities"
)

func TestSessionsPutReplacesState(t *testing.T) {
	s := NewSessions()

	if _, ok := s.Get(1); ok {
		t.Fatal("empty registry must miss")
	}

	first := entities.NewQuizState("https://example.com/a.csv", nil)
	second := entities.NewQuizState("https://example.com/b.csv", nil)

	s.Put(1, first)
	s.Put(1, second)

	got, ok := s.Get(1)
	if !ok || got != second {
		t.Fatal("Put must replace the previous state wholesale")
	}

	s.Delete(1)
	if _, ok := s.Get(1); ok {
		t.Fatal("Delete must remove the state")
	}
}
