package service

import (
	"context"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// StateRepository is the durable store for quiz session snapshots.
type StateRepository interface {
	Save(ctx context.Context, chatID int64, state entities.PersistedState) error
	Get(ctx context.Context, chatID int64) (entities.PersistedState, error)
}

// SourceFetcher downloads a question-set document.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// SetParser parses raw source text into questions.
type SetParser interface {
	Parse(rawText, sourceHint string) []entities.Question
}
