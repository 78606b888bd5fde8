package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// SQLiteStateRepository persists quiz session snapshots in a local SQLite
// file. It implements the same contract as StateRepository and lets the bot
// run without a PostgreSQL instance.
type SQLiteStateRepository struct {
	db *sql.DB
}

// NewSQLiteStateRepository creates a new SQLiteStateRepository over an open database.
func NewSQLiteStateRepository(db *sql.DB) *SQLiteStateRepository {
	return &SQLiteStateRepository{db: db}
}

// Save upserts the snapshot for a chat, preserving the stored source URL
// when the new one is empty.
func (r *SQLiteStateRepository) Save(ctx context.Context, chatID int64, state entities.PersistedState) error {
	answered, err := json.Marshal(state.Answered)
	if err != nil {
		return fmt.Errorf("marshal answered: %w", err)
	}

	query := `
		INSERT INTO quiz_states (chat_id, source_url, current_idx, answered, score, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (chat_id) DO UPDATE
		SET source_url = CASE
				WHEN excluded.source_url = '' THEN quiz_states.source_url
				ELSE excluded.source_url
			END,
			current_idx = excluded.current_idx,
			answered = excluded.answered,
			score = excluded.score,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		chatID, state.SourceURL, state.Index, string(answered), state.Score, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("save quiz state: %w", err)
	}

	return nil
}

// Get retrieves the snapshot for a chat. A missing row or malformed stored
// data counts as no prior state, not an error.
func (r *SQLiteStateRepository) Get(ctx context.Context, chatID int64) (entities.PersistedState, error) {
	query := `
		SELECT source_url, current_idx, answered, score
		FROM quiz_states
		WHERE chat_id = $1
	`

	var (
		state    entities.PersistedState
		answered string
	)
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&state.SourceURL,
		&state.Index,
		&answered,
		&state.Score,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.PersistedState{}, nil
		}
		return entities.PersistedState{}, fmt.Errorf("get quiz state: %w", err)
	}

	if err := json.Unmarshal([]byte(answered), &state.Answered); err != nil {
		return entities.PersistedState{}, nil
	}

	return state, nil
}
