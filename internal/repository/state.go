package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// StateRepository persists quiz session snapshots in PostgreSQL,
// one row per chat, last write wins.
type StateRepository struct {
	db *pgxpool.Pool
}

// NewStateRepository creates a new StateRepository with the provided database pool.
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

// Save upserts the snapshot for a chat. An empty source URL never
// overwrites a previously stored one.
func (r *StateRepository) Save(ctx context.Context, chatID int64, state entities.PersistedState) error {
	answered, err := json.Marshal(state.Answered)
	if err != nil {
		return fmt.Errorf("marshal answered: %w", err)
	}

	query := `
		INSERT INTO quiz_states (chat_id, source_url, current_idx, answered, score, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (chat_id) DO UPDATE
		SET source_url = CASE
				WHEN EXCLUDED.source_url = '' THEN quiz_states.source_url
				ELSE EXCLUDED.source_url
			END,
			current_idx = EXCLUDED.current_idx,
			answered = EXCLUDED.answered,
			score = EXCLUDED.score,
			updated_at = NOW()
	`

	_, err = r.db.Exec(ctx, query, chatID, state.SourceURL, state.Index, answered, state.Score)
	if err != nil {
		return fmt.Errorf("save quiz state: %w", err)
	}

	return nil
}

// Get retrieves the snapshot for a chat. A missing row or a row whose
// answer map cannot be decoded counts as no prior state, not an error.
func (r *StateRepository) Get(ctx context.Context, chatID int64) (entities.PersistedState, error) {
	query := `
		SELECT source_url, current_idx, answered, score
		FROM quiz_states
		WHERE chat_id = $1
	`

	var (
		state    entities.PersistedState
		answered []byte
	)
	err := r.db.QueryRow(ctx, query, chatID).Scan(
		&state.SourceURL,
		&state.Index,
		&answered,
		&state.Score,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PersistedState{}, nil
		}
		return entities.PersistedState{}, fmt.Errorf("get quiz state: %w", err)
	}

	if err := json.Unmarshal(answered, &state.Answered); err != nil {
		return entities.PersistedState{}, nil
	}

	return state, nil
}
