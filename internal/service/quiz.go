package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
	"github.com/yared2/quizbot/internal/storage"
)

var ErrNoActiveQuiz = errors.New("no active quiz for this chat")

// QuizService hosts one quiz state per chat and runs its operations.
// Every mutation is followed by a snapshot write to durable storage; a
// failed write is logged and does not fail the operation itself.
type QuizService struct {
	sessions *storage.Sessions
	states   StateRepository
	logger   *zap.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(sessions *storage.Sessions, states StateRepository, logger *zap.Logger) *QuizService {
	return &QuizService{
		sessions: sessions,
		states:   states,
		logger:   logger,
	}
}

// Session returns the active quiz state for a chat.
func (s *QuizService) Session(chatID int64) (*entities.QuizState, error) {
	state, ok := s.sessions.Get(chatID)
	if !ok {
		return nil, ErrNoActiveQuiz
	}
	return state, nil
}

// AnswerResult describes the outcome of an answer attempt.
type AnswerResult struct {
	Question entities.Question  // the question that was answered
	Chosen   entities.ChoiceKey // the choice now locked in for it
	Recorded bool               // false if the question was already locked
	Correct  bool               // whether the recorded choice was right
}

// Answer records a choice for the current question. The first answer is
// final: on an already-locked question nothing changes and Recorded is
// false, with Chosen reporting the originally locked choice.
func (s *QuizService) Answer(ctx context.Context, chatID int64, key entities.ChoiceKey) (AnswerResult, error) {
	state, err := s.Session(chatID)
	if err != nil {
		return AnswerResult{}, err
	}

	q, ok := state.Current()
	if !ok {
		return AnswerResult{}, ErrNoActiveQuiz
	}

	recorded, correct := state.Answer(key)
	if !recorded {
		chosen, _ := state.Chosen(q)
		return AnswerResult{Question: q, Chosen: chosen}, nil
	}

	s.persist(ctx, chatID, state)

	return AnswerResult{
		Question: q,
		Chosen:   key,
		Recorded: true,
		Correct:  correct,
	}, nil
}

// Next advances to the following question, clamped at the end of the set.
func (s *QuizService) Next(ctx context.Context, chatID int64) (*entities.QuizState, error) {
	state, err := s.Session(chatID)
	if err != nil {
		return nil, err
	}

	if state.Next() {
		s.persist(ctx, chatID, state)
	}
	return state, nil
}

// Prev moves back to the previous question, clamped at the start.
func (s *QuizService) Prev(ctx context.Context, chatID int64) (*entities.QuizState, error) {
	state, err := s.Session(chatID)
	if err != nil {
		return nil, err
	}

	if state.Prev() {
		s.persist(ctx, chatID, state)
	}
	return state, nil
}

// Shuffle reorders the questions at random, keeping answers and score.
func (s *QuizService) Shuffle(ctx context.Context, chatID int64) (*entities.QuizState, error) {
	state, err := s.Session(chatID)
	if err != nil {
		return nil, err
	}

	state.Shuffle()
	s.persist(ctx, chatID, state)
	return state, nil
}

// Restart clears answers and score and returns to the first question.
func (s *QuizService) Restart(ctx context.Context, chatID int64) (*entities.QuizState, error) {
	state, err := s.Session(chatID)
	if err != nil {
		return nil, err
	}

	state.Restart()
	s.persist(ctx, chatID, state)
	return state, nil
}

func (s *QuizService) persist(ctx context.Context, chatID int64, state *entities.QuizState) {
	if err := s.states.Save(ctx, chatID, state.Snapshot()); err != nil {
		s.logger.Warn("persist quiz state",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
