package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
	"github.com/yared2/quizbot/internal/storage"
)

var (
	ErrUnknownTopic = errors.New("unknown topic")
	ErrNoQuestions  = errors.New("no valid questions in source")
	ErrNoSource     = errors.New("no question source configured")
)

// LoaderService resolves, fetches and activates question sets, and rebuilds
// sessions from persisted snapshots after a restart.
type LoaderService struct {
	fetcher    SourceFetcher
	parser     SetParser
	states     StateRepository
	sessions   *storage.Sessions
	topics     map[string]string
	defaultURL string
	logger     *zap.Logger
}

// NewLoaderService creates a new LoaderService. topics maps preset topic
// names to source URLs; defaultURL is used when a chat has no persisted
// source.
func NewLoaderService(
	fetcher SourceFetcher,
	parser SetParser,
	states StateRepository,
	sessions *storage.Sessions,
	topics map[string]string,
	defaultURL string,
	logger *zap.Logger,
) *LoaderService {
	return &LoaderService{
		fetcher:    fetcher,
		parser:     parser,
		states:     states,
		sessions:   sessions,
		topics:     topics,
		defaultURL: defaultURL,
		logger:     logger,
	}
}

// Topics returns the configured topic names in sorted order.
func (s *LoaderService) Topics() []string {
	names := make([]string, 0, len(s.topics))
	for name := range s.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadTopic loads the preset source for a named topic.
func (s *LoaderService) LoadTopic(ctx context.Context, chatID int64, topic string) (*entities.QuizState, error) {
	url, ok := s.topics[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}
	return s.LoadURL(ctx, chatID, url)
}

// LoadURL fetches and parses the source at url and activates a fresh quiz
// state for the chat, replacing any prior session wholesale.
func (s *LoaderService) LoadURL(ctx context.Context, chatID int64, url string) (*entities.QuizState, error) {
	text, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	questions := s.parser.Parse(text, url)
	state := entities.NewQuizState(url, questions)
	if state.Total() == 0 {
		return nil, ErrNoQuestions
	}

	s.logger.Info("question set loaded",
		zap.Int64("chat_id", chatID),
		zap.String("url", url),
		zap.Int("questions", state.Total()),
	)

	s.sessions.Put(chatID, state)
	s.persist(ctx, chatID, state)

	return state, nil
}

// Resume returns the active session for a chat, rebuilding it from the
// persisted snapshot when the process has restarted. The source URL is
// resolved in order: persisted URL, then the configured default. Restored
// position is clamped to the freshly loaded set; answers and score are
// applied verbatim.
func (s *LoaderService) Resume(ctx context.Context, chatID int64) (*entities.QuizState, error) {
	if state, ok := s.sessions.Get(chatID); ok {
		return state, nil
	}

	prev, err := s.states.Get(ctx, chatID)
	if err != nil {
		s.logger.Warn("read persisted state",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		prev = entities.PersistedState{}
	}

	url := prev.SourceURL
	if url == "" {
		url = s.defaultURL
	}
	if url == "" {
		return nil, ErrNoSource
	}

	text, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	questions := s.parser.Parse(text, url)
	state := entities.NewQuizState(url, questions)
	if state.Total() == 0 {
		return nil, ErrNoQuestions
	}

	state.Restore(prev)
	s.sessions.Put(chatID, state)
	s.persist(ctx, chatID, state)

	return state, nil
}

func (s *LoaderService) persist(ctx context.Context, chatID int64, state *entities.QuizState) {
	if err := s.states.Save(ctx, chatID, state.Snapshot()); err != nil {
		s.logger.Warn("persist quiz state",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
