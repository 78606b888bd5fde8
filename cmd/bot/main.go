package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/yared2/quizbot/internal/config"
	"github.com/yared2/quizbot/internal/delivery/telegram"
	"github.com/yared2/quizbot/internal/infra/postgres"
	"github.com/yared2/quizbot/internal/infra/sqlite"
	"github.com/yared2/quizbot/internal/logger"
	"github.com/yared2/quizbot/internal/questionset"
	"github.com/yared2/quizbot/internal/repository"
	"github.com/yared2/quizbot/internal/service"
	"github.com/yared2/quizbot/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zapLogger.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.Panic(err)
	}

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Resume or start a quiz",
		},
		{
			Command:     "topics",
			Description: "Pick a preset question set",
		},
		{
			Command:     "load",
			Description: "Load a question set from a URL",
		},
		{
			Command:     "next",
			Description: "Next question",
		},
		{
			Command:     "prev",
			Description: "Previous question",
		},
		{
			Command:     "shuffle",
			Description: "Shuffle the questions",
		},
		{
			Command:     "restart",
			Description: "Clear answers and score",
		},
		{
			Command:     "score",
			Description: "Show the current score",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	_, err = bot.Request(tgbotapi.NewSetMyCommands(commands...))
	if err != nil {
		log.Printf("Failed to set bot commands: %v", err)
	}

	log.Printf("Authorized on account %s", bot.Self.UserName)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pick the durable store for quiz snapshots.
	var states service.StateRepository
	switch cfg.DB.Driver {
	case "postgres":
		dsn, err := cfg.DB.DSN()
		if err != nil {
			log.Fatal(err)
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		states = repository.NewStateRepository(pool)

	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.DB.Path)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		states = repository.NewSQLiteStateRepository(db)

	default:
		log.Fatalf("unsupported database driver: %s", cfg.DB.Driver)
	}

	sessions := storage.NewSessions()
	parser := questionset.NewParser(zapLogger)
	fetcher := questionset.NewFetcher(cfg.Quiz.FetchTimeout)

	quizService := service.NewQuizService(sessions, states, zapLogger)
	loaderService := service.NewLoaderService(
		fetcher,
		parser,
		states,
		sessions,
		cfg.Quiz.Topics,
		cfg.Quiz.DefaultSource,
		zapLogger,
	)

	handler := telegram.NewHandler(bot, zapLogger, quizService, loaderService)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Panic(err)
	}

	log.Println("shutdown signal received")
}
