package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string `mapstructure:"env"` // current application environment (local, dev, prod etc)
	TelegramAPIToken string `mapstructure:"-"`   // Telegram API token loaded from environment
	DB               DB     `mapstructure:"database"`
	Quiz             Quiz   `mapstructure:"quiz"`
}

// DB contains database-related configuration parameters.
type DB struct {
	Driver          string        `mapstructure:"driver"`            // "sqlite" or "postgres"
	URL             string        `mapstructure:"-"`                 // postgres connection string loaded from environment
	Path            string        `mapstructure:"path"`              // sqlite database file path
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// DSN returns the postgres connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Quiz contains question-set source configuration.
type Quiz struct {
	DefaultSource string            `mapstructure:"default_source"` // source used when a chat has no persisted one
	Topics        map[string]string `mapstructure:"topics"`         // topic name -> source URL presets
	FetchTimeout  time.Duration     `mapstructure:"fetch_timeout"`  // per-fetch HTTP timeout
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "quizbot.db")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("quiz.fetch_timeout", "30s")
	v.SetDefault("quiz.topics", map[string]string{
		"java":       "https://raw.githubusercontent.com/yared2/Quize/main/data/java.ndjson",
		"spring":     "https://raw.githubusercontent.com/yared2/Quize/main/data/spring.ndjson",
		"kubernetes": "https://raw.githubusercontent.com/yared2/Quize/main/data/kubernetes.ndjson",
	})
	v.SetDefault("quiz.default_source", "https://raw.githubusercontent.com/yared2/Quize/main/data/java.ndjson")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.Driver == "postgres" && cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	return &cfg, nil
}
