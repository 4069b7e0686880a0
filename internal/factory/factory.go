package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/hangman/internal/dependencies/clock"
	"github.com/mcoot/hangman/internal/dependencies/random"
	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/services/session"
	"github.com/mcoot/hangman/internal/services/wordbank"
	"github.com/mcoot/hangman/internal/storage"
	"github.com/mcoot/hangman/internal/storage/file"
	redisstorage "github.com/mcoot/hangman/internal/storage/redis"
)

// Word source type constants
const (
	SourceTypeFile  = "file"
	SourceTypeRedis = "redis"
)

// App contains all wired application components
type App struct {
	// Word data
	Source storage.WordSource

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WordBankService *wordbank.Service

	Logger *slog.Logger

	closeSource func() error
}

// Config holds configuration for the application factory
type Config struct {
	// SourceType selects the word source ("file" or "redis")
	// If empty, defaults to "file"
	SourceType string
	// WordsPath is the JSON word file (required if SourceType is "file")
	WordsPath string
	// RedisConfig holds Redis connection settings (required if SourceType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	source, closeSource, err := newSource(cfg)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(source, clock.New(), random.New(), logger)
	app.closeSource = closeSource
	return app, nil
}

func newSource(cfg Config) (storage.WordSource, func() error, error) {
	sourceType := cfg.SourceType
	if sourceType == "" {
		sourceType = SourceTypeFile
	}

	switch sourceType {
	case SourceTypeFile:
		if cfg.WordsPath == "" {
			return nil, nil, errors.New("WordsPath required when SourceType is file")
		}
		return file.New(cfg.WordsPath), nil, nil
	case SourceTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, nil, errors.New("RedisConfig required when SourceType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		return redisStore, redisStore.Close, nil
	default:
		return nil, nil, errors.New("invalid SourceType: must be 'file' or 'redis'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(source storage.WordSource, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Source:          source,
		Clock:           clk,
		Random:          rnd,
		WordBankService: wordbank.New(source, logger),
		Logger:          logger,
	}
}

// LoadWordBank reads the word source once and releases it.
// The source cannot be used again afterwards.
func (a *App) LoadWordBank(ctx context.Context) (*model.WordBank, error) {
	defer a.Close()

	bank, err := a.WordBankService.Load(ctx)
	if err != nil {
		a.Logger.Error("failed to load word bank", slog.String("error", err.Error()))
		return nil, err
	}
	return bank, nil
}

// NewSession creates a session controller owning bank, with its own session id in the logs
func (a *App) NewSession(bank *model.WordBank, cfg session.Config) *session.Controller {
	logger := a.Logger.With(slog.String("session_id", uuid.NewString()))
	return session.NewController(bank, a.Random, a.Clock, cfg, logger)
}

// Close releases the word source connection, if any
func (a *App) Close() error {
	if a.closeSource == nil {
		return nil
	}
	closeFn := a.closeSource
	a.closeSource = nil
	return closeFn()
}
