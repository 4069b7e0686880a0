package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman/internal/factory"
	redisstorage "github.com/mcoot/hangman/internal/storage/redis"
)

// NewRootCmd creates the root command. Running it without a subcommand plays the game.
func NewRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Guess the hidden word one letter at a time",
		Long: `hangman is a console word-guessing game.

Pick a category, then guess the hidden word one letter at a time. You can
guess CHANCES wrong letters before you lose. Words are never repeated
during a session.`,
		Args:         cobra.NoArgs,
		RunE:         runPlay(cfg),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().IntVarP(&cfg.Chances, "chances", "c", cfg.Chances, "Wrong guesses allowed per round, clamped to 1-10 (env: HANGMAN_CHANCES)")
	rootCmd.PersistentFlags().StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "JSON word file (env: HANGMAN_WORDS_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Source, "source", cfg.Source, "Word source: file, redis (env: HANGMAN_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for the redis word source (env: HANGMAN_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: HANGMAN_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format for non-game commands: text, json")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(cfg))
	rootCmd.AddCommand(newCategoriesCmd(cfg))
	rootCmd.AddCommand(newSeedCmd(cfg))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	cfg, err := DefaultConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if err := NewRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newApp builds the logger and the application for a command invocation
func newApp(cmd *cobra.Command, cfg *Config) (*factory.App, error) {
	logger, err := NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	fcfg := factory.Config{
		SourceType: cfg.Source,
		WordsPath:  cfg.WordsFile,
		Logger:     logger,
	}
	if cfg.Source == factory.SourceTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		fcfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(fcfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		return nil, err
	}
	return app, nil
}
