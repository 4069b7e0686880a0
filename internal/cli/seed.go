package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman/internal/services/wordbank"
	"github.com/mcoot/hangman/internal/storage/file"
	redisstorage "github.com/mcoot/hangman/internal/storage/redis"
)

func newSeedCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Copy the JSON word file into Redis, replacing its categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			// Validate before writing so Redis never holds words the game would reject
			bank, err := wordbank.New(file.New(cfg.WordsFile), logger).Load(cmd.Context())
			if err != nil {
				return err
			}

			redisCfg := redisstorage.DefaultConfig()
			redisCfg.URL = cfg.RedisURL
			store, err := redisstorage.New(redisCfg)
			if err != nil {
				return fmt.Errorf("connect to redis: %w", err)
			}
			defer store.Close()

			records := bank.Records()
			if err := store.SaveCategories(cmd.Context(), records); err != nil {
				return fmt.Errorf("seed redis: %w", err)
			}

			result := SeedResult{Categories: len(records), Words: bank.TotalWords()}
			logger.Info("seeded word source",
				slog.Int("categories", result.Categories),
				slog.Int("words", result.Words),
			)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
