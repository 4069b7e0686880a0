package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman/internal/services/session"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play rounds until you quit or the words run out",
		Args:  cobra.NoArgs,
		RunE:  runPlay(cfg),
	}
}

func runPlay(cfg *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd, cfg)
		if err != nil {
			return err
		}

		bank, err := app.LoadWordBank(cmd.Context())
		if err != nil {
			return err
		}

		if clamped := session.ClampChances(cfg.Chances); clamped != cfg.Chances {
			app.Logger.Debug("chances clamped",
				slog.Int("requested", cfg.Chances),
				slog.Int("chances", clamped),
			)
		}

		ctrl := app.NewSession(bank, session.Config{Chances: cfg.Chances})
		_, err = ctrl.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		return err
	}
}
