package cli

import (
	"github.com/spf13/cobra"
)

func newCategoriesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories in the word source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, cfg)
			if err != nil {
				return err
			}

			bank, err := app.LoadWordBank(cmd.Context())
			if err != nil {
				return err
			}

			result := CategoryList{TotalWords: bank.TotalWords()}
			for _, name := range bank.Categories() {
				result.Categories = append(result.Categories, CategorySummary{
					Name:  name,
					Words: bank.WordCount(name),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
