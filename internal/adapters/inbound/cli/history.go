package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/history"
	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput bool
		clearAll   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded conversions",
		Long:  "Show the conversions recorded in .codeshift/history.json. Recording is enabled by record_history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			hist := history.New()
			if clearAll {
				if err := hist.Clear(a.dir); err != nil {
					return fmt.Errorf("clearing history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
				return nil
			}

			entries, err := hist.Load(a.dir)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete the recorded history")
	return cmd
}
