package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/convert"
)

func newLanguagesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the selectable languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return renderJSON(cmd, domain.SupportedLanguages)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderLanguages(domain.SupportedLanguages))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newPairsCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "List the language pairs with a dedicated converter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := convert.Pairs()
			if jsonOutput {
				return renderJSON(cmd, pairs)
			}
			rows := make([]tui.PairRow, len(pairs))
			for i, p := range pairs {
				rows[i] = tui.PairRow{From: p.From, To: p.To}
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPairs(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

// ruleInfo is the --json shape of one fix rule.
type ruleInfo struct {
	Name        string `json:"name"`
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Explanation string `json:"explanation"`
}

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the active fix rules in application order",
		Long:  "List the fix catalog after removing the rules named in disabled_rules.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			rules := a.conversions.FixRules()
			if jsonOutput {
				out := make([]ruleInfo, len(rules))
				for i, r := range rules {
					out[i] = ruleInfo{Name: r.Name, Pattern: r.Pattern.String(), Replacement: r.Replacement, Explanation: r.Explanation}
				}
				return renderJSON(cmd, out)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(rules))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
