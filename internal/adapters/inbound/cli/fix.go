package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
)

func newFixCmd() *cobra.Command {
	var (
		lang       string
		code       string
		report     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Repair known bug patterns in a snippet",
		Long:  "Apply the fix catalog to a snippet from --code, a file or stdin and print the repaired code.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			text, err := readInput(cmd, code, args)
			if err != nil {
				return err
			}
			language, err := parseLanguageFlag(lang, text)
			if err != nil {
				return err
			}

			result := a.conversions.Fix(text, language)

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case report:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderFixReport(language, result))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), result.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "auto", "Language tag, or auto to detect")
	cmd.Flags().StringVar(&code, "code", "", "Snippet to fix instead of a file or stdin")
	cmd.Flags().BoolVar(&report, "report", false, "List the rules that fired above the code")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
