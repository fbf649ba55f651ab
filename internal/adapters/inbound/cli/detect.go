package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
)

func newDetectCmd() *cobra.Command {
	var (
		code       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Guess the language of a snippet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, code, args)
			if err != nil {
				return err
			}
			lang := application.DetectLanguage(text)

			if jsonOutput {
				return renderJSON(cmd, domain.LanguageOption{Value: lang, Label: lang.Label()})
			}
			path := ""
			if code == "" && len(args) > 0 {
				path = args[0]
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDetection(path, lang))
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Snippet to classify instead of a file or stdin")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
