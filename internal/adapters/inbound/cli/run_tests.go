package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/tui"
	"github.com/abdidvp/codeshift/internal/application"
	"github.com/abdidvp/codeshift/internal/domain"
	"github.com/abdidvp/codeshift/internal/domain/simulate"
)

// testReport is the --json shape of a test run.
type testReport struct {
	Function string              `json:"function"`
	Category simulate.Category   `json:"category"`
	Summary  domain.TestSummary  `json:"summary"`
	Results  []domain.TestResult `json:"results"`
}

func newTestCmd() *cobra.Command {
	var (
		lang       string
		code       string
		cases      string
		casesFile  string
		jsonOutput bool
		ciMode     bool
	)

	cmd := &cobra.Command{
		Use:   "test [file]",
		Short: "Check test cases against a snippet's function",
		Long: "Evaluate input/expected pairs against what the snippet's function name says it does " +
			"(parity, addition or multiplication). The snippet itself is never executed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if cases == "" && casesFile != "" {
				data, err := os.ReadFile(casesFile)
				if err != nil {
					return fmt.Errorf("reading %s: %w", casesFile, err)
				}
				cases = string(data)
			}
			if cases == "" {
				return fmt.Errorf("no test cases: use --cases or --cases-file")
			}

			text, err := readInput(cmd, code, args)
			if err != nil {
				return err
			}
			language, err := parseLanguageFlag(lang, text)
			if err != nil {
				return err
			}

			parsed := application.ParseTestCases(cases, a.logger)
			results := a.tests.RunTests(text, language, parsed)
			name := simulate.FunctionName(text, language)
			summary := domain.Summarize(results)

			if jsonOutput {
				if err := renderJSON(cmd, testReport{
					Function: name,
					Category: simulate.Classify(name),
					Summary:  summary,
					Results:  results,
				}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderTestResults(name, results))
			}

			if ciMode && summary.Failed > 0 {
				return fmt.Errorf("%d of %d tests failed", summary.Failed, summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "auto", "Language tag, or auto to detect")
	cmd.Flags().StringVar(&code, "code", "", "Snippet to test instead of a file or stdin")
	cmd.Flags().StringVar(&cases, "cases", "", `JSON array of {"input": [...], "expected": value}`)
	cmd.Flags().StringVar(&casesFile, "cases-file", "", "File holding the test cases JSON")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "Exit non-zero when any case fails")

	return cmd
}
