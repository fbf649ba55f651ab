package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codeshift",
		Short: "Convert and repair code snippets between languages",
		Long: "codeshift converts short snippets between Python, JavaScript, TypeScript, Java and C++, " +
			"repairs a small catalog of common bug patterns, and checks results against name-driven test cases.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Log routing and cache decisions to stderr")
	cmd.PersistentFlags().String("config-dir", ".", "Directory holding .codeshift.yaml, .env and history")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newFixCmd())
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newPairsCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newMCPCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
