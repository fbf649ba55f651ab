package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/codeshift/internal/adapters/outbound/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .codeshift.yaml configuration file",
		Long:  "Create a .codeshift.yaml holding the default settings, each one commented.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if _, err := config.WriteDefault(absPath, force); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Created .codeshift.yaml")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .codeshift.yaml")

	return cmd
}
