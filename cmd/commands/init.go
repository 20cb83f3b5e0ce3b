package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new LDBPRO project",
		Long:  `Creates the .ldbpro folder with default settings in the current directory`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}

			cli.PrintInfo("Initializing LDBPRO project in %s...", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize project structure: %w", err)
			}

			cli.PrintSuccess("Created .ldbpro folder structure")
			cli.PrintInfo("Run 'ldbpro' to start designing your page.")
			return nil
		},
	}
}

// NewVersionCommand creates the version command
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of LDBPRO",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "LDBPRO version %s\n", version)
		},
	}
}
