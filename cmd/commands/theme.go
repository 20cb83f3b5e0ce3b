package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
)

// NewThemeCommand creates the theme command
func NewThemeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theme [dark|light]",
		Short: "Show or set the designer theme",
		Long: `Without an argument, print the current theme. With one, store it for the
next designer session.

Examples:
  ldbpro theme
  ldbpro theme light`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light"},
		PreRunE:   requireProject,
		RunE:      runTheme,
	}
}

func runTheme(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	defer ctx.Close()

	store, err := ctx.Store()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), store.LoadTheme())
		return nil
	}

	theme, err := cli.ValidateTheme(args[0])
	if err != nil {
		return err
	}
	if !store.SaveTheme(theme) {
		return fmt.Errorf("failed to save theme, see the log for details")
	}

	cli.PrintSuccess("Theme set to %s", theme)
	return nil
}
