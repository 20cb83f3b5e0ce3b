package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/designer"
	"github.com/ldbpro/ldbpro-cli/pkg/files"
	"github.com/ldbpro/ldbpro-cli/pkg/tui"
)

// NewRootCommand builds the ldbpro command tree. Without a subcommand it
// opens the page designer.
func NewRootCommand(version string) *cobra.Command {
	var (
		quiet    bool
		noColor  bool
		yes      bool
		output   string
		closeLog func() error
	)

	root := &cobra.Command{
		Use:   "ldbpro",
		Short: "Terminal page designer for LDBPRO",
		Long: `LDBPRO is a terminal page designer. Build a page from rich text, banners,
videos and buttons, reorder it, and export it as JSON, XML or HTML.

Run 'ldbpro' without arguments to open the interactive designer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cli.SetGlobalFlags(quiet, noColor, yes)
			if err := cli.ValidateOutputFormat(output); err != nil {
				return err
			}

			logger, closer, err := cli.SetupLogger(files.LoadSettingsOrDefault())
			if err != nil {
				return err
			}
			closeLog = closer
			logger.Debug("running command", "command", cmd.CommandPath(), "args", args)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog == nil {
				return nil
			}
			err := closeLog()
			closeLog = nil
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesigner(version)
		},
	}

	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable symbols and colors in messages")
	root.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Answer yes to every confirmation")
	root.PersistentFlags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	root.AddCommand(
		NewInitCommand(),
		NewVersionCommand(version),
		NewShowCommand(),
		NewAddCommand(),
		NewDeleteCommand(),
		NewMoveCommand(),
		NewRenameCommand(),
		NewExportCommand(),
		NewThemeCommand(),
	)

	return root
}

func runDesigner(version string) error {
	ctx := cli.NewCommandContext()
	defer ctx.Close()

	if err := ctx.ValidateProject(); err != nil {
		return err
	}

	store, err := ctx.Store()
	if err != nil {
		return err
	}

	// The app saves through its own listener; stderr belongs to the TUI
	err = tui.Run(tui.Options{
		Designer: designer.New(store.LoadPageOrNew()),
		Store:    store,
		Settings: ctx.LoadSettingsWithDefault(),
		Logger:   slog.Default(),
		Version:  version,
	})
	if err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// requireProject is shared by the commands that read or change the page
func requireProject(cmd *cobra.Command, args []string) error {
	return cli.NewCommandContext().ValidateProject()
}
