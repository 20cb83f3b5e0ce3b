package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
)

// NewRenameCommand creates the rename command
func NewRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename the page",
		Long: `Set the page name. The name also decides the export file names:
whitespace becomes underscores, so "Landing Page" exports as
Landing_Page_data.json.

Examples:
  ldbpro rename "Landing Page"`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: requireProject,
		RunE:    runRename,
	}
}

func runRename(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("please enter a name for your page")
	}

	ctx := cli.NewCommandContext()
	defer ctx.Close()

	d, err := ctx.LoadDesigner()
	if err != nil {
		return err
	}

	old := d.PageName()
	d.SetPageName(name)

	cli.PrintSuccess("Renamed page: %s → %s", old, name)
	return nil
}
