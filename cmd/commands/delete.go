package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a component",
		Long: `Delete the component at the given position (as listed by 'ldbpro show').

Examples:
  # Delete the second component (with confirmation)
  ldbpro delete 2

  # Skip the confirmation
  ldbpro delete 2 -y`,
		Args:    cobra.ExactArgs(1),
		Aliases: []string{"rm"},
		PreRunE: requireProject,
		RunE:    runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	defer ctx.Close()

	d, err := ctx.LoadDesigner()
	if err != nil {
		return err
	}

	idx, err := cli.ParsePosition(args[0], d.Len())
	if err != nil {
		return err
	}
	c, _ := d.Component(idx)

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm {
		prompt := fmt.Sprintf("Delete component %d (%s)?", idx+1, c.Type.DisplayName())
		confirmed, err := cli.Confirm(prompt, false)
		if err != nil {
			return err
		}
		if !confirmed {
			cli.PrintInfo("Deletion cancelled")
			return nil
		}
	}

	if err := d.Delete(idx); err != nil {
		return fmt.Errorf("failed to delete component: %w", err)
	}

	cli.PrintSuccess("Component deleted: %s", c.Type.DisplayName())
	return nil
}
