package commands

import (
	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
)

// NewMoveCommand creates the move command
func NewMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <position> <up|down>",
		Short: "Move a component one step up or down",
		Long: `Swap a component with its neighbour.

Moving the first component up or the last one down changes nothing.

Examples:
  ldbpro move 3 up
  ldbpro move 1 down`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"up", "down"},
		PreRunE:   requireProject,
		RunE:      runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
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
	dir, err := cli.ParseDirection(args[1])
	if err != nil {
		return err
	}

	if !d.Move(idx, dir) {
		edge := "top"
		if dir > 0 {
			edge = "bottom"
		}
		cli.PrintInfo("Component %d is already at the %s", idx+1, edge)
		return nil
	}

	cli.PrintSuccess("Component moved successfully!")
	return nil
}
