package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// newPromptDriver is swapped out in tests
var newPromptDriver = cli.NewSurveyDriver

var addAssignments []string

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [type]",
		Short: "Add a component to the end of the page",
		Long: `Add a component to the end of the page.

Without --set, the fields are asked for one by one. Required fields are
marked with *. With --set, the given values are used as-is and nothing
is asked.

Types: richText, imageBanner, genericBanner, video, button

Examples:
  # Pick a type and fill in the form
  ldbpro add

  # Add a button without prompting
  ldbpro add button --set text="Sign up" --set url=/signup`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: requireProject,
		RunE:    runAdd,
	}

	cmd.Flags().StringArrayVar(&addAssignments, "set", nil, "Set a field without prompting (field=value, repeatable)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	var (
		componentType models.ComponentType
		err           error
	)
	if len(args) == 1 {
		componentType, err = cli.ValidateComponentType(args[0])
		if err != nil {
			return err
		}
	}

	component := models.PageComponent{Data: models.ComponentData{}}

	if len(addAssignments) > 0 {
		if componentType == "" {
			return fmt.Errorf("a component type is required with --set")
		}
		order, values, err := cli.ParseAssignments(addAssignments)
		if err != nil {
			return err
		}
		schema := models.SchemaOf(componentType)
		for _, name := range order {
			if _, ok := schema.Field(name); !ok {
				return fmt.Errorf("unknown field %q for %s (fields: %s)",
					name, componentType, strings.Join(schema.FieldNames(), ", "))
			}
			component.Data.Set(name, values[name])
		}
	} else {
		driver := newPromptDriver()
		if componentType == "" {
			componentType, err = cli.SelectComponentType(cmd.Context(), driver)
			if err != nil {
				return err
			}
		}
		component = models.NewEmptyComponent(componentType)
		if err := cli.FillComponent(cmd.Context(), driver, models.SchemaOf(componentType), &component); err != nil {
			return err
		}
	}

	ctx := cli.NewCommandContext()
	defer ctx.Close()

	d, err := ctx.LoadDesigner()
	if err != nil {
		return err
	}

	idx := d.Add(componentType)
	for _, key := range component.Data.Keys() {
		if err := d.EditField(idx, key, component.Data.Value(key)); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	added, _ := d.Component(idx)
	cli.PrintSuccess("Added %s at position %d", componentType.DisplayName(), idx+1)
	if missing := added.MissingRequired(); len(missing) > 0 {
		cli.PrintWarning("Required fields are empty: %s", strings.Join(missing, ", "))
	}
	return nil
}
