package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// ShowResult is the structured output of the show command
type ShowResult struct {
	PageName   string          `json:"pageName" yaml:"pageName"`
	Count      int             `json:"count" yaml:"count"`
	Components []ShowComponent `json:"components" yaml:"components"`
}

// ShowComponent is one listed component with its position on the page
type ShowComponent struct {
	Position int                  `json:"position" yaml:"position"`
	ID       string               `json:"id" yaml:"id"`
	Type     models.ComponentType `json:"type" yaml:"type"`
	Data     models.ComponentData `json:"data" yaml:"data"`
	Missing  []string             `json:"missing,omitempty" yaml:"missing,omitempty"`
}

var showFilter string

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the page and its components",
		Long: `Show the stored page: its name and every component in page order.

Examples:
  # List the components
  ldbpro show

  # Only banners
  ldbpro show --filter '*Banner'

  # Machine-readable output
  ldbpro show -o json`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runShow,
	}

	cmd.Flags().StringVar(&showFilter, "filter", "", "Only list component types matching this glob")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	var matcher glob.Glob
	if showFilter != "" {
		g, err := glob.Compile(showFilter)
		if err != nil {
			return fmt.Errorf("invalid filter %q: %w", showFilter, err)
		}
		matcher = g
	}

	ctx := cli.NewCommandContext()
	defer ctx.Close()

	store, err := ctx.Store()
	if err != nil {
		return err
	}
	page := store.LoadPageOrNew()

	result := ShowResult{PageName: page.PageName, Components: []ShowComponent{}}
	for i, c := range page.Components {
		if matcher != nil && !matcher.Match(string(c.Type)) {
			continue
		}
		result.Components = append(result.Components, ShowComponent{
			Position: i + 1,
			ID:       c.ID,
			Type:     c.Type,
			Data:     c.Data,
			Missing:  c.MissingRequired(),
		})
	}
	result.Count = len(result.Components)

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "json" || outputFormat == "yaml" {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Page: %s\n\n", result.PageName)

	if result.Count == 0 {
		if len(page.Components) == 0 {
			fmt.Fprintln(out, "No components added.")
			fmt.Fprintln(out, "Run 'ldbpro add' to add your first component.")
		} else {
			fmt.Fprintf(out, "No components match %q.\n", showFilter)
		}
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("#", "TYPE", "ID", "PREVIEW")
	for _, c := range result.Components {
		pos := strconv.Itoa(c.Position)
		if len(c.Missing) > 0 {
			pos += "!"
		}
		table.Row(pos, string(c.Type), c.ID, cli.TruncateString(summarize(c.Data), 40))
	}
	table.Flush()

	fmt.Fprintf(out, "\nTotal: %d component(s)\n", result.Count)
	for _, c := range result.Components {
		if len(c.Missing) > 0 {
			cli.PrintWarning("Component %d is missing %s", c.Position, strings.Join(c.Missing, ", "))
		}
	}
	return nil
}

// summarize joins the non-empty field values
func summarize(data models.ComponentData) string {
	var parts []string
	for _, key := range data.Keys() {
		if v := data.Value(key); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " | ")
}
