package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ldbpro/ldbpro-cli/internal/cli"
	"github.com/ldbpro/ldbpro-cli/pkg/export"
	"github.com/ldbpro/ldbpro-cli/pkg/models"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

var (
	exportFormats []string
	exportDir     string
	exportStdout  bool
	exportCopy    bool
	exportPretty  bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the page as JSON, XML or HTML",
		Long: `Export the page to <page name>_data.<format> files.

The formats and the target directory default to the export section of
.ldbpro/settings.yaml (JSON and XML in the current directory).

Examples:
  # Write the configured formats
  ldbpro export

  # Write all three formats into ./out
  ldbpro export --format json,xml,html --dir out

  # Print highlighted XML
  ldbpro export --format xml --stdout --pretty

  # Copy the JSON document to the clipboard
  ldbpro export --format json --copy`,
		Args:    cobra.NoArgs,
		PreRunE: requireProject,
		RunE:    runExport,
	}

	cmd.Flags().StringSliceVar(&exportFormats, "format", nil, "Formats to export (json, xml, html)")
	cmd.Flags().StringVar(&exportDir, "dir", "", "Directory to write the files to")
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print to stdout instead of writing files")
	cmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy the first format to the clipboard instead of writing files")
	cmd.Flags().BoolVar(&exportPretty, "pretty", false, "Syntax-highlight output printed with --stdout")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	defer ctx.Close()

	settings := ctx.LoadSettingsWithDefault()
	store, err := ctx.Store()
	if err != nil {
		return err
	}
	page := store.LoadPageOrNew()

	requested := exportFormats
	if len(requested) == 0 {
		requested = settings.Export.Formats
	}
	formats, err := export.ParseFormats(requested)
	if err != nil {
		return err
	}
	if len(formats) == 0 {
		return fmt.Errorf("no export format given")
	}

	if err := confirmIncomplete(cmd, page); err != nil {
		return err
	}

	switch {
	case exportCopy:
		out, err := export.Render(page, formats[0])
		if err != nil {
			return err
		}
		if err := writeClipboard(out); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("%s copied to clipboard", strings.ToUpper(string(formats[0])))
		return nil

	case exportStdout:
		style := export.HighlightStyle(store.LoadTheme())
		for _, f := range formats {
			out, err := export.Render(page, f)
			if err != nil {
				return err
			}
			if exportPretty && !cli.NoColor() {
				out = export.Highlight(out, f, style)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return nil
	}

	dir := exportDir
	if dir == "" {
		dir = settings.Export.Dir
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	written, err := export.WriteFiles(dir, page, formats)
	for _, path := range written {
		size := int64(0)
		if info, statErr := os.Stat(path); statErr == nil {
			size = info.Size()
		}
		cli.PrintSuccess("Exported %s (%s)", path, cli.FormatBytes(size))
	}
	if err != nil {
		return err
	}

	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = strings.ToUpper(string(f))
	}
	ctx.Logger.Info("exported page", "files", written)
	cli.PrintInfo("%s export successful!", strings.Join(names, " + "))
	return nil
}

// confirmIncomplete asks before exporting components with empty required
// fields. Printing to stdout only warns.
func confirmIncomplete(cmd *cobra.Command, page models.PageDataModel) error {
	incomplete := 0
	for _, c := range page.Components {
		if len(c.MissingRequired()) > 0 {
			incomplete++
		}
	}
	if incomplete == 0 {
		return nil
	}

	noun := "component has"
	if incomplete > 1 {
		noun = "components have"
	}
	msg := fmt.Sprintf("%d %s empty required fields", incomplete, noun)

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if exportStdout || skipConfirm {
		cli.PrintWarning("%s", msg)
		return nil
	}

	confirmed, err := cli.Confirm(msg+". Export anyway?", false)
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("export cancelled")
	}
	return nil
}
