package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/internal/cli"
	"github.com/augur-omega/settings-terminal/pkg/files"
)

var (
	exportToFile string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the export artifact for a settings document",
		Long: `Write the export artifact for a settings document.

With no argument the built-in default document is exported. The artifact
is written under the fixed name ` + files.ExportFileName + ` into the
project's exports directory, or to the path given with --file.

Examples:
  # Export the defaults into .augur/exports/
  augur-settings export

  # Export a settings file to a chosen location
  augur-settings export my-settings.json --file /tmp/settings.json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if exportToFile != "" {
				return nil
			}
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to a specific file instead of the exports directory")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	doc, err := cli.LoadBaseDocument(path)
	if err != nil {
		return err
	}

	if exportToFile != "" {
		if err := files.WriteFile(exportToFile, doc.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported settings to %s\n", exportToFile)
		return nil
	}

	written, err := files.WriteExport(doc.Bytes())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported settings to %s\n", written)
	return nil
}
