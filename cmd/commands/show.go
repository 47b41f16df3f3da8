package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/internal/cli"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print the canonical form of a settings document",
		Long: `Print the canonical serialization of a settings document.

With no argument the built-in default document is shown. With a file
argument the file is parsed first and printed in canonical form.

Examples:
  # Show the built-in defaults
  augur-settings show

  # Show a settings file, canonically formatted
  augur-settings show my-settings.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	doc, err := cli.LoadBaseDocument(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), schema.Canonical(doc))
	return nil
}
