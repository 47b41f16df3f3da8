package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check whether a file parses as a settings document",
		Long: `Check whether a file's content parses as a settings document.

Only structural validity is checked: the content must be a syntactically
valid JSON object. Field types are not enforced here; use 'doctor' for a
well-formedness report.

Examples:
  augur-settings validate my-settings.json`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := files.ImportFile(args[0])
	if err != nil {
		return err
	}

	if _, err := schema.Validate(string(data)); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid settings document\n", args[0])
	return nil
}
