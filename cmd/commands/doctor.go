package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/internal/cli"
	"github.com/augur-omega/settings-terminal/pkg/models"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <file>",
		Short: "Report known fields whose values have unexpected types",
		Long: `Report well-formedness problems in a settings document.

Checks every known field against its declared type (enum fields against
their allowed values) and flags top-level keys that are not one of the
five fixed categories. The report is advisory: documents with problems
are still accepted by 'validate' as long as they parse.

Examples:
  augur-settings doctor my-settings.json`,
		Args: cobra.ExactArgs(1),
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	doc, err := cli.LoadBaseDocument(args[0])
	if err != nil {
		return err
	}

	problems := models.CheckWellFormed(doc)
	if len(problems) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is well-formed\n", args[0])
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Found %d problem(s) in %s:\n", len(problems), args[0])
	for _, p := range problems {
		fmt.Fprintf(cmd.OutOrStdout(), "  • %s\n", p)
	}

	return fmt.Errorf("%s has %d well-formedness problem(s)", args[0], len(problems))
}
