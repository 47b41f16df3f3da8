package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/internal/cli"
	"github.com/augur-omega/settings-terminal/pkg/convert"
	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

var (
	convertBaseFile string
	convertOutFile  string
)

// NewConvertCommand creates the convert command
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <description>",
		Short: "Convert a plain-words description into a settings document",
		Long: `Convert a plain-words description into a settings document.

The description is matched against a fixed table of keyword rules; each
matching rule overwrites one field of the base document. Fields no rule
matches keep their value from the base. The base is the built-in default
document unless --base names a settings file.

Examples:
  # Update the defaults from a description
  augur-settings convert "make the theme light and sync enabled"

  # Update an existing settings file
  augur-settings convert "set performance to low" --base my-settings.json

  # Write the result to a file instead of stdout
  augur-settings convert "enable agent optimization" --out updated.json`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringVar(&convertBaseFile, "base", "", "Settings file to use as the base document (default: built-in defaults)")
	cmd.Flags().StringVar(&convertOutFile, "out", "", "Write the result to a file instead of stdout")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	if strings.TrimSpace(input) == "" {
		return convert.ErrEmptyInput
	}

	base, err := cli.LoadBaseDocument(convertBaseFile)
	if err != nil {
		return err
	}

	result := convert.Convert(input, base)

	if convertOutFile != "" {
		if err := files.WriteFile(convertOutFile, result.Bytes()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote converted settings to %s\n", convertOutFile)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), schema.Canonical(result))
	return nil
}
