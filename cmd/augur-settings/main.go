package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/augur-omega/settings-terminal/cmd/commands"
	"github.com/augur-omega/settings-terminal/pkg/engine"
	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "augur-settings",
	Short: "Terminal editor for the Augur Omega settings document",
	Long: `Augur Settings is a terminal editor for the Augur Omega settings document.
It keeps three views in sync: a natural-language input, a raw JSON editor,
and a formatted preview. Describe a change in plain words, convert it into
a concrete settings update, review the result and apply it.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Check if .augur directory exists
		if _, err := os.Stat(files.AugurDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No .augur directory found in the current directory.\n")
			fmt.Fprintf(os.Stderr, "Please run 'augur-settings init' first to initialize a project.\n")
			os.Exit(1)
		}

		eng := engine.New()
		prefs, err := files.ReadPrefs()
		if err != nil {
			prefs = models.DefaultPrefs()
		}

		app := tui.NewApp(eng, prefs)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Augur Settings project",
	Long:  `Creates the .augur folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Augur Settings project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		if err := files.WritePrefs(models.DefaultPrefs()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to write default preferences: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("✓ Created .augur folder structure")
		fmt.Println("✓ Wrote default preferences")
		fmt.Println("\nRun 'augur-settings' to start the interactive editor.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Augur Settings",
	Long:  `Display the current version of the Augur Settings CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Augur Settings version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewConvertCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewDoctorCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Command execution failed: %v\n", err)
		os.Exit(1)
	}
}
