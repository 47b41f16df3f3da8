package tui

import "strings"

// formatHelpText joins help items for the help pane
func formatHelpText(items []string) string {
	return strings.Join(items, " • ")
}
