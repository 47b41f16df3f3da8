package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const (
	previewPlaceholderEmpty       = "No settings document. Type JSON on the left, or describe a change above and convert it."
	previewPlaceholderUnavailable = "Preview unavailable — the raw editor does not contain a valid settings document."
)

func (m *SettingsEditorModel) View() string {
	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	if m.confirm.Active() {
		return contentStyle.Render(m.confirm.View())
	}

	if m.importing {
		return contentStyle.Render(m.renderImportPicker())
	}

	var s strings.Builder

	s.WriteString(contentStyle.Render(m.renderNLInputPane()))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderRawEditorPane(),
		" ",
		m.renderPreviewPane(),
	)))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(m.renderHelpPane()))

	return s.String()
}

func (m *SettingsEditorModel) renderNLInputPane() string {
	active := m.focus == focusNLInput

	var label string
	if m.converting {
		label = "DESCRIBE A CHANGE (converting…)"
	} else {
		label = "DESCRIBE A CHANGE"
	}

	heading := paneHeading(label, m.width-6, active)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor(active)).
		Width(m.width - 4).
		Padding(0, 1)

	return border.Render(heading + "\n" + m.nlInput.View())
}

func (m *SettingsEditorModel) renderRawEditorPane() string {
	active := m.focus == focusRawEditor

	label := "RAW SETTINGS (" + m.stateLabel() + ")"
	paneWidth := (m.width - 8) / 2

	heading := paneHeading(label, paneWidth-2, active)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(paneBorderColor(active)).
		Width(paneWidth).
		Padding(0, 1)

	return border.Render(heading + "\n" + m.rawEditor.View())
}

func (m *SettingsEditorModel) renderPreviewPane() string {
	paneWidth := (m.width - 8) / 2

	heading := paneHeading("PREVIEW", paneWidth-2, false)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(paneWidth).
		Padding(0, 1)

	return border.Render(heading + "\n" + m.preview.View())
}

func (m *SettingsEditorModel) renderImportPicker() string {
	heading := paneHeading("IMPORT SETTINGS FILE", m.width-6, true)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true).
		Render("Select a file to import • esc cancel")

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Width(m.width - 4).
		Padding(0, 1)

	return border.Render(heading + "\n" + m.importPicker.View() + "\n" + hint)
}

func (m *SettingsEditorModel) renderHelpPane() string {
	helpBorderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 4).
		Padding(0, 1)

	help := []string{
		"tab switch focus",
		"enter/^t convert",
		"^s apply",
		"^f format",
		"^o import",
		"^e export",
		"^y copy",
		"^r defaults",
		"^g committed",
		"esc quit",
	}

	helpContent := lipgloss.NewStyle().
		Width(m.width - 8).
		Align(lipgloss.Right).
		Render(formatHelpText(help))

	return helpBorderStyle.Render(helpContent)
}

func (m *SettingsEditorModel) stateLabel() string {
	switch m.sync {
	case syncIdle:
		return "empty"
	case syncEditing:
		return "editing"
	case syncValidating:
		return "validating"
	case syncValid:
		return "valid"
	case syncInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// refreshPreview rewrites the preview pane for the current state. The
// preview never shows stale content from a prior valid state: empty raw
// text gets a fixed placeholder, invalid raw text a fixed unavailable
// notice plus the parse reason.
func (m *SettingsEditorModel) refreshPreview() {
	width := m.preview.Width
	if width <= 0 {
		width = 80
	}

	switch m.sync {
	case syncIdle:
		m.preview.SetContent(wordwrap.String(previewPlaceholderEmpty, width))
	case syncInvalid:
		content := previewPlaceholderUnavailable
		if m.parseErr != nil {
			content += "\n\n" + m.parseErr.Error()
		}
		m.preview.SetContent(wordwrap.String(content, width))
	case syncValid:
		m.preview.SetContent(wordwrap.String(m.parsed.String(), width))
	default:
		// Editing/validating resolve synchronously into one of the above.
	}
}

func paneBorderColor(active bool) lipgloss.Color {
	if active {
		return lipgloss.Color("170")
	}
	return lipgloss.Color("240")
}

func paneHeading(label string, width int, active bool) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(paneBorderColor(active))
	colonStyle := lipgloss.NewStyle().
		Foreground(paneBorderColor(active))

	remaining := width - len(label) - 1
	if remaining < 0 {
		remaining = 0
	}

	return headerStyle.Render(label) + " " + colonStyle.Render(strings.Repeat(":", remaining))
}
