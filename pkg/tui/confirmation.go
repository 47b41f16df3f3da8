package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles yes/no confirmation dialogs
type ConfirmationModel struct {
	active      bool
	title       string
	message     string
	warning     string
	destructive bool
	width       int
	height      int
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// ShowDialog activates the confirmation dialog
func (m *ConfirmationModel) ShowDialog(title, message, warning string, destructive bool, width, height int, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.title = title
	m.message = message
	m.warning = warning
	m.destructive = destructive
	m.width = width
	m.height = height
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation dialog
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	width := m.width
	if width == 0 {
		width = 60
	}
	height := m.height
	if height == 0 {
		height = 10
	}

	contentWidth := width - 4
	center := lipgloss.NewStyle().
		Width(contentWidth - 4).
		Align(lipgloss.Center)

	var content strings.Builder

	if m.title != "" {
		content.WriteString(center.Render(headerStyle.Render(m.title)))
		content.WriteString("\n\n")
	}

	content.WriteString(center.Render(m.message))
	content.WriteString("\n")

	if m.warning != "" {
		content.WriteString("\n")
		content.WriteString(center.Render(warningStyle.Render(m.warning)))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(center.Render(formatConfirmOptions(m.destructive) + "  (yes / no)"))

	return borderStyle.
		Width(width).
		Height(height).
		Render(content.String())
}

func formatConfirmOptions(destructive bool) string {
	yesStyle := lipgloss.NewStyle().Bold(true)
	noStyle := lipgloss.NewStyle().Bold(true)

	if destructive {
		yesStyle = yesStyle.Foreground(lipgloss.Color("196"))
		noStyle = noStyle.Foreground(lipgloss.Color("82"))
	} else {
		yesStyle = yesStyle.Foreground(lipgloss.Color("82"))
		noStyle = noStyle.Foreground(lipgloss.Color("196"))
	}

	return yesStyle.Render("[y]es") + " / " + noStyle.Render("[n]o")
}
