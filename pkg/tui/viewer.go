package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/augur-omega/settings-terminal/pkg/models"
)

// CommittedViewerModel is a read-only view of the committed settings
// document and the persisted preference entry.
type CommittedViewerModel struct {
	viewport viewport.Model
	doc      models.Document
	prefs    *models.Prefs
	width    int
	height   int
}

func NewCommittedViewerModel() *CommittedViewerModel {
	return &CommittedViewerModel{
		viewport: viewport.New(80, 20),
	}
}

func (m *CommittedViewerModel) Init() tea.Cmd {
	return nil
}

// SetDocument replaces the displayed document and preference entry.
func (m *CommittedViewerModel) SetDocument(doc models.Document, prefs *models.Prefs) {
	m.doc = doc
	m.prefs = prefs
	m.updateContent()
}

func (m *CommittedViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 8
	m.viewport.Height = height - 8
	m.updateContent()
}

func (m *CommittedViewerModel) updateContent() {
	var content strings.Builder

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	content.WriteString(sectionStyle.Render("COMMITTED DOCUMENT"))
	content.WriteString("\n\n")
	content.WriteString(m.doc.String())
	content.WriteString("\n\n")

	if m.prefs != nil {
		content.WriteString(sectionStyle.Render("PERSISTED PREFERENCES"))
		content.WriteString("\n\n")
		apiKey := "not set"
		if m.prefs.APIKeySet {
			apiKey = "set (value masked)"
		}
		content.WriteString(fmt.Sprintf("  theme:         %s\n", m.prefs.Theme))
		content.WriteString(fmt.Sprintf("  auto_optimize: %t\n", m.prefs.AutoOptimize))
		content.WriteString(fmt.Sprintf("  debug_mode:    %t\n", m.prefs.DebugMode))
		content.WriteString(fmt.Sprintf("  api key:       %s\n", apiKey))
	}

	m.viewport.SetContent(content.String())
}

func (m *CommittedViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: settingsEditorView}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *CommittedViewerModel) View() string {
	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)

	heading := paneHeading("COMMITTED SETTINGS", m.width-6, true)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Width(m.width - 4).
		Padding(0, 1)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color("242")).
		Italic(true).
		Render("esc back • pgup/pgdown scroll")

	return contentStyle.Render(border.Render(heading+"\n"+m.viewport.View())) + "\n" + contentStyle.Render(help)
}
