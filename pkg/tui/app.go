package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/augur-omega/settings-terminal/pkg/engine"
	"github.com/augur-omega/settings-terminal/pkg/models"
)

type sessionState int

const (
	settingsEditorView sessionState = iota
	committedViewerView
)

type App struct {
	state     sessionState
	editor    *SettingsEditorModel
	viewer    *CommittedViewerModel
	engine    *engine.Engine
	width     int
	height    int
	statusMsg string
}

func NewApp(eng *engine.Engine, prefs *models.Prefs) *App {
	return &App{
		state:  settingsEditorView,
		engine: eng,
		editor: NewSettingsEditorModel(eng, prefs),
	}
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}
		if a.viewer != nil {
			a.viewer.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case settingsEditorView:
			a.state = settingsEditorView
			return a, nil
		case committedViewerView:
			a.state = committedViewerView
			if a.viewer == nil {
				a.viewer = NewCommittedViewerModel()
			}
			a.viewer.SetSize(a.width, a.height)
			a.viewer.SetDocument(a.engine.Current(), a.engine.Prefs())
			return a, a.viewer.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case settingsEditorView:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		if se, ok := m.(*SettingsEditorModel); ok {
			a.editor = se
		}
	case committedViewerView:
		var m tea.Model
		m, cmd = a.viewer.Update(msg)
		if cv, ok := m.(*CommittedViewerModel); ok {
			a.viewer = cv
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case settingsEditorView:
		content = a.editor.View()
	case committedViewerView:
		content = a.viewer.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view sessionState
}
