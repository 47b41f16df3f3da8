package tui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/augur-omega/settings-terminal/pkg/engine"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// SettingsEditorModel keeps the three views of the settings document in
// sync: the natural-language input, the raw JSON editor, and the preview.
type SettingsEditorModel struct {
	EditorDataStore
	EditorUIComponents
	EditorLayoutManager
	EditorSyncManager
}

func NewSettingsEditorModel(eng *engine.Engine, prefs *models.Prefs) *SettingsEditorModel {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(20)

	ti := textinput.New()
	ti.Placeholder = `e.g. "make the theme light and performance low"`
	ti.CharLimit = 255
	ti.Width = 60

	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{} // any user-selected file may be imported
	if cwd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = cwd
	}

	m := &SettingsEditorModel{
		EditorDataStore: EditorDataStore{
			engine: eng,
			prefs:  prefs,
		},
		EditorUIComponents: EditorUIComponents{
			rawEditor:    ta,
			nlInput:      ti,
			preview:      viewport.New(80, 20),
			importPicker: fp,
			confirm:      NewConfirmation(),
		},
		EditorLayoutManager: EditorLayoutManager{},
		EditorSyncManager:   EditorSyncManager{sync: syncIdle, focus: focusRawEditor},
	}

	// Start from the committed document so the raw view is valid and shows
	// its canonical serialization.
	m.rawEditor.SetValue(schema.Canonical(eng.Current()))
	m.rawEditor.Focus()
	m.revalidate()

	return m
}

func (m *SettingsEditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// State returns the current view-synchronization state.
func (m *SettingsEditorModel) State() syncState {
	return m.sync
}

// Converting reports whether a conversion is in flight.
func (m *SettingsEditorModel) Converting() bool {
	return m.converting
}

func (m *SettingsEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case conversionDoneMsg:
		m.finishConversion(msg.doc)
		return m, statusCmd("✓ Converted — review the result and apply it")

	case importResultMsg:
		if msg.err != nil {
			// Failed imports never mutate any view.
			return m, statusCmd("Import failed: " + msg.err.Error())
		}
		m.rawEditor.SetValue(schema.Canonical(msg.doc))
		m.revalidate()
		return m, statusCmd("✓ Imported " + msg.path + " — apply to commit")

	case exportDoneMsg:
		if msg.err != nil {
			return m, statusCmd("Export failed: " + msg.err.Error())
		}
		return m, statusCmd("✓ Exported settings to " + msg.path)

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}

		if m.importing {
			return m.updateImportPicker(msg)
		}

		switch msg.String() {
		case "esc":
			if m.hasPendingChanges() {
				m.showDiscardConfirmation()
				return m, nil
			}
			return m, tea.Quit

		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil

		case "ctrl+t":
			return m, m.startConversion()

		case "enter":
			if m.focus == focusNLInput {
				return m, m.startConversion()
			}

		case "ctrl+s":
			return m, m.applyCmd()

		case "ctrl+f":
			return m, m.formatCmd()

		case "ctrl+o":
			m.importing = true
			return m, m.importPicker.Init()

		case "ctrl+e":
			return m, m.exportCmd()

		case "ctrl+y":
			return m, m.copyCmd()

		case "ctrl+r":
			m.showLoadDefaultsConfirmation()
			return m, nil

		case "ctrl+g":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: committedViewerView}
			}

		case "pgup", "pgdown":
			m.preview, cmd = m.preview.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// While the picker is active its internal messages must reach it.
	if m.importing {
		m.importPicker, cmd = m.importPicker.Update(msg)
		cmds = append(cmds, cmd)
		if didSelect, path := m.importPicker.DidSelectFile(msg); didSelect {
			m.importing = false
			cmds = append(cmds, m.importCmd(path))
		}
		return m, tea.Batch(cmds...)
	}

	// Route remaining input to the focused view.
	switch m.focus {
	case focusNLInput:
		prev := m.nlInput.Value()
		m.nlInput, cmd = m.nlInput.Update(msg)
		cmds = append(cmds, cmd)
		if m.nlInput.Value() != prev {
			m.onNLInputChanged()
		}
	case focusRawEditor:
		prev := m.rawEditor.Value()
		m.rawEditor, cmd = m.rawEditor.Update(msg)
		cmds = append(cmds, cmd)
		if m.rawEditor.Value() != prev {
			m.sync = syncEditing
			m.revalidate()
		}
	}

	m.preview, cmd = m.preview.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *SettingsEditorModel) updateImportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.importing = false
		return m, statusCmd("Import cancelled")
	}

	var cmd tea.Cmd
	m.importPicker, cmd = m.importPicker.Update(msg)

	if didSelect, path := m.importPicker.DidSelectFile(msg); didSelect {
		m.importing = false
		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m *SettingsEditorModel) toggleFocus() {
	if m.focus == focusRawEditor {
		m.focus = focusNLInput
		m.rawEditor.Blur()
		m.nlInput.Focus()
	} else {
		m.focus = focusRawEditor
		m.nlInput.Blur()
		m.rawEditor.Focus()
	}
}

// onNLInputChanged enforces mutual exclusivity: entering a non-empty
// description discards the raw view's pending content. Natural-language
// edits and raw edits are never merged; conversion must be requested
// explicitly and its result applied explicitly.
func (m *SettingsEditorModel) onNLInputChanged() {
	hasText := strings.TrimSpace(m.nlInput.Value()) != ""
	if hasText && !m.nlHadText {
		m.rawEditor.SetValue("")
		m.revalidate()
	}
	m.nlHadText = hasText
}

// revalidate runs the structural validator over the raw view and moves the
// state machine to Valid or Invalid. An empty raw view returns to Idle.
func (m *SettingsEditorModel) revalidate() {
	raw := m.rawEditor.Value()
	if strings.TrimSpace(raw) == "" {
		m.sync = syncIdle
		m.parsed = models.Document{}
		m.parseErr = nil
		m.refreshPreview()
		return
	}

	m.sync = syncValidating
	doc, err := schema.Validate(raw)
	if err != nil {
		var pe *schema.ParseError
		errors.As(err, &pe)
		m.parseErr = pe
		m.parsed = models.Document{}
		m.sync = syncInvalid
	} else {
		m.parsed = doc
		m.parseErr = nil
		m.sync = syncValid
	}

	m.refreshPreview()
}

// hasPendingChanges reports whether the raw view differs from the committed
// document's canonical serialization.
func (m *SettingsEditorModel) hasPendingChanges() bool {
	raw := strings.TrimSpace(m.rawEditor.Value())
	if raw == "" {
		return false
	}
	if m.sync == syncValid {
		return !m.parsed.Equal(m.engine.Current())
	}
	return true
}

func (m *SettingsEditorModel) showDiscardConfirmation() {
	m.confirm.ShowDialog(
		"EXIT CONFIRMATION",
		"You have pending changes that were not applied.",
		"Exit and discard them?",
		true, // destructive
		m.width-4,
		10,
		func() tea.Cmd {
			return tea.Quit
		},
		func() tea.Cmd {
			return nil
		},
	)
}

func (m *SettingsEditorModel) showLoadDefaultsConfirmation() {
	m.confirm.ShowDialog(
		"LOAD DEFAULTS",
		"This replaces the current settings with the built-in defaults.",
		"Continue?",
		true, // destructive
		m.width-4,
		10,
		func() tea.Cmd {
			doc := m.engine.LoadDefaults()
			m.rawEditor.SetValue(schema.Canonical(doc))
			m.nlInput.SetValue("")
			m.nlHadText = false
			m.revalidate()
			return statusCmd("✓ Defaults loaded and committed")
		},
		func() tea.Cmd {
			return nil
		},
	)
}

func (m *SettingsEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	if width == 0 || height == 0 {
		return
	}

	paneWidth := (width - 8) / 2
	paneHeight := height - 12

	m.rawEditor.SetWidth(paneWidth)
	m.rawEditor.SetHeight(paneHeight)
	m.preview.Width = paneWidth
	m.preview.Height = paneHeight
	m.nlInput.Width = width - 24
	m.importPicker.Height = paneHeight
	m.refreshPreview()
}
