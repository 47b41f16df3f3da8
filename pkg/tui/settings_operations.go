package tui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/augur-omega/settings-terminal/pkg/convert"
	"github.com/augur-omega/settings-terminal/pkg/files"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// conversionDelay models the asynchronous backend call the converter will
// eventually make. The trigger stays disabled until the result lands.
const conversionDelay = 600 * time.Millisecond

type conversionDoneMsg struct {
	doc models.Document
}

type importResultMsg struct {
	path string
	doc  models.Document
	err  error
}

type exportDoneMsg struct {
	path string
	err  error
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

// startConversion kicks off a rule conversion against the committed
// document. Blank input is rejected before the engine is invoked, and the
// single-flight guard keeps a second request from starting while one is in
// flight.
func (m *SettingsEditorModel) startConversion() tea.Cmd {
	input := m.nlInput.Value()
	if strings.TrimSpace(input) == "" {
		return statusCmd(convert.ErrEmptyInput.Error())
	}

	if m.converting {
		return statusCmd("Conversion already in progress…")
	}

	m.converting = true
	base := m.engine.Current()

	return tea.Batch(
		statusCmd("Converting…"),
		tea.Tick(conversionDelay, func(time.Time) tea.Msg {
			return conversionDoneMsg{doc: convert.Convert(input, base)}
		}),
	)
}

// finishConversion writes the conversion result into the raw view and
// re-enables the trigger. The result stays uncommitted until Apply.
func (m *SettingsEditorModel) finishConversion(doc models.Document) {
	m.converting = false
	m.rawEditor.SetValue(schema.Canonical(doc))
	m.revalidate()
}

// applyCmd commits the parsed document. Apply is rejected from any state
// but Valid; the previously committed document is then left unchanged.
func (m *SettingsEditorModel) applyCmd() tea.Cmd {
	if m.sync != syncValid {
		if m.sync == syncInvalid && m.parseErr != nil {
			return statusCmd("Cannot apply: " + m.parseErr.Error())
		}
		return statusCmd("Cannot apply: the editor has no valid settings document")
	}

	m.engine.Apply(m.parsed)
	m.prefs = m.engine.Prefs()
	prefs := m.prefs

	return func() tea.Msg {
		// Persist the preference entry on explicit save; errors are
		// surfaced but never fatal.
		if err := files.WritePrefs(prefs); err != nil {
			return StatusMsg("Settings applied, but preferences were not saved: " + err.Error())
		}
		return StatusMsg("✓ Settings applied")
	}
}

// formatCmd rewrites the raw view to the canonical serialization of the
// currently parsed document. Only permitted from Valid, and idempotent:
// formatting an already-canonical document changes nothing.
func (m *SettingsEditorModel) formatCmd() tea.Cmd {
	if m.sync != syncValid {
		return statusCmd("Cannot format: the editor has no valid settings document")
	}

	canonical := schema.Canonical(m.parsed)
	if m.rawEditor.Value() == canonical {
		return statusCmd("Already in canonical form")
	}

	m.rawEditor.SetValue(canonical)
	m.revalidate()
	return statusCmd("✓ Formatted")
}

func (m *SettingsEditorModel) importCmd(path string) tea.Cmd {
	eng := m.engine
	return func() tea.Msg {
		data, err := files.ImportFile(path)
		if err != nil {
			return importResultMsg{path: path, err: err}
		}
		doc, err := eng.Import(data)
		if err != nil {
			return importResultMsg{path: path, err: err}
		}
		return importResultMsg{path: path, doc: doc}
	}
}

func (m *SettingsEditorModel) exportCmd() tea.Cmd {
	raw := m.rawEditor.Value()
	eng := m.engine
	return func() tea.Msg {
		data, err := eng.Export(raw)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := files.WriteExport(data)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// copyCmd puts the would-be export artifact on the system clipboard.
func (m *SettingsEditorModel) copyCmd() tea.Cmd {
	raw := m.rawEditor.Value()
	eng := m.engine
	return func() tea.Msg {
		data, err := eng.Export(raw)
		if err != nil {
			return StatusMsg("Copy failed: " + err.Error())
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			return StatusMsg("Copy failed: " + err.Error())
		}
		return StatusMsg("✓ Settings copied to clipboard")
	}
}
