package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/augur-omega/settings-terminal/pkg/engine"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// syncState tracks the raw-text view through the validation cycle. Apply is
// only permitted from syncValid; Format likewise.
type syncState int

const (
	syncIdle syncState = iota // raw view empty or untouched
	syncEditing
	syncValidating
	syncValid
	syncInvalid
)

// editorFocus identifies which input currently receives keystrokes.
type editorFocus int

const (
	focusRawEditor editorFocus = iota
	focusNLInput
)

// EditorDataStore holds the document state behind the editor
type EditorDataStore struct {
	engine   *engine.Engine
	prefs    *models.Prefs
	parsed   models.Document    // result of the last successful validation
	parseErr *schema.ParseError // reason for the last failed validation
}

// EditorUIComponents manages UI-specific components
type EditorUIComponents struct {
	rawEditor    textarea.Model
	nlInput      textinput.Model
	preview      viewport.Model
	importPicker filepicker.Model
	confirm      *ConfirmationModel
}

// EditorLayoutManager manages viewport and layout
type EditorLayoutManager struct {
	width  int
	height int
}

// EditorSyncManager tracks the view-synchronization state machine
type EditorSyncManager struct {
	sync       syncState
	focus      editorFocus
	converting bool // single-flight guard: at most one in-flight conversion
	importing  bool // file picker active
	nlHadText  bool // for detecting the empty -> non-empty transition
}
