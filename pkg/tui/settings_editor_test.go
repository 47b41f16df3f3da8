package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/augur-omega/settings-terminal/pkg/convert"
	"github.com/augur-omega/settings-terminal/pkg/engine"
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

func newTestEditor(t *testing.T) (*SettingsEditorModel, *engine.Engine) {
	t.Helper()

	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	os.Chdir(tempDir)
	os.MkdirAll(".augur/exports", 0755)

	eng := engine.New()
	m := NewSettingsEditorModel(eng, models.DefaultPrefs())
	m.SetSize(120, 50)
	return m, eng
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestEditorStartsValidWithDefaults(t *testing.T) {
	m, eng := newTestEditor(t)

	if m.State() != syncValid {
		t.Fatalf("initial state = %v, want syncValid", m.State())
	}
	if m.rawEditor.Value() != schema.Canonical(eng.Current()) {
		t.Error("raw view should show the committed document's canonical form")
	}
	if !m.parsed.Equal(models.DefaultDocument()) {
		t.Error("parsed document should equal the defaults")
	}
}

func TestRawEditValidationTransitions(t *testing.T) {
	m, _ := newTestEditor(t)

	m.rawEditor.SetValue(`{"appearance": {"theme":`)
	m.revalidate()
	if m.State() != syncInvalid {
		t.Errorf("state after malformed edit = %v, want syncInvalid", m.State())
	}
	if m.parseErr == nil || m.parseErr.Reason == "" {
		t.Error("invalid state should carry a parse error with a reason")
	}

	m.rawEditor.SetValue(`{"appearance": {"theme": "light"}}`)
	m.revalidate()
	if m.State() != syncValid {
		t.Errorf("state after valid edit = %v, want syncValid", m.State())
	}
	if m.parseErr != nil {
		t.Error("valid state should clear the parse error")
	}

	m.rawEditor.SetValue("")
	m.revalidate()
	if m.State() != syncIdle {
		t.Errorf("state after clearing = %v, want syncIdle", m.State())
	}
}

func TestApplyFromInvalidNeverCommits(t *testing.T) {
	m, eng := newTestEditor(t)
	before := eng.Current()

	m.rawEditor.SetValue(`{"broken":`)
	m.revalidate()

	msg := runCmd(t, m.applyCmd())
	status, ok := msg.(StatusMsg)
	if !ok {
		t.Fatalf("apply from invalid returned %T, want StatusMsg", msg)
	}
	if !strings.Contains(string(status), "Cannot apply") {
		t.Errorf("unexpected status: %s", status)
	}
	if !eng.Current().Equal(before) {
		t.Error("apply from an invalid view changed the committed document")
	}
}

func TestApplyCommitsValidDocument(t *testing.T) {
	m, eng := newTestEditor(t)

	doc, _ := models.DefaultDocument().Set("appearance.theme", "light")
	m.rawEditor.SetValue(schema.Canonical(doc))
	m.revalidate()

	msg := runCmd(t, m.applyCmd())
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "applied") {
		t.Fatalf("unexpected apply result: %v", msg)
	}

	if got := eng.Current().Get("appearance.theme").String(); got != "light" {
		t.Errorf("committed theme = %q, want %q", got, "light")
	}
	if eng.Prefs().Theme != "light" {
		t.Error("preference entry not refreshed on apply")
	}
}

func TestFormatIsIdempotentOnCanonicalContent(t *testing.T) {
	m, _ := newTestEditor(t)

	before := m.rawEditor.Value() // already canonical
	msg := runCmd(t, m.formatCmd())
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "canonical") {
		t.Fatalf("unexpected format result: %v", msg)
	}
	if m.rawEditor.Value() != before {
		t.Error("formatting canonical content must be a no-op")
	}
}

func TestFormatRewritesNonCanonicalContent(t *testing.T) {
	m, _ := newTestEditor(t)

	m.rawEditor.SetValue(`{"appearance":{"theme":"light"}}`)
	m.revalidate()

	runCmd(t, m.formatCmd())

	want := schema.Canonical(m.parsed)
	if m.rawEditor.Value() != want {
		t.Errorf("format did not produce canonical form:\n%s", m.rawEditor.Value())
	}

	// A second format changes nothing.
	msg := runCmd(t, m.formatCmd())
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "canonical") {
		t.Errorf("second format should report canonical form: %v", msg)
	}
}

func TestFormatRejectedWhenInvalid(t *testing.T) {
	m, _ := newTestEditor(t)

	m.rawEditor.SetValue(`{"broken":`)
	m.revalidate()
	before := m.rawEditor.Value()

	msg := runCmd(t, m.formatCmd())
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "Cannot format") {
		t.Errorf("unexpected status: %v", msg)
	}
	if m.rawEditor.Value() != before {
		t.Error("format from invalid state touched the raw view")
	}
}

func TestNLInputClearsPendingRawContent(t *testing.T) {
	m, _ := newTestEditor(t)

	if m.rawEditor.Value() == "" {
		t.Fatal("precondition: raw view should start non-empty")
	}

	m.nlInput.SetValue("make the theme light")
	m.onNLInputChanged()

	if m.rawEditor.Value() != "" {
		t.Error("non-empty natural-language input should clear the raw view's pending content")
	}
	if m.State() != syncIdle {
		t.Errorf("state = %v, want syncIdle after clearing", m.State())
	}

	// Further typing must not re-clear (only the empty -> non-empty edge).
	m.rawEditor.SetValue("draft")
	m.nlInput.SetValue("make the theme light please")
	m.onNLInputChanged()
	if m.rawEditor.Value() != "draft" {
		t.Error("continued typing re-cleared the raw view")
	}
}

func TestConversionSingleFlightGuard(t *testing.T) {
	m, _ := newTestEditor(t)

	m.nlInput.SetValue("make the theme light")
	if cmd := m.startConversion(); cmd == nil {
		t.Fatal("startConversion should return a command")
	}
	if !m.Converting() {
		t.Fatal("conversion should be marked in flight")
	}

	// A second request while one is in flight is refused.
	msg := runCmd(t, m.startConversion())
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "in progress") {
		t.Errorf("second conversion request should be refused, got %v", msg)
	}

	// Completion re-enables the trigger.
	m.finishConversion(convert.Convert("make the theme light", models.DefaultDocument()))
	if m.Converting() {
		t.Error("conversion flag should clear on completion")
	}
}

func TestConversionRejectsBlankInput(t *testing.T) {
	m, _ := newTestEditor(t)

	for _, input := range []string{"", "   ", "\t"} {
		m.nlInput.SetValue(input)
		msg := runCmd(t, m.startConversion())
		status, ok := msg.(StatusMsg)
		if !ok || string(status) != convert.ErrEmptyInput.Error() {
			t.Errorf("blank input %q should be rejected with a notice, got %v", input, msg)
		}
		if m.Converting() {
			t.Error("blank input must not start a conversion")
		}
	}
}

func TestConversionResultLandsInRawView(t *testing.T) {
	m, eng := newTestEditor(t)

	m.nlInput.SetValue("make the theme light")
	m.onNLInputChanged()
	m.startConversion()

	converted := convert.Convert("make the theme light", eng.Current())
	model, _ := m.Update(conversionDoneMsg{doc: converted})
	m = model.(*SettingsEditorModel)

	if m.Converting() {
		t.Error("conversion flag should clear when the result lands")
	}
	if m.State() != syncValid {
		t.Errorf("state = %v, want syncValid", m.State())
	}
	if got := m.parsed.Get("appearance.theme").String(); got != "light" {
		t.Errorf("raw view theme = %q, want %q", got, "light")
	}

	// All other fields keep their committed values.
	back, _ := m.parsed.Set("appearance.theme", "dark")
	if !back.Equal(eng.Current()) {
		t.Error("conversion changed fields beyond the matched rule")
	}

	// The result is not committed until Apply.
	if !eng.Current().Equal(models.DefaultDocument()) {
		t.Error("conversion result committed without Apply")
	}
}

func TestPreviewPlaceholders(t *testing.T) {
	m, _ := newTestEditor(t)

	if !strings.Contains(m.preview.View(), `"appearance"`) {
		t.Error("valid state should preview the canonical document")
	}

	m.rawEditor.SetValue(`{"broken":`)
	m.revalidate()
	if !strings.Contains(m.preview.View(), "Preview unavailable") {
		t.Error("invalid state should show the unavailable placeholder")
	}
	if strings.Contains(m.preview.View(), `"appearance"`) {
		t.Error("invalid preview must not show stale content from a prior valid state")
	}

	m.rawEditor.SetValue("")
	m.revalidate()
	if !strings.Contains(m.preview.View(), "No settings document") {
		t.Error("empty state should show the empty placeholder")
	}
}

func TestImportFailureLeavesViewsUntouched(t *testing.T) {
	m, eng := newTestEditor(t)
	rawBefore := m.rawEditor.Value()
	committedBefore := eng.Current()

	model, cmd := m.Update(importResultMsg{path: "bad.json", err: &schema.ParseError{Reason: "unexpected end of JSON input"}})
	m = model.(*SettingsEditorModel)

	msg := runCmd(t, cmd)
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "Import failed") {
		t.Errorf("unexpected status: %v", msg)
	}
	if m.rawEditor.Value() != rawBefore {
		t.Error("failed import mutated the raw view")
	}
	if !eng.Current().Equal(committedBefore) {
		t.Error("failed import mutated the committed document")
	}
}

func TestImportSuccessStaysUncommitted(t *testing.T) {
	m, eng := newTestEditor(t)

	doc, _ := models.DefaultDocument().Set("performance.level", "low")
	model, _ := m.Update(importResultMsg{path: "settings.json", doc: doc})
	m = model.(*SettingsEditorModel)

	if m.rawEditor.Value() != schema.Canonical(doc) {
		t.Error("import should replace the raw view with the canonical serialization")
	}
	if m.State() != syncValid {
		t.Errorf("state = %v, want syncValid", m.State())
	}
	if !eng.Current().Equal(models.DefaultDocument()) {
		t.Error("import committed the document before Apply")
	}
}

func TestEndToEndScenario(t *testing.T) {
	// Defaults -> describe -> convert -> apply -> export.
	m, eng := newTestEditor(t)

	m.nlInput.SetValue("make the theme light")
	m.onNLInputChanged()
	m.startConversion()

	converted := convert.Convert(m.nlInput.Value(), eng.Current())
	model, _ := m.Update(conversionDoneMsg{doc: converted})
	m = model.(*SettingsEditorModel)

	runCmd(t, m.applyCmd())

	data, err := eng.Export(m.rawEditor.Value())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	want, _ := models.DefaultDocument().Set("appearance.theme", "light")
	if string(data) != want.String() {
		t.Errorf("export mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}
