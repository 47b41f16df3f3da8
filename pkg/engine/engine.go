// Package engine owns the committed settings document. There is exactly one
// Engine per editor instance and no hidden globals: the TUI and the CLI
// commands receive it explicitly.
package engine

import (
	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/augur-omega/settings-terminal/pkg/schema"
)

// Engine holds the single committed document and the derived preference
// entry. The document is replaced wholesale on Apply, Import-then-Apply, or
// LoadDefaults; it is never partially mutated.
type Engine struct {
	committed models.Document
	prefs     *models.Prefs
}

// New creates an engine committed to the built-in default document.
func New() *Engine {
	doc := models.DefaultDocument()
	return &Engine{
		committed: doc,
		prefs:     models.PrefsFromDocument(doc),
	}
}

// Current returns an independent copy of the committed document.
func (e *Engine) Current() models.Document {
	return e.committed.Clone()
}

// Prefs returns the preference entry derived from the committed document.
func (e *Engine) Prefs() *models.Prefs {
	return e.prefs
}

// Apply replaces the committed document wholesale.
func (e *Engine) Apply(doc models.Document) {
	e.committed = doc.Clone()
	e.prefs = models.PrefsFromDocument(e.committed)
}

// LoadDefaults replaces the committed document with the built-in defaults
// and returns the new committed copy.
func (e *Engine) LoadDefaults() models.Document {
	e.Apply(models.DefaultDocument())
	return e.Current()
}

// Import validates external bytes. On success it returns the parsed
// document, which stays uncommitted until the caller applies it; on failure
// nothing changes and the *schema.ParseError is returned for the user.
func (e *Engine) Import(data []byte) (models.Document, error) {
	return schema.Validate(string(data))
}

// Export returns the canonical serialization of the raw view's document, or
// of the built-in defaults when the raw view is empty. An unparseable raw
// view is an error; nothing is written in that case.
func (e *Engine) Export(rawView string) ([]byte, error) {
	if len(rawView) == 0 || isBlank(rawView) {
		return models.DefaultDocument().Bytes(), nil
	}
	doc, err := schema.Validate(rawView)
	if err != nil {
		return nil, err
	}
	return doc.Bytes(), nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
