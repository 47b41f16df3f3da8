package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/augur-omega/settings-terminal/pkg/models"
	"github.com/tidwall/gjson"
)

// ParseError describes the first malformation encountered in serialized
// settings text. Its message is surfaced to the user verbatim.
type ParseError struct {
	Offset int64
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid settings JSON at line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("invalid settings JSON: %s", e.Reason)
}

// Validate parses serialized settings text. Success yields the parsed
// document in canonical form; failure yields a *ParseError.
//
// Only syntactic validity is checked here. A syntactically valid document
// with an unexpected type for a known field is accepted at this layer;
// deep type checking is models.CheckWellFormed's advisory concern.
func Validate(text string) (models.Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Document{}, &ParseError{Reason: "document is empty"}
	}

	// encoding/json supplies positioned syntax errors; gjson does not.
	var probe interface{}
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return models.Document{}, positioned(trimmed, err)
	}

	if !gjson.Parse(trimmed).IsObject() {
		return models.Document{}, &ParseError{Reason: "top level must be an object"}
	}

	return models.New([]byte(trimmed)), nil
}

// Canonical returns the one deterministic serialization of a document.
// It is idempotent: serialize(parse(serialize(d))) == serialize(d).
func Canonical(d models.Document) string {
	return d.String()
}

// positioned converts an encoding/json error into a *ParseError with the
// line and column of the first malformation.
func positioned(text string, err error) *ParseError {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return &ParseError{Reason: err.Error()}
	}

	line, col := 1, 1
	for i := int64(0); i < offset-1 && i < int64(len(text)); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}

	return &ParseError{
		Offset: offset,
		Line:   line,
		Column: col,
		Reason: err.Error(),
	}
}
