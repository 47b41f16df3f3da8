package models

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Document is the canonical settings tree. It is held as canonical JSON bytes
// rather than a typed struct so that unknown fields and key order survive a
// parse/serialize round-trip untouched.
type Document struct {
	raw []byte
}

// canonicalOpts is the one formatting used everywhere a document is
// serialized. Key order is preserved, never sorted.
var canonicalOpts = &pretty.Options{Indent: "  ", SortKeys: false}

// defaultDocumentJSON is the built-in default document. The initial committed
// document and the Load-Defaults target must reproduce these values exactly.
const defaultDocumentJSON = `{
  "appearance": {
    "theme": "dark",
    "background": "var(--deep-space)",
    "primary_color": "purple",
    "resolution": "1920x1080"
  },
  "agent_formation": {
    "optimization_enabled": true,
    "smart_mode": true,
    "efficiency_target": 0.9,
    "max_agents": 10,
    "formation_algorithm": "mathematical",
    "subject_matter_matching": true
  },
  "performance": {
    "level": "high",
    "boost_enabled": true,
    "concurrency": 10,
    "memory_allocation": 32
  },
  "integration": {
    "sync_enabled": true,
    "api_key": "",
    "endpoint": "https://api.augur-omega.example.com"
  },
  "general": {
    "auto_optimize": true,
    "verbosity": "medium",
    "debug_mode": false
  }
}`

// New builds a document from already-parsed JSON bytes, normalizing them to
// the canonical serialization. Callers must have validated the bytes first
// (see pkg/schema); New itself does no checking.
func New(raw []byte) Document {
	return Document{raw: pretty.PrettyOptions(raw, canonicalOpts)}
}

// DefaultDocument returns a deep, independent copy of the built-in defaults.
// Mutating the returned value never affects future calls.
func DefaultDocument() Document {
	return New([]byte(defaultDocumentJSON))
}

// Bytes returns a copy of the canonical serialization.
func (d Document) Bytes() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// String returns the canonical serialization.
func (d Document) String() string {
	return string(d.raw)
}

// IsZero reports whether the document holds no content at all.
func (d Document) IsZero() bool {
	return len(d.raw) == 0
}

// Clone returns a deep, independent copy.
func (d Document) Clone() Document {
	return Document{raw: d.Bytes()}
}

// Equal reports whether two documents have identical canonical serializations.
func (d Document) Equal(other Document) bool {
	return bytes.Equal(d.raw, other.raw)
}

// Get resolves a dotted field path (e.g. "appearance.theme").
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// Set returns a new document with the field at the dotted path overwritten.
// The receiver is never modified; fields are only replaced, never removed.
func (d Document) Set(path string, value interface{}) (Document, error) {
	out, err := sjson.SetBytes(d.Bytes(), path, value)
	if err != nil {
		return Document{}, err
	}
	return New(out), nil
}
