package models

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// FieldKind classifies a settings field's declared value type.
type FieldKind int

const (
	KindString FieldKind = iota
	KindBool
	KindNumber
	KindEnum
)

// FieldSpec describes one known field of the settings document.
type FieldSpec struct {
	Path string
	Kind FieldKind
	Enum []string // allowed values when Kind == KindEnum
}

// Categories are the five fixed top-level category names. The set is
// invariant; fields are never added or removed at runtime.
var Categories = []string{
	"appearance",
	"agent_formation",
	"performance",
	"integration",
	"general",
}

// Fields is the fixed registry of known fields and their declared types.
// Unknown fields elsewhere in a document are tolerated and passed through.
var Fields = []FieldSpec{
	{Path: "appearance.theme", Kind: KindEnum, Enum: []string{"light", "dark"}},
	{Path: "appearance.background", Kind: KindString},
	{Path: "appearance.primary_color", Kind: KindString},
	{Path: "appearance.resolution", Kind: KindString},
	{Path: "agent_formation.optimization_enabled", Kind: KindBool},
	{Path: "agent_formation.smart_mode", Kind: KindBool},
	{Path: "agent_formation.efficiency_target", Kind: KindNumber},
	{Path: "agent_formation.max_agents", Kind: KindNumber},
	{Path: "agent_formation.formation_algorithm", Kind: KindString},
	{Path: "agent_formation.subject_matter_matching", Kind: KindBool},
	{Path: "performance.level", Kind: KindEnum, Enum: []string{"high", "medium", "low"}},
	{Path: "performance.boost_enabled", Kind: KindBool},
	{Path: "performance.concurrency", Kind: KindNumber},
	{Path: "performance.memory_allocation", Kind: KindNumber},
	{Path: "integration.sync_enabled", Kind: KindBool},
	{Path: "integration.api_key", Kind: KindString},
	{Path: "integration.endpoint", Kind: KindString},
	{Path: "general.auto_optimize", Kind: KindBool},
	{Path: "general.verbosity", Kind: KindEnum, Enum: []string{"low", "medium", "high"}},
	{Path: "general.debug_mode", Kind: KindBool},
}

// Problem describes one well-formedness violation found by CheckWellFormed.
type Problem struct {
	Path   string
	Reason string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Reason)
}

// CheckWellFormed reports every known field whose value does not match its
// declared type, and every top-level key that is not one of the five fixed
// categories. This is advisory only; the structural validator deliberately
// does not enforce it.
func CheckWellFormed(d Document) []Problem {
	var problems []Problem

	known := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}
	d.Get("@this").ForEach(func(key, _ gjson.Result) bool {
		if !known[key.String()] {
			problems = append(problems, Problem{
				Path:   key.String(),
				Reason: "not one of the five fixed categories",
			})
		}
		return true
	})

	for _, f := range Fields {
		v := d.Get(f.Path)
		if !v.Exists() {
			continue
		}
		switch f.Kind {
		case KindString:
			if v.Type != gjson.String {
				problems = append(problems, Problem{f.Path, "expected a string"})
			}
		case KindBool:
			if !v.IsBool() {
				problems = append(problems, Problem{f.Path, "expected a boolean"})
			}
		case KindNumber:
			if v.Type != gjson.Number {
				problems = append(problems, Problem{f.Path, "expected a number"})
			}
		case KindEnum:
			if v.Type != gjson.String {
				problems = append(problems, Problem{f.Path, "expected a string"})
				continue
			}
			ok := false
			for _, allowed := range f.Enum {
				if v.String() == allowed {
					ok = true
					break
				}
			}
			if !ok {
				problems = append(problems, Problem{f.Path, fmt.Sprintf("%q is not an allowed value (want one of %v)", v.String(), f.Enum)})
			}
		}
	}

	return problems
}
