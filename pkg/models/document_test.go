package models

import (
	"strings"
	"testing"
)

func TestDefaultDocumentValues(t *testing.T) {
	doc := DefaultDocument()

	checks := []struct {
		path string
		want string
	}{
		{"appearance.theme", "dark"},
		{"appearance.background", "var(--deep-space)"},
		{"appearance.primary_color", "purple"},
		{"appearance.resolution", "1920x1080"},
		{"agent_formation.formation_algorithm", "mathematical"},
		{"performance.level", "high"},
		{"integration.endpoint", "https://api.augur-omega.example.com"},
		{"general.verbosity", "medium"},
	}

	for _, c := range checks {
		if got := doc.Get(c.path).String(); got != c.want {
			t.Errorf("default %s = %q, want %q", c.path, got, c.want)
		}
	}

	if !doc.Get("agent_formation.optimization_enabled").Bool() {
		t.Error("default agent_formation.optimization_enabled should be true")
	}
	if doc.Get("general.debug_mode").Bool() {
		t.Error("default general.debug_mode should be false")
	}
	if got := doc.Get("agent_formation.efficiency_target").Float(); got != 0.9 {
		t.Errorf("default efficiency_target = %v, want 0.9", got)
	}
	if got := doc.Get("performance.memory_allocation").Int(); got != 32 {
		t.Errorf("default memory_allocation = %v, want 32", got)
	}
	if got := doc.Get("integration.api_key").String(); got != "" {
		t.Errorf("default api_key = %q, want empty", got)
	}
}

func TestDefaultDocumentIsIndependentCopy(t *testing.T) {
	first := DefaultDocument()

	mutated, err := first.Set("appearance.theme", "light")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if mutated.Get("appearance.theme").String() != "light" {
		t.Fatal("Set did not update the copy")
	}

	// Mutating one copy must never affect future calls.
	second := DefaultDocument()
	if got := second.Get("appearance.theme").String(); got != "dark" {
		t.Errorf("defaults were mutated: theme = %q, want %q", got, "dark")
	}
	if got := first.Get("appearance.theme").String(); got != "dark" {
		t.Errorf("Set mutated its receiver: theme = %q, want %q", got, "dark")
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := DefaultDocument()
	clone := doc.Clone()

	updated, err := clone.Set("performance.level", "low")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if doc.Get("performance.level").String() != "high" {
		t.Error("mutating a clone affected the original")
	}
	if updated.Get("performance.level").String() != "low" {
		t.Error("clone mutation lost")
	}
}

func TestEqual(t *testing.T) {
	a := DefaultDocument()
	b := DefaultDocument()

	if !a.Equal(b) {
		t.Error("two default documents should be equal")
	}

	c, err := b.Set("general.debug_mode", true)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if a.Equal(c) {
		t.Error("documents with different values should not be equal")
	}
}

func TestUnknownFieldsPassThrough(t *testing.T) {
	doc := New([]byte(`{"appearance": {"theme": "dark", "custom_flag": 42}, "extra_section": {"x": 1}}`))

	if got := doc.Get("appearance.custom_flag").Int(); got != 42 {
		t.Errorf("unknown field dropped: custom_flag = %v, want 42", got)
	}
	if !doc.Get("extra_section").Exists() {
		t.Error("unknown top-level key dropped")
	}

	// Unknown fields must survive a field update untouched.
	updated, err := doc.Set("appearance.theme", "light")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := updated.Get("appearance.custom_flag").Int(); got != 42 {
		t.Error("unknown field dropped by Set")
	}
	if !strings.Contains(updated.String(), "extra_section") {
		t.Error("unknown section dropped from serialization")
	}
}

func TestCheckWellFormed(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantProblems int
	}{
		{
			name:         "defaults are well-formed",
			json:         DefaultDocument().String(),
			wantProblems: 0,
		},
		{
			name:         "unknown category flagged",
			json:         `{"mystery": {}}`,
			wantProblems: 1,
		},
		{
			name:         "wrong type for known field",
			json:         `{"performance": {"concurrency": "ten"}}`,
			wantProblems: 1,
		},
		{
			name:         "enum value outside allowed set",
			json:         `{"appearance": {"theme": "sepia"}}`,
			wantProblems: 1,
		},
		{
			name:         "unknown field inside known category tolerated",
			json:         `{"appearance": {"theme": "dark", "custom": 1}}`,
			wantProblems: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := CheckWellFormed(New([]byte(tt.json)))
			if len(problems) != tt.wantProblems {
				t.Errorf("got %d problems (%v), want %d", len(problems), problems, tt.wantProblems)
			}
		})
	}
}
