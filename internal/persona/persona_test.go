package persona

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsComplete(t *testing.T) {
	set := Defaults()
	for _, name := range []string{"student", "researcher", "business_analyst", "general"} {
		p, ok := set[name]
		if !ok {
			t.Fatalf("missing built-in persona %q", name)
		}
		if p.Description == "" || p.Focus == "" || p.Style == "" {
			t.Errorf("persona %q incomplete: %+v", name, p)
		}
	}
}

func TestResolveUnknownFallsBack(t *testing.T) {
	set := Defaults()
	if got := Resolve(set, "astronaut"); got.Name != DefaultName {
		t.Errorf("unknown persona resolved to %q, want %q", got.Name, DefaultName)
	}
	if got := Resolve(set, "researcher"); got.Name != "researcher" {
		t.Errorf("known persona resolved to %q", got.Name)
	}
}

func TestBuildPromptWithQuery(t *testing.T) {
	p := Resolve(Defaults(), "researcher")
	got := BuildPrompt(p, "document body", "What is the methodology?", 0)

	for _, want := range []string{p.Description, p.Focus, p.Style, "document body", "What is the methodology?"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(got, "comprehensive analysis") {
		t.Error("query prompt should ask for an answer, not a general analysis")
	}
}

func TestBuildPromptTruncatesText(t *testing.T) {
	p := Resolve(Defaults(), "general")
	long := strings.Repeat("x", 10000)
	got := BuildPrompt(p, long, "", 100)
	if strings.Contains(got, strings.Repeat("x", 101)) {
		t.Error("document text was not truncated")
	}
	if !strings.Contains(got, strings.Repeat("x", 100)) {
		t.Error("truncated text missing entirely")
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	content := `
lawyer:
  description: A lawyer reviewing contractual obligations
  focus: clauses, liabilities, deadlines
  style: precise, formal
general:
  description: Overridden general reader
  focus: everything
  style: casual
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := set["student"]; !ok {
		t.Error("overlay dropped a built-in persona")
	}
	if set["lawyer"].Focus != "clauses, liabilities, deadlines" {
		t.Errorf("lawyer persona = %+v", set["lawyer"])
	}
	if set["general"].Description != "Overridden general reader" {
		t.Error("overlay did not replace the built-in general persona")
	}
}

func TestLoadRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "personas.yaml")
	if err := os.WriteFile(path, []byte("broken:\n  focus: nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a persona without a description")
	}
}
