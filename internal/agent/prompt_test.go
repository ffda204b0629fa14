package agent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePersona(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
		t.Fatalf("write persona: %v", err)
	}
}

func TestSystemPrompt_NoPersonaDir(t *testing.T) {
	pb := NewPromptBuilder(filepath.Join(t.TempDir(), "missing"))
	if got := pb.SystemPrompt(); got != basePrompt {
		t.Fatalf("SystemPrompt = %q, want base prompt only", got)
	}
}

func TestSystemPrompt_AlwaysPersonaAppended(t *testing.T) {
	dir := t.TempDir()
	writePersona(t, dir, "ops", "---\ndescription: ops persona\nalways: true\n---\nAnswer tersely.")
	writePersona(t, dir, "verbose", "---\ndescription: optional persona\nalways: false\n---\nWrite essays.")

	got := NewPromptBuilder(dir).SystemPrompt()
	if !strings.HasPrefix(got, basePrompt) {
		t.Fatalf("prompt does not start with base: %q", got)
	}
	if !strings.Contains(got, "Answer tersely.") {
		t.Errorf("always persona missing from prompt: %q", got)
	}
	if strings.Contains(got, "Write essays.") {
		t.Errorf("non-always persona leaked into prompt: %q", got)
	}
	if strings.Contains(got, "always: true") {
		t.Errorf("frontmatter leaked into prompt: %q", got)
	}
}

func TestListPersonas_SortedWithMetadata(t *testing.T) {
	dir := t.TempDir()
	writePersona(t, dir, "zeta", "---\ndescription: last\n---\nbody")
	writePersona(t, dir, "alpha", "---\ndescription: first\nalways: true\n---\nbody")
	writePersona(t, dir, "plain", "no frontmatter here")

	personas := NewPromptBuilder(dir).ListPersonas()
	if len(personas) != 3 {
		t.Fatalf("personas = %d, want 3", len(personas))
	}
	if personas[0].Name != "alpha" || personas[1].Name != "plain" || personas[2].Name != "zeta" {
		t.Fatalf("order = %s, %s, %s", personas[0].Name, personas[1].Name, personas[2].Name)
	}
	if !personas[0].Always || personas[0].Description != "first" {
		t.Errorf("alpha metadata = %+v", personas[0])
	}
	if personas[1].Always {
		t.Errorf("plain persona should not be always-on")
	}
}

func TestStripFrontmatter(t *testing.T) {
	in := "---\ndescription: d\n---\nbody line\n"
	if got := stripFrontmatter(in); got != "body line\n" {
		t.Fatalf("stripFrontmatter = %q", got)
	}
	if got := stripFrontmatter("plain"); got != "plain" {
		t.Fatalf("plain passthrough = %q", got)
	}
}
