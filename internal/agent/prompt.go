package agent

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const basePrompt = "You are a helpful assistant. You have access to tools to answer questions"

// personaMeta is the YAML frontmatter structure of a persona .md file.
type personaMeta struct {
	Description string `yaml:"description"`
	Always      bool   `yaml:"always"`
}

// PersonaInfo describes one persona file found in the persona directory.
type PersonaInfo struct {
	Name        string
	Path        string
	Description string
	Always      bool
}

// PromptBuilder assembles the system prompt: a fixed base instruction plus
// any persona overlays marked always=true. Personas are flat markdown files
// in the persona directory with optional YAML frontmatter.
type PromptBuilder struct {
	personaDir string
}

// NewPromptBuilder creates a PromptBuilder reading personas from dir. An
// empty or missing dir yields the bare base prompt.
func NewPromptBuilder(dir string) *PromptBuilder {
	return &PromptBuilder{personaDir: dir}
}

// SystemPrompt returns the assembled prompt. Persona order is by filename
// so the overlay is stable across restarts.
func (pb *PromptBuilder) SystemPrompt() string {
	parts := []string{basePrompt}
	for _, p := range pb.ListPersonas() {
		if !p.Always {
			continue
		}
		content := pb.loadBody(p.Name)
		if content == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("### Persona: %s\n\n%s", p.Name, content))
	}
	return strings.Join(parts, "\n\n")
}

// ListPersonas returns every persona file in the directory, sorted by name.
func (pb *PromptBuilder) ListPersonas() []PersonaInfo {
	if pb.personaDir == "" {
		return nil
	}
	entries, err := os.ReadDir(pb.personaDir)
	if err != nil {
		return nil
	}
	var personas []PersonaInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		meta := pb.frontmatter(name)
		personas = append(personas, PersonaInfo{
			Name:        name,
			Path:        filepath.Join(pb.personaDir, e.Name()),
			Description: meta.Description,
			Always:      meta.Always,
		})
	}
	sort.Slice(personas, func(i, j int) bool { return personas[i].Name < personas[j].Name })
	return personas
}

func (pb *PromptBuilder) load(name string) string {
	data, err := os.ReadFile(filepath.Join(pb.personaDir, name+".md"))
	if err != nil {
		return ""
	}
	return string(data)
}

func (pb *PromptBuilder) loadBody(name string) string {
	return strings.TrimSpace(stripFrontmatter(pb.load(name)))
}

func (pb *PromptBuilder) frontmatter(name string) personaMeta {
	content := pb.load(name)
	if content == "" || !strings.HasPrefix(content, "---") {
		return personaMeta{}
	}
	rest := content[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return personaMeta{}
	}
	var m personaMeta
	_ = yaml.Unmarshal([]byte(rest[:end]), &m)
	return m
}

// stripFrontmatter removes a leading --- delimited YAML block, if present.
func stripFrontmatter(content string) string {
	if !strings.HasPrefix(content, "---") {
		return content
	}
	rest := content[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return content
	}
	after := rest[end+4:]
	if i := strings.Index(after, "\n"); i >= 0 {
		after = after[i+1:]
	} else {
		after = ""
	}
	return after
}
