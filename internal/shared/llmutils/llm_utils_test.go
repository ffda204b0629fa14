package llmutils

import (
	"strings"
	"testing"

	"github.com/lakebot/lakebot/internal/schema"
)

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
	got := Truncate(strings.Repeat("a", 20), 10)
	if len([]rune(got)) != 10 || !strings.HasSuffix(got, "...") {
		t.Fatalf("Truncate = %q", got)
	}
	if got := Truncate("日本語テキストです", 5); len([]rune(got)) != 5 {
		t.Fatalf("rune truncation = %q", got)
	}
}

func TestToolHint(t *testing.T) {
	bare := ToolHint(schema.ToolCall{Name: "list_clusters"})
	if bare != "running list_clusters" {
		t.Fatalf("bare hint = %q", bare)
	}
	withArgs := ToolHint(schema.ToolCall{
		Name:      "terminate_cluster",
		Arguments: map[string]any{"cluster_id": "c1"},
	})
	if !strings.Contains(withArgs, "terminate_cluster") || !strings.Contains(withArgs, "cluster_id=c1") {
		t.Fatalf("hint = %q", withArgs)
	}
}
