package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := Get()
	registry.Clear()

	err := registry.Register(&Template{ID: "report.underwriting", SystemPrompt: "sys"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := registry.GetPrompt("report.underwriting")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.SystemPrompt != "sys" {
		t.Errorf("unexpected system prompt: %q", got.SystemPrompt)
	}

	if _, err := registry.GetPrompt("missing"); err == nil {
		t.Error("expected error for unknown prompt")
	}
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	if err := Get().Register(&Template{}); err == nil {
		t.Error("expected error for empty prompt ID")
	}
}

func TestLoadFromDirectory(t *testing.T) {
	Get().Clear()

	baseDir := t.TempDir()
	promptDir := filepath.Join(baseDir, "prompts", "mio")
	if err := os.MkdirAll(promptDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{
		"name": "Weekly Feedback",
		"system_prompt": "You are a mindset coach.",
		"user_prompt_template": "Week {{.Week}}: {{.Notes}}"
	}`
	if err := os.WriteFile(filepath.Join(promptDir, "weekly_feedback.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFromDirectory(baseDir); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// ID and category are derived from the file path when omitted.
	tmpl, err := Get().GetPrompt("mio.weekly_feedback")
	if err != nil {
		t.Fatalf("expected derived id, got: %v", err)
	}
	if tmpl.Category != "mio" {
		t.Errorf("expected category mio, got %q", tmpl.Category)
	}

	rendered, err := RenderUserPrompt(tmpl, map[string]interface{}{"Week": 3, "Notes": "good week"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(rendered, "Week 3") || !strings.Contains(rendered, "good week") {
		t.Errorf("unexpected render: %q", rendered)
	}
}

func TestLoadFromDirectoryMissing(t *testing.T) {
	if err := LoadFromDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing prompts directory")
	}
}
