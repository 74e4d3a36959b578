package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeData(t *testing.T, raw string) map[string]any {
	t.Helper()
	var env struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	return env.Data
}

func TestDocs_ListsTopics(t *testing.T) {
	out, _, err := runCLI(t, "docs")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	data := decodeData(t, out)
	topics, ok := data["topics"].([]any)
	if !ok {
		t.Fatalf("expected topics array, got %#v", data)
	}
	joined := make([]string, 0, len(topics))
	for _, tp := range topics {
		joined = append(joined, tp.(string))
	}
	for _, want := range []string{"config", "keybindings"} {
		found := false
		for _, got := range joined {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected topic %q in %v", want, joined)
		}
	}
}

func TestDocs_TopicEnvelopeAndRaw(t *testing.T) {
	out, _, err := runCLI(t, "docs", "keybindings")
	if err != nil {
		t.Fatalf("docs keybindings: %v", err)
	}
	data := decodeData(t, out)
	if data["topic"] != "keybindings" {
		t.Fatalf("topic=%v", data["topic"])
	}
	md, _ := data["markdown"].(string)
	if !strings.Contains(md, "enter") {
		t.Fatalf("expected keybinding docs to mention enter, got %q", md)
	}

	raw, _, err := runCLI(t, "docs", "keybindings", "--raw")
	if err != nil {
		t.Fatalf("docs --raw: %v", err)
	}
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		t.Fatalf("expected raw markdown, got JSON: %q", raw)
	}
}

func TestDocs_UnknownTopicFails(t *testing.T) {
	_, errOut, err := runCLI(t, "docs", "nope")
	if err == nil {
		t.Fatalf("expected error for unknown topic")
	}
	if !strings.Contains(errOut, "unknown docs topic") {
		t.Fatalf("stderr=%q", errOut)
	}
}

func TestPrefs_SetGetListUnset(t *testing.T) {
	t.Setenv("EASYDATE_STATE_DIR", t.TempDir())

	if _, _, err := runCLI(t, "prefs", "set", "ui.theme", "dark"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}

	out, _, err := runCLI(t, "prefs", "get", "ui.theme")
	if err != nil {
		t.Fatalf("prefs get: %v", err)
	}
	if data := decodeData(t, out); data["value"] != "dark" {
		t.Fatalf("value=%v, want dark", data["value"])
	}

	out, _, err = runCLI(t, "prefs", "list")
	if err != nil {
		t.Fatalf("prefs list: %v", err)
	}
	data := decodeData(t, out)
	prefs, _ := data["prefs"].(map[string]any)
	if prefs["ui.theme"] != "dark" {
		t.Fatalf("prefs=%v", prefs)
	}

	if _, _, err := runCLI(t, "prefs", "unset", "ui.theme"); err != nil {
		t.Fatalf("prefs unset: %v", err)
	}
	if _, _, err := runCLI(t, "prefs", "get", "ui.theme"); err == nil {
		t.Fatalf("expected error for unset preference")
	}
}

func TestPrefs_RejectsUnknownKeyAndValue(t *testing.T) {
	t.Setenv("EASYDATE_STATE_DIR", t.TempDir())

	_, errOut, err := runCLI(t, "prefs", "set", "ui.nope", "x")
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(errOut, "unknown preference key") {
		t.Fatalf("stderr=%q", errOut)
	}

	if _, _, err := runCLI(t, "prefs", "set", "ui.theme", "neon"); err == nil {
		t.Fatalf("expected error for invalid enum value")
	}
}

func TestLoadSettings_MergesPrefsOverConfig(t *testing.T) {
	t.Setenv("EASYDATE_STATE_DIR", t.TempDir())
	t.Setenv("EASYDATE_CONFIG", t.TempDir()+"/config.toml")

	if _, _, err := runCLI(t, "prefs", "set", "ui.locale", "fr"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}
	if _, _, err := runCLI(t, "prefs", "set", "picker.initial_mode", "year"); err != nil {
		t.Fatalf("prefs set: %v", err)
	}

	app := &App{}
	cfg, err := loadSettings(context.Background(), app)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.UI.Locale != "fr" {
		t.Fatalf("locale=%q, want fr (pref overlay)", cfg.UI.Locale)
	}
	if cfg.Picker.InitialMode != "year" {
		t.Fatalf("initial mode=%q, want year", cfg.Picker.InitialMode)
	}
	if cfg.UI.Theme != "auto" {
		t.Fatalf("theme=%q, want built-in default", cfg.UI.Theme)
	}
}
