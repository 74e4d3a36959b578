package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("EASYDATE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Theme != "auto" {
		t.Fatalf("theme = %q, want auto", c.UI.Theme)
	}
	if c.UI.Locale != "en" {
		t.Fatalf("locale = %q, want en", c.UI.Locale)
	}
	if c.UI.FirstWeekday != "monday" {
		t.Fatalf("first_weekday = %q, want monday", c.UI.FirstWeekday)
	}
	if c.Picker.InitialMode != "month" {
		t.Fatalf("initial_mode = %q, want month", c.Picker.InitialMode)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[ui]\ntheme = \"dark\"\nlocale = \"de\"\n\n[picker]\ninitial_mode = \"year\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("EASYDATE_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.UI.Theme != "dark" {
		t.Fatalf("theme = %q, want dark", c.UI.Theme)
	}
	if c.UI.Locale != "de" {
		t.Fatalf("locale = %q, want de", c.UI.Locale)
	}
	if c.Picker.InitialMode != "year" {
		t.Fatalf("initial_mode = %q, want year", c.Picker.InitialMode)
	}
	// untouched keys keep their defaults
	if c.UI.FirstWeekday != "monday" {
		t.Fatalf("first_weekday = %q, want monday", c.UI.FirstWeekday)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("EASYDATE_CONFIG", path)

	in, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	in.UI.Theme = "light"
	in.UI.CancelLabel = "Never mind"
	if err := Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if out.UI.Theme != "light" {
		t.Fatalf("theme = %q, want light", out.UI.Theme)
	}
	if out.UI.CancelLabel != "Never mind" {
		t.Fatalf("cancel_label = %q", out.UI.CancelLabel)
	}
}
