package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "multiline.toml", `
max_height = 10
tab_width = 2
decorations = "none"
log_level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxHeight != 10 || cfg.TabWidth != 2 || cfg.Decorations != "none" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "multiline.yaml", `
max_height: 6
keymap: /home/me/keys.lua
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxHeight != 6 || cfg.Keymap != "/home/me/keys.lua" {
		t.Errorf("Load() = %+v", cfg)
	}
	// Unset fields keep their defaults.
	if cfg.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default 4", cfg.TabWidth)
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "multiline.ini", "max_height = 3")
	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded for unsupported format")
	}
}

func TestLoadInvalidSyntax(t *testing.T) {
	path := writeFile(t, "broken.toml", "max_height = =")
	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded for invalid TOML")
	}
}

func TestNormalizeClampsValues(t *testing.T) {
	path := writeFile(t, "odd.toml", `
max_height = -2
tab_width = 0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.MaxHeight != 0 {
		t.Errorf("MaxHeight = %d, want clamped to 0", cfg.MaxHeight)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want default 4", cfg.TabWidth)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"debug", 0},
		{"info", 1},
		{"WARN", 2},
		{"error", 3},
		{"mystery", 1},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.in); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
