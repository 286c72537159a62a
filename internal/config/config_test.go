package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hy4ri/tabtodo/internal/todo"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.StartTab() != todo.Home {
		t.Errorf("expected Home start tab, got %s", cfg.StartTab())
	}
	if !cfg.UI.ShowHints || !cfg.UI.Mouse {
		t.Error("hints and mouse should default to on")
	}
	if cfg.Notifications.Enabled {
		t.Error("notifications should default to off")
	}
}

func TestLoadFrom_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Errorf("expected default theme, got %+v", cfg.Theme)
	}
}

func TestLoadFrom_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "ui:\n  start_tab: Work\n  show_hints: true\ntheme:\n  personal: \"33\"\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartTab() != todo.Work {
		t.Errorf("expected Work, got %s", cfg.StartTab())
	}
	if cfg.TabColor(todo.Personal) != "33" {
		t.Errorf("expected personal color 33, got %q", cfg.TabColor(todo.Personal))
	}
	if cfg.TabColor(todo.Home) != "#8B0000" {
		t.Errorf("home color should keep its default, got %q", cfg.TabColor(todo.Home))
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level should keep its default, got %q", cfg.Log.Level)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"bad yaml", "ui: [", "failed to parse"},
		{"bad tab", "ui:\n  start_tab: school\n", "ui.start_tab"},
		{"bad color", "theme:\n  work: green\n", "theme.work"},
		{"ansi out of range", "theme:\n  home: \"300\"\n", "theme.home"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadFrom(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.UI.StartTab = "personal"
	cfg.Notifications.Enabled = true
	cfg.Log.Level = "debug"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestConfigPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv(EnvConfigPath, want)

	got, err := ConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestConfigDir_XDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join(base, "tabtodo") {
		t.Errorf("unexpected config dir %s", dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("config dir should be created: %v", err)
	}

	cfg := DefaultConfig()
	logPath, err := cfg.LogPath()
	if err != nil {
		t.Fatal(err)
	}
	if logPath != filepath.Join(dir, "tabtodo.log") {
		t.Errorf("unexpected log path %s", logPath)
	}
}
