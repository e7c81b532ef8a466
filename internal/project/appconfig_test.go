package project

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.LogLevel = "debug"
	cfg.RecentPresetFiles = []string{"/tmp/a.yaml", "/tmp/b.yaml"}
	cfg.Sliders[1].Prefix = "$"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path, nil)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.Theme != "dark" {
		t.Errorf("expected Theme=dark, got %s", loaded.Theme)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %s", loaded.LogLevel)
	}
	if len(loaded.RecentPresetFiles) != 2 {
		t.Errorf("expected 2 recent preset files, got %d", len(loaded.RecentPresetFiles))
	}
	if len(loaded.Sliders) != 4 {
		t.Fatalf("expected 4 sliders, got %d", len(loaded.Sliders))
	}
	if loaded.Sliders[1].Prefix != "$" {
		t.Errorf("expected slider prefix $, got %q", loaded.Sliders[1].Prefix)
	}
	if loaded.Sliders[1].ID != cfg.Sliders[1].ID {
		t.Errorf("slider ID not preserved: %s vs %s", loaded.Sliders[1].ID, cfg.Sliders[1].ID)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path, nil)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %s", cfg.Theme)
	}
	if len(cfg.Sliders) != 4 {
		t.Errorf("expected demo sliders, got %d", len(cfg.Sliders))
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("not valid json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadAppConfig(path, nil); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")

	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestLoadAppConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"theme":"","recent_preset_files":null,"window_width":0,"sliders":null}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "warn", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path, log)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.RecentPresetFiles == nil {
		t.Error("RecentPresetFiles should not be nil after loading")
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %q", cfg.Theme)
	}
	if cfg.WindowWidth != 420 || cfg.WindowHeight != 260 {
		t.Errorf("expected default window size, got %vx%v", cfg.WindowWidth, cfg.WindowHeight)
	}
	if len(cfg.Sliders) != 4 {
		t.Errorf("expected demo sliders, got %d", len(cfg.Sliders))
	}
	if !bytes.Contains(buf.Bytes(), []byte("no sliders")) {
		t.Errorf("expected a warning about missing sliders, got %q", buf.String())
	}
}

func TestAddRecentPresetFile(t *testing.T) {
	cfg := model.DefaultAppConfig()
	AddRecentPresetFile(&cfg, "a", 3)
	AddRecentPresetFile(&cfg, "b", 3)
	AddRecentPresetFile(&cfg, "c", 3)
	AddRecentPresetFile(&cfg, "a", 3)
	AddRecentPresetFile(&cfg, "d", 3)

	want := []string{"d", "a", "c"}
	if len(cfg.RecentPresetFiles) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.RecentPresetFiles)
	}
	for i := range want {
		if cfg.RecentPresetFiles[i] != want[i] {
			t.Errorf("expected %v, got %v", want, cfg.RecentPresetFiles)
			break
		}
	}
}
