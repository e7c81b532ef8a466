package model

import "testing"

func TestDefaultAppConfig(t *testing.T) {
	cfg := DefaultAppConfig()

	if cfg.Theme != "system" {
		t.Errorf("expected default theme=system, got %s", cfg.Theme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level=info, got %s", cfg.LogLevel)
	}
	if cfg.RecentPresetFiles == nil {
		t.Error("RecentPresetFiles should not be nil")
	}
	if len(cfg.Sliders) != 4 {
		t.Fatalf("expected 4 demo sliders, got %d", len(cfg.Sliders))
	}
}

func TestDefaultPresetsBuildSliders(t *testing.T) {
	want := []string{"375", "~100.00 €", "-0.552°", "12.5"}
	for i, p := range DefaultPresets() {
		s, err := p.NewSlider()
		if err != nil {
			t.Fatalf("%s: %v", p.Name, err)
		}
		if got := s.ValueFormatted(); got != want[i] {
			t.Errorf("%s: expected %q, got %q", p.Name, want[i], got)
		}
		if _, _, err := s.Render(200, 18, nil); err != nil {
			t.Errorf("%s: render failed: %v", p.Name, err)
		}
	}
}

func TestDefaultPresetsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range DefaultPresets() {
		if p.ID == "" {
			t.Errorf("%s: empty ID", p.Name)
		}
		if seen[p.ID] {
			t.Errorf("duplicate ID %s", p.ID)
		}
		seen[p.ID] = true
	}
}
