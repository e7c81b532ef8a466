package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/advslider/internal/model"
	"github.com/piwi3910/advslider/internal/project"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-19"

	output, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, output, "AdvSlider 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-19")
}

func TestExportCommandWritesEveryFormat(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")

	for _, name := range []string{"sheet.pdf", "sliders.xlsx", "sliders.dxf"} {
		out := filepath.Join(dir, name)
		output, err := execute(t, "export", "--config", config, "--out", out)
		require.NoError(t, err, name)
		require.Contains(t, output, "exported 4 sliders")

		info, err := os.Stat(out)
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}

	cards := filepath.Join(dir, "cards.pdf")
	_, err := execute(t, "export", "--config", config, "--out", cards, "--format", "cards")
	require.NoError(t, err)
	require.FileExists(t, cards)
}

func TestExportCommandUsesPresetFile(t *testing.T) {
	dir := t.TempDir()
	p := model.NewSliderPreset("Volume")
	p.Maximum = 100
	p.Value = 40
	presets := filepath.Join(dir, "sliders.yaml")
	require.NoError(t, project.SavePresets(presets, []model.SliderPreset{p}))

	out := filepath.Join(dir, "sliders.xlsx")
	output, err := execute(t, "export", "--config", filepath.Join(dir, "config.json"), "-p", presets, "-o", out)
	require.NoError(t, err)
	require.Contains(t, output, "exported 1 sliders")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Volume", rows[1][0])
}

func TestExportCommandErrors(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")

	_, err := execute(t, "export", "--config", config, "--out", filepath.Join(dir, "out.svg"))
	require.ErrorContains(t, err, "unsupported export format")

	_, err = execute(t, "export", "--config", config)
	require.Error(t, err, "--out is required")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("version: 1\nsliders:\n  - name: Flat\n    minimum: 5\n    maximum: 5\n"), 0644))
	_, err = execute(t, "export", "--config", config, "--presets", bad, "--out", filepath.Join(dir, "out.pdf"))
	var verr *project.ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = execute(t, "export", "--config", config, "--log-level", "loud", "--out", filepath.Join(dir, "out.pdf"))
	require.ErrorContains(t, err, "log level")
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		format  string
		want    string
		wantErr bool
	}{
		{"pdf by extension", "a.pdf", "", "pdf", false},
		{"upper case extension", "A.XLSX", "", "xlsx", false},
		{"dxf", "drawing.dxf", "", "dxf", false},
		{"explicit cards", "cards.pdf", "cards", "cards", false},
		{"explicit overrides extension", "out.bin", "PDF", "pdf", false},
		{"unknown extension", "a.svg", "", "", true},
		{"no extension", "sliders", "", "", true},
		{"missing out", " ", "pdf", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveFormat(tt.out, tt.format)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestLoadSessionLevels(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "config.json")
	cfg := model.DefaultAppConfig()
	cfg.LogLevel = "warn"
	require.NoError(t, project.SaveAppConfig(config, cfg))

	s, err := loadSession(&rootFlags{configPath: config}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "warn", s.log.Level(), "config level applies without flags")
	require.Len(t, s.config.Sliders, 4)

	s, err = loadSession(&rootFlags{configPath: config, logLevel: "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "error", s.log.Level())

	s, err = loadSession(&rootFlags{configPath: config, logLevel: "error", verbose: true}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, "debug", s.log.Level())
}
