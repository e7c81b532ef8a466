package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	presetimporter "github.com/piwi3910/advslider/internal/importer"
	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
	"github.com/piwi3910/advslider/internal/project"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	win := test.NewWindow(nil)
	t.Cleanup(win.Close)

	a := NewApp(fyneApp, win, model.DefaultAppConfig(), filepath.Join(t.TempDir(), "config.json"), logger.Nop())
	win.SetContent(a.Build())
	return a
}

func TestAppBuildsOneRowPerSlider(t *testing.T) {
	a := newTestApp(t)

	require.Len(t, a.sliders, 4)
	require.Len(t, a.readouts, 4)
	assert.True(t, strings.HasPrefix(a.readouts[1].Text, "~100.00 €"), a.readouts[1].Text)
	assert.True(t, a.undoBtn.Disabled(), "nothing to undo yet")
}

func TestAppReadoutFollowsValue(t *testing.T) {
	a := newTestApp(t)

	a.sliders[0].SetValue(400)
	assert.True(t, strings.HasPrefix(a.readouts[0].Text, "400"), a.readouts[0].Text)
}

func TestAppUndoRedo(t *testing.T) {
	a := newTestApp(t)
	a.sliders[0].SetValue(400)

	a.AddSlider()
	require.Len(t, a.sliders, 5)
	assert.Equal(t, "Slider 5", a.config.Sliders[4].Name)
	assert.False(t, a.undoBtn.Disabled())

	a.Undo()
	require.Len(t, a.sliders, 4)
	assert.Equal(t, 400, a.sliders[0].Slider().Value().Int(), "undo keeps values moved before the change")
	assert.False(t, a.redoBtn.Disabled())

	a.Redo()
	require.Len(t, a.sliders, 5)

	a.RemoveSlider(0)
	require.Len(t, a.sliders, 4)
	assert.Equal(t, "Slider 2", a.config.Sliders[0].Name)

	a.Reset()
	require.Len(t, a.sliders, 4)
	assert.Equal(t, 375, a.sliders[0].Slider().Value().Int())
}

func TestAppUpdatePreset(t *testing.T) {
	a := newTestApp(t)

	bad := a.config.Sliders[0]
	bad.Maximum = bad.Minimum
	err := a.UpdatePreset(0, bad)
	require.Error(t, err)
	var verr *project.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 100.0, a.sliders[0].Slider().Minimum())
	assert.Equal(t, 500.0, a.sliders[0].Slider().Maximum())

	good := a.config.Sliders[0]
	good.Name = "Volume"
	good.Suffix = " dB"
	require.NoError(t, a.UpdatePreset(0, good))
	assert.Equal(t, "Volume", a.config.Sliders[0].Name)
	assert.Equal(t, "375 dB", a.sliders[0].Slider().ValueFormatted())
	assert.Equal(t, "edit Volume", a.history.UndoLabel())

	assert.Error(t, a.UpdatePreset(9, good))
}

func TestAppHandleImportResult(t *testing.T) {
	a := newTestApp(t)

	assert.Empty(t, a.HandleImportResult(presetimporter.ImportResult{Errors: []string{"Line 2: bad"}}))
	require.Len(t, a.sliders, 4)

	p := model.NewSliderPreset("Imported")
	msg := a.HandleImportResult(presetimporter.ImportResult{
		Presets: []model.SliderPreset{p},
		Errors:  []string{"Line 3: bad"},
	})
	assert.Contains(t, msg, "imported 1 sliders")
	assert.Contains(t, msg, "1 rows had errors")
	require.Len(t, a.sliders, 5)
	assert.Equal(t, "Imported", a.config.Sliders[4].Name)
}

func TestAppExportTo(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()

	files := map[string]string{"pdf": "sheet.pdf", "cards": "cards.pdf", "xlsx": "sliders.xlsx", "dxf": "sliders.dxf"}
	for format, name := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, a.ExportTo(format, path), format)
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}

	assert.Error(t, a.ExportTo("svg", filepath.Join(dir, "out.svg")))
}

func TestAppOpenPresetFile(t *testing.T) {
	a := newTestApp(t)

	p := model.NewSliderPreset("Only")
	p.Minimum, p.Maximum, p.Value = 0, 1, 0.5
	p.Float = true
	path := filepath.Join(t.TempDir(), "one.yaml")
	require.NoError(t, project.SavePresets(path, []model.SliderPreset{p}))

	require.NoError(t, a.OpenPresetFile(path))
	require.Len(t, a.sliders, 1)
	assert.Equal(t, "0.5", a.sliders[0].Slider().ValueFormatted())
	assert.Equal(t, []string{path}, a.config.RecentPresetFiles)

	saved, err := project.LoadAppConfig(a.configPath, nil)
	require.NoError(t, err)
	assert.Len(t, saved.Sliders, 1)
	assert.Equal(t, []string{path}, saved.RecentPresetFiles)

	assert.Error(t, a.OpenPresetFile(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Len(t, a.sliders, 1)
}

func TestAppRestoreBackup(t *testing.T) {
	a := newTestApp(t)

	cfg := model.DefaultAppConfig()
	cfg.Theme = "dark"
	cfg.Sliders = cfg.Sliders[:2]
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, project.ExportAllData(path, cfg))

	createdAt, err := a.RestoreBackup(path)
	require.NoError(t, err)
	assert.NotEmpty(t, createdAt)
	assert.Equal(t, "dark", a.config.Theme)
	require.Len(t, a.sliders, 2)

	a.Undo()
	assert.Len(t, a.sliders, 4)
}

func TestAppSaveState(t *testing.T) {
	a := newTestApp(t)
	a.sliders[2].SetValue(-0.25)
	a.SaveState()

	saved, err := project.LoadAppConfig(a.configPath, nil)
	require.NoError(t, err)
	require.Len(t, saved.Sliders, 4)
	assert.Equal(t, -0.25, saved.Sliders[2].Value)
}

func TestPresetFormRoundTrip(t *testing.T) {
	test.NewTempApp(t)
	p := model.DefaultPresets()[1]

	got, err := newPresetForm(p).read()
	require.NoError(t, err)

	want := p
	want.FontWeight = model.DefaultFont().Weight
	assert.Equal(t, want, got)
}

func TestPresetFormRejectsBadInput(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name string
		edit func(f *presetForm)
		want string
	}{
		{"empty name", func(f *presetForm) { f.name.SetText("  ") }, "name"},
		{"bad minimum", func(f *presetForm) { f.minimum.SetText("low") }, "minimum"},
		{"negative decimals", func(f *presetForm) { f.decimals.SetText("-1") }, "decimals"},
		{"bad radius", func(f *presetForm) { f.radius.SetText("3.5") }, "border radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPresetForm(model.NewSliderPreset("Slider"))
			tt.edit(f)
			_, err := f.read()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
