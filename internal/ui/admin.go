package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/advslider/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	sizeEntry := func(val *float32) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.0f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 32); err == nil && v > 0 {
				*val = float32(v)
			}
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.LogLevel = selected
	})
	levelSelect.SetSelected(cfg.LogLevel)

	presetsEntry := widget.NewEntry()
	presetsEntry.SetText(cfg.PresetsFile)
	presetsEntry.SetPlaceHolder("optional YAML file loaded at startup")
	presetsEntry.OnChanged = func(text string) { cfg.PresetsFile = text }

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Log Level (next start)", levelSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Window Width", sizeEntry(&cfg.WindowWidth)),
		widget.NewFormItem("Window Height", sizeEntry(&cfg.WindowHeight)),
		widget.NewFormItem("Startup Presets", presetsEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.Sliders = a.CurrentPresets()
			a.config = cfg
			a.ApplyTheme(cfg.Theme)
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}

// ApplyTheme switches the theme variant and refreshes the app.
func (a *App) ApplyTheme(name string) {
	a.theme.SetVariantName(name)
	a.app.Settings().SetTheme(a.theme)
}

// showImportExportDialog displays the backup and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			a.config.Sliders = a.CurrentPresets()
			if err := project.ExportAllData(path, a.config); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("advslider-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your settings and sliders.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					createdAt, err := a.RestoreBackup(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", createdAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings and sliders) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup & Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// RestoreBackup replaces the config with a backup file and returns the
// backup's creation time. The sliders change is undoable.
func (a *App) RestoreBackup(path string) (string, error) {
	backup, err := project.ImportAllData(path)
	if err != nil {
		a.log.Error(err, "restoring backup failed")
		return "", err
	}
	sliders := backup.Config.Sliders
	backup.Config.Sliders = a.config.Sliders
	a.config = backup.Config
	a.ApplyTheme(a.config.Theme)
	a.ApplyPresets(sliders, "restore backup")
	return backup.CreatedAt, nil
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	if a.configPath == "" {
		return nil
	}
	return project.SaveAppConfig(a.configPath, a.config)
}

func (a *App) saveConfigQuietly() {
	if err := a.saveConfig(); err != nil {
		a.log.Error(err, "saving config failed")
	}
}

// SaveState stores the live slider values, e.g. before quitting.
func (a *App) SaveState() {
	a.config.Sliders = a.CurrentPresets()
	a.saveConfigQuietly()
}
