package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/advslider/internal/export"
	presetimporter "github.com/piwi3910/advslider/internal/importer"
	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
	"github.com/piwi3910/advslider/internal/project"
	"github.com/piwi3910/advslider/internal/ui/widgets"
)

const recentFilesLimit = 8

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	log        *logger.Logger
	history    *History
	theme      *CompactTheme

	// Parallel to config.Sliders.
	sliders  []*widgets.AdvancedSlider
	readouts []*widget.Label

	// UI references for dynamic updates
	sliderContainer *fyne.Container
	undoBtn         *ttwidget.Button
	redoBtn         *ttwidget.Button
	status          *widget.Label
}

// NewApp creates the demo application around cfg. configPath is where
// settings are persisted; an empty path disables saving.
func NewApp(fyneApp fyne.App, window fyne.Window, cfg model.AppConfig, configPath string, log *logger.Logger) *App {
	a := &App{
		app:        fyneApp,
		window:     window,
		config:     cfg,
		configPath: configPath,
		log:        log,
		history:    NewHistory(),
		theme:      NewCompactTheme(cfg.Theme),
	}
	fyneApp.Settings().SetTheme(a.theme)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Presets...", a.loadPresets),
		fyne.NewMenuItem("Save Presets...", a.savePresets),
		a.recentMenuItem(),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Table...", a.importTable),
		fyne.NewMenuItem("Export PDF Sheet...", func() { a.exportFile("pdf") }),
		fyne.NewMenuItem("Export Preset Cards...", func() { a.exportFile("cards") }),
		fyne.NewMenuItem("Export Spreadsheet...", func() { a.exportFile("xlsx") }),
		fyne.NewMenuItem("Export DXF...", func() { a.exportFile("dxf") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup and Restore...", a.showImportExportDialog),
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", a.Undo),
		fyne.NewMenuItem("Redo", a.Redo),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add Slider", a.AddSlider),
		fyne.NewMenuItem("Reset to Demo Sliders", a.Reset),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

func (a *App) recentMenuItem() *fyne.MenuItem {
	item := fyne.NewMenuItem("Open Recent", nil)
	if len(a.config.RecentPresetFiles) == 0 {
		item.Disabled = true
		return item
	}
	var children []*fyne.MenuItem
	for _, path := range a.config.RecentPresetFiles {
		children = append(children, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openPresetFile(path)
		}))
	}
	item.ChildMenu = fyne.NewMenu("", children...)
	return item
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About AdvSlider",
		"AdvSlider - Advanced Slider Demo\n\n"+
			"A flat slider widget that shows its formatted value\n"+
			"next to the fill bar, with presets and exports.",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.undoBtn = newToolbarButton(theme.ContentUndoIcon(), "Undo", a.Undo)
	a.redoBtn = newToolbarButton(theme.ContentRedoIcon(), "Redo", a.Redo)

	toolbar := container.NewHBox(
		newToolbarButton(theme.FolderOpenIcon(), "Open presets", a.loadPresets),
		newToolbarButton(theme.DocumentSaveIcon(), "Save presets", a.savePresets),
		widget.NewSeparator(),
		a.undoBtn,
		a.redoBtn,
		newToolbarButton(theme.ContentAddIcon(), "Add slider", a.AddSlider),
		newToolbarButton(theme.ViewRefreshIcon(), "Reset to demo sliders", a.Reset),
		widget.NewSeparator(),
		newToolbarButton(theme.DocumentPrintIcon(), "Export PDF sheet", func() { a.exportFile("pdf") }),
		newToolbarButton(theme.GridIcon(), "Export spreadsheet", func() { a.exportFile("xlsx") }),
		newToolbarButton(theme.UploadIcon(), "Import table", a.importTable),
	)

	a.status = widget.NewLabel("")
	a.sliderContainer = container.NewVBox()
	a.rebuildSliders()

	content := container.NewBorder(
		toolbar,
		a.status,
		nil, nil,
		container.NewVScroll(a.sliderContainer),
	)
	return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
}

// ─── Slider Rows ───────────────────────────────────────────

// rebuildSliders recreates one row per configured slider.
func (a *App) rebuildSliders() {
	a.sliders = a.sliders[:0]
	a.readouts = a.readouts[:0]
	a.sliderContainer.RemoveAll()

	for i, p := range a.config.Sliders {
		s, err := p.NewSlider()
		if err != nil {
			a.log.Error(err, "skipping invalid slider preset")
			s = model.NewSlider()
		}
		sw := widgets.NewAdvancedSlider(s, a.log.With("slider", p.Name))
		readout := widget.NewLabel("")
		readout.TextStyle = fyne.TextStyle{Monospace: true}

		name := p.Name
		update := func(r model.Reading) {
			readout.SetText(fmt.Sprintf("%s  (%s)", s.ValueFormatted(), r))
			a.log.Debugf("%s changed to %s", name, r)
		}
		sw.OnValueChanged(update)
		update(s.Value())

		idx := i
		editBtn := newToolbarButton(theme.DocumentCreateIcon(), "Edit slider", func() {
			a.showPresetEditor(idx)
		})
		deleteBtn := newToolbarButton(theme.DeleteIcon(), "Remove slider", func() {
			a.RemoveSlider(idx)
		})

		header := container.NewHBox(widget.NewLabelWithStyle(p.Name, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(), readout, editBtn, deleteBtn)
		a.sliderContainer.Add(container.NewVBox(header, sw))

		a.sliders = append(a.sliders, sw)
		a.readouts = append(a.readouts, readout)
	}
	a.sliderContainer.Refresh()
	a.refreshHistoryButtons()
}

func (a *App) refreshHistoryButtons() {
	if a.undoBtn == nil {
		return
	}
	setEnabled(a.undoBtn, a.history.CanUndo())
	setEnabled(a.redoBtn, a.history.CanRedo())
	if label := a.history.UndoLabel(); label != "" {
		a.undoBtn.SetToolTip("Undo " + label)
	} else {
		a.undoBtn.SetToolTip("Undo")
	}
	if label := a.history.RedoLabel(); label != "" {
		a.redoBtn.SetToolTip("Redo " + label)
	} else {
		a.redoBtn.SetToolTip("Redo")
	}
}

func setEnabled(b *ttwidget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (a *App) setStatus(format string, args ...any) {
	if a.status != nil {
		a.status.SetText(fmt.Sprintf(format, args...))
	}
}

// ─── State Changes ─────────────────────────────────────────

// CurrentPresets captures the live sliders, including values moved since
// the last rebuild.
func (a *App) CurrentPresets() []model.SliderPreset {
	out := make([]model.SliderPreset, len(a.config.Sliders))
	for i, p := range a.config.Sliders {
		if i < len(a.sliders) {
			out[i] = model.PresetFromSlider(p.ID, p.Name, a.sliders[i].Slider())
		} else {
			out[i] = p
		}
	}
	return out
}

// ApplyPresets replaces the sliders, recording the previous state under
// label for undo.
func (a *App) ApplyPresets(presets []model.SliderPreset, label string) {
	a.history.Push(MakeSnapshot(a.CurrentPresets(), label))
	a.setPresets(presets)
	a.log.Info(fmt.Sprintf("%s: %d sliders", label, len(presets)))
}

func (a *App) setPresets(presets []model.SliderPreset) {
	a.config.Sliders = presets
	if a.sliderContainer != nil {
		a.rebuildSliders()
	}
	a.saveConfigQuietly()
}

// Undo reverts the last recorded change.
func (a *App) Undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.CurrentPresets(), ""))
	if !ok {
		return
	}
	a.setPresets(snap.Sliders)
	a.setStatus("Undid %s", snap.Label)
}

// Redo reapplies the last undone change.
func (a *App) Redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.CurrentPresets(), ""))
	if !ok {
		return
	}
	a.setPresets(snap.Sliders)
	a.setStatus("Redid %s", snap.Label)
}

// Reset restores the four demo sliders.
func (a *App) Reset() {
	a.ApplyPresets(model.DefaultPresets(), "reset")
}

// AddSlider appends a default slider.
func (a *App) AddSlider() {
	presets := a.CurrentPresets()
	presets = append(presets, model.NewSliderPreset(fmt.Sprintf("Slider %d", len(presets)+1)))
	a.ApplyPresets(presets, "add slider")
}

// RemoveSlider deletes the slider at idx.
func (a *App) RemoveSlider(idx int) {
	presets := a.CurrentPresets()
	if idx < 0 || idx >= len(presets) {
		return
	}
	name := presets[idx].Name
	presets = append(presets[:idx], presets[idx+1:]...)
	a.ApplyPresets(presets, "remove "+name)
}

// UpdatePreset validates p and replaces the slider at idx with it.
func (a *App) UpdatePreset(idx int, p model.SliderPreset) error {
	presets := a.CurrentPresets()
	if idx < 0 || idx >= len(presets) {
		return fmt.Errorf("no slider at index %d", idx)
	}
	presets[idx] = p
	if err := project.ValidatePresets(presets); err != nil {
		return err
	}
	a.ApplyPresets(presets, "edit "+p.Name)
	return nil
}

// ─── Preset Files ──────────────────────────────────────────

func (a *App) savePresets() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SavePresets(path, a.CurrentPresets()); err != nil {
			a.log.Error(err, "saving presets failed")
			dialog.ShowError(err, a.window)
			return
		}
		a.rememberPresetFile(path)
		a.setStatus("Saved %s", filepath.Base(path))
	}, a.window)
	d.SetFileName("sliders.yaml")
	d.Show()
}

func (a *App) loadPresets() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.openPresetFile(reader.URI().Path())
	}, a.window)
	d.Show()
}

func (a *App) openPresetFile(path string) {
	if err := a.OpenPresetFile(path); err != nil {
		dialog.ShowError(err, a.window)
	}
}

// OpenPresetFile loads a YAML preset file and replaces the sliders.
func (a *App) OpenPresetFile(path string) error {
	presets, err := project.LoadPresets(path)
	if err != nil {
		a.log.Error(err, "loading presets failed")
		return err
	}
	a.ApplyPresets(presets, "open "+filepath.Base(path))
	a.rememberPresetFile(path)
	return nil
}

func (a *App) rememberPresetFile(path string) {
	project.AddRecentPresetFile(&a.config, path, recentFilesLimit)
	a.saveConfigQuietly()
	if a.window.MainMenu() != nil {
		a.SetupMenus()
	}
}

// ─── Export / Import ───────────────────────────────────────

// ExportTo writes the current sliders to path in the given format:
// "pdf", "cards", "xlsx" or "dxf".
func (a *App) ExportTo(format, path string) error {
	presets := a.CurrentPresets()
	var err error
	switch format {
	case "pdf":
		err = export.ExportPDF(path, presets)
	case "cards":
		err = export.ExportCards(path, presets)
	case "xlsx":
		err = export.ExportXLSX(path, presets)
	case "dxf":
		err = export.ExportDXF(path, presets)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		a.log.Error(err, "export failed")
		return err
	}
	a.log.With("path", path).Info("exported " + format)
	return nil
}

func (a *App) exportFile(format string) {
	ext := format
	if format == "cards" {
		ext = "pdf"
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := a.ExportTo(format, path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Sliders exported to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName("sliders-" + format + "." + ext)
	d.Show()
}

func (a *App) importTable() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		var result presetimporter.ImportResult
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			result = presetimporter.ImportExcel(path)
		} else {
			result = presetimporter.ImportCSV(path)
		}
		if msg := a.HandleImportResult(result); msg != "" {
			dialog.ShowInformation("Import Complete", msg, a.window)
		}
		if len(result.Errors) > 0 {
			dialog.ShowError(fmt.Errorf("errors encountered during import:\n\n%s", strings.Join(result.Errors, "\n")), a.window)
		}
	}, a.window)
}

// HandleImportResult appends the imported presets and returns a summary,
// or "" when nothing was imported.
func (a *App) HandleImportResult(result presetimporter.ImportResult) string {
	for _, w := range result.Warnings {
		a.log.Warn("import: " + w)
	}
	for _, e := range result.Errors {
		a.log.Warn("import skipped: " + e)
	}
	if len(result.Presets) == 0 {
		return ""
	}

	presets := append(a.CurrentPresets(), result.Presets...)
	a.ApplyPresets(presets, fmt.Sprintf("import %d sliders", len(result.Presets)))

	msg := fmt.Sprintf("Successfully imported %d sliders.", len(result.Presets))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	return msg
}
