package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/advslider/internal/model"
	"github.com/piwi3910/advslider/internal/ui/widgets"
)

// presetForm holds the editor entries for one slider preset.
type presetForm struct {
	base model.SliderPreset

	name, minimum, maximum, value *widget.Entry
	decimals, singleStep, pageStep *widget.Entry
	thousands, decimalSep          *widget.Entry
	prefix, suffix                 *widget.Entry
	textColor, background          *widget.Entry
	accent, border, radius         *widget.Entry
	fontFamily, fontSize           *widget.Entry
	fontWeight                     *widget.Select

	float, showValue, keyboard, wheel *widget.Check
}

var fontWeights = []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}

func newEntry(text string) *widget.Entry {
	e := widget.NewEntry()
	e.SetText(text)
	return e
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newPresetForm(p model.SliderPreset) *presetForm {
	f := &presetForm{
		base:       p,
		name:       newEntry(p.Name),
		minimum:    newEntry(formatFloat(p.Minimum)),
		maximum:    newEntry(formatFloat(p.Maximum)),
		value:      newEntry(formatFloat(p.Value)),
		decimals:   newEntry(strconv.Itoa(p.Decimals)),
		singleStep: newEntry(formatFloat(p.SingleStep)),
		pageStep:   newEntry(formatFloat(p.PageStep)),
		thousands:  newEntry(p.ThousandsSeparator),
		decimalSep: newEntry(p.DecimalSeparator),
		prefix:     newEntry(p.Prefix),
		suffix:     newEntry(p.Suffix),
		textColor:  newEntry(p.TextColor),
		background: newEntry(p.BackgroundColor),
		accent:     newEntry(p.AccentColor),
		border:     newEntry(p.BorderColor),
		radius:     newEntry(strconv.Itoa(p.BorderRadius)),
		fontFamily: newEntry(p.FontFamily),
		fontSize:   newEntry(formatFloat(p.FontSize)),
		fontWeight: widget.NewSelect(fontWeights, nil),
		float:      widget.NewCheck("", nil),
		showValue:  widget.NewCheck("", nil),
		keyboard:   widget.NewCheck("", nil),
		wheel:      widget.NewCheck("", nil),
	}
	f.singleStep.SetPlaceHolder("0 = 1% of range")
	f.pageStep.SetPlaceHolder("0 = 5% of range")
	f.decimalSep.SetPlaceHolder(".")
	if p.FontWeight != 0 {
		f.fontWeight.SetSelected(strconv.Itoa(p.FontWeight))
	} else {
		f.fontWeight.SetSelected(strconv.Itoa(model.DefaultFont().Weight))
	}
	f.float.SetChecked(p.Float)
	f.showValue.SetChecked(!p.HideValue)
	f.keyboard.SetChecked(!p.KeyboardDisabled)
	f.wheel.SetChecked(!p.MouseWheelDisabled)
	return f
}

func parseField(label, text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", label)
	}
	return v, nil
}

func parseIntField(label, text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%s must be a whole number of at least 0", label)
	}
	return v, nil
}

// read converts the entries back into a preset. Range and color rules are
// left to project.ValidatePresets.
func (f *presetForm) read() (model.SliderPreset, error) {
	p := f.base
	p.Name = strings.TrimSpace(f.name.Text)
	if p.Name == "" {
		return p, fmt.Errorf("slider name cannot be empty")
	}

	var err error
	floats := []struct {
		label string
		entry *widget.Entry
		dst   *float64
	}{
		{"minimum", f.minimum, &p.Minimum},
		{"maximum", f.maximum, &p.Maximum},
		{"value", f.value, &p.Value},
		{"single step", f.singleStep, &p.SingleStep},
		{"page step", f.pageStep, &p.PageStep},
		{"font size", f.fontSize, &p.FontSize},
	}
	for _, fl := range floats {
		if *fl.dst, err = parseField(fl.label, fl.entry.Text); err != nil {
			return p, err
		}
	}
	if p.Decimals, err = parseIntField("decimals", f.decimals.Text); err != nil {
		return p, err
	}
	if p.BorderRadius, err = parseIntField("border radius", f.radius.Text); err != nil {
		return p, err
	}
	if p.FontWeight, err = strconv.Atoi(f.fontWeight.Selected); err != nil {
		return p, fmt.Errorf("font weight must be selected")
	}

	p.ThousandsSeparator = f.thousands.Text
	p.DecimalSeparator = f.decimalSep.Text
	p.Prefix = f.prefix.Text
	p.Suffix = f.suffix.Text
	p.TextColor = strings.TrimSpace(f.textColor.Text)
	p.BackgroundColor = strings.TrimSpace(f.background.Text)
	p.AccentColor = strings.TrimSpace(f.accent.Text)
	p.BorderColor = strings.TrimSpace(f.border.Text)
	p.FontFamily = strings.TrimSpace(f.fontFamily.Text)

	p.Float = f.float.Checked
	p.HideValue = !f.showValue.Checked
	p.KeyboardDisabled = !f.keyboard.Checked
	p.MouseWheelDisabled = !f.wheel.Checked
	return p, nil
}

// showPresetEditor opens a window to edit the slider at idx with a live
// preview.
func (a *App) showPresetEditor(idx int) {
	presets := a.CurrentPresets()
	if idx < 0 || idx >= len(presets) {
		return
	}
	p := presets[idx]
	f := newPresetForm(p)
	w := fyne.CurrentApp().NewWindow("Edit Slider: " + p.Name)

	preview := widgets.NewAdvancedSlider(nil, a.log.With("preview", p.Name))
	previewError := widget.NewLabel("")
	updatePreview := func() {
		edited, err := f.read()
		if err == nil {
			var s *model.Slider
			if s, err = edited.NewSlider(); err == nil {
				preview.Apply(func(target *model.Slider) { _ = edited.ApplyTo(target) })
				previewError.SetText(s.ValueFormatted())
				return
			}
		}
		previewError.SetText(err.Error())
	}
	updatePreview()

	grid := func(objs ...fyne.CanvasObject) fyne.CanvasObject {
		return container.NewVBox(container.NewGridWithColumns(2, objs...))
	}

	generalTab := container.NewTabItem("General", grid(
		widget.NewLabel("Name"), f.name,
		widget.NewLabel("Minimum"), f.minimum,
		widget.NewLabel("Maximum"), f.maximum,
		widget.NewLabel("Value"), f.value,
		widget.NewLabel("Single Step"), f.singleStep,
		widget.NewLabel("Page Step"), f.pageStep,
	))

	formatTab := container.NewTabItem("Format", grid(
		widget.NewLabel("Float Values"), f.float,
		widget.NewLabel("Decimals"), f.decimals,
		widget.NewLabel("Thousands Separator"), f.thousands,
		widget.NewLabel("Decimal Separator"), f.decimalSep,
		widget.NewLabel("Prefix"), f.prefix,
		widget.NewLabel("Suffix"), f.suffix,
		widget.NewLabel("Show Value"), f.showValue,
	))

	styleTab := container.NewTabItem("Style", grid(
		widget.NewLabel("Text Color"), f.textColor,
		widget.NewLabel("Background Color"), f.background,
		widget.NewLabel("Accent Color"), f.accent,
		widget.NewLabel("Border Color"), f.border,
		widget.NewLabel("Border Radius"), f.radius,
		widget.NewLabel("Font Family"), f.fontFamily,
		widget.NewLabel("Font Size (pt)"), f.fontSize,
		widget.NewLabel("Font Weight"), f.fontWeight,
	))

	inputTab := container.NewTabItem("Input", grid(
		widget.NewLabel("Keyboard Input"), f.keyboard,
		widget.NewLabel("Mouse Wheel Input"), f.wheel,
	))

	previewBtn := widget.NewButtonWithIcon("Refresh Preview", theme.ViewRefreshIcon(), updatePreview)
	previewTab := container.NewTabItem("Preview", container.NewVBox(previewBtn, preview, previewError))

	tabs := container.NewAppTabs(generalTab, formatTab, styleTab, inputTab, previewTab)

	saveBtn := widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
		edited, err := f.read()
		if err == nil {
			err = a.UpdatePreset(idx, edited)
		}
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		w.Close()
	})
	saveBtn.Importance = widget.HighImportance

	content := container.NewBorder(
		nil,
		container.NewHBox(layout.NewSpacer(), saveBtn),
		nil, nil,
		tabs,
	)

	w.SetContent(content)
	w.Resize(fyne.NewSize(460, 380))
	w.Show()
}
