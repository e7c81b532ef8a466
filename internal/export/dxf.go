package export

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/advslider/internal/model"
)

// DXF layer names.
const (
	LayerFrames = "SLIDER_FRAME"
	LayerBars   = "SLIDER_BAR"
	LayerText   = "SLIDER_TEXT"
)

// dxfRowPitch is the vertical distance between presets in drawing units
// (pixels).
const dxfRowPitch = frameHeightPx * 2

// ExportDXF writes the rendered presets as a vector drawing in pixel
// units, one frame below the other. Outlines go on LayerFrames, filled
// bars as outlines on LayerBars and the value and name text on LayerText.
// DXF's y axis points up, so rows grow downwards from y = 0.
func ExportDXF(path string, presets []model.SliderPreset) error {
	rendered, err := renderPresets(presets, nil)
	if err != nil {
		return err
	}

	d := dxf.NewDrawing()
	for _, layer := range []string{LayerFrames, LayerBars, LayerText} {
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return err
		}
	}

	for i, rp := range rendered {
		top := -float64(i) * dxfRowPitch
		f := rp.frame

		d.ChangeLayer(LayerFrames)
		dxfRect(d, 0, top, f.Width, f.Height)

		if b := f.Bar; b != nil {
			d.ChangeLayer(LayerBars)
			dxfRect(d, b.X, top-b.Y, b.Width, b.Height)
		}

		d.ChangeLayer(LayerText)
		d.Text(rp.preset.Name, f.Width+10, top-f.Height+4, 0, f.Height/2)
		if l := f.Label; l != nil {
			d.Text(l.Text, l.X, top-l.Baseline, 0, l.Height)
		}
	}

	return d.SaveAs(path)
}

// dxfRect draws a rectangle whose top-left corner is (x, top).
func dxfRect(d *drawing.Drawing, x, top, w, h float64) {
	bottom := top - h
	d.Line(x, top, 0, x+w, top, 0)
	d.Line(x+w, top, 0, x+w, bottom, 0)
	d.Line(x+w, bottom, 0, x, bottom, 0)
	d.Line(x, bottom, 0, x, top, 0)
}
