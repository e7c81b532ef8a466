package export

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/advslider/internal/model"
)

// Page layout (A4 portrait, mm).
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	nameColumn   = 45.0
	rowPitch     = 14.0

	// mmPerPx scales rendered frames onto the page.
	mmPerPx = 0.5
	mmPerPt = 25.4 / 72
	pxPerPt = 96.0 / 72
)

// pdfMeasurer measures text with the document's core fonts, in pixels.
type pdfMeasurer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (m pdfMeasurer) MeasureText(text string, f model.Font) (float64, float64) {
	setFrameFont(m.pdf, f, mmPerPx)
	return m.pdf.GetStringWidth(m.tr(text)) / mmPerPx, f.DigitHeight() * pxPerPt
}

// setFrameFont selects the core font closest to f for a frame drawn at
// scale mm per pixel.
func setFrameFont(pdf *fpdf.Fpdf, f model.Font, scale float64) {
	style := ""
	if f.Bold() {
		style = "B"
	}
	pdf.SetFont(coreFamily(f.Family), style, f.Size*pxPerPt*scale/mmPerPt)
}

func coreFamily(family string) string {
	switch f := strings.ToLower(family); {
	case strings.HasPrefix(f, "times"), strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	case strings.HasPrefix(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	default:
		return "Helvetica"
	}
}

func setFill(pdf *fpdf.Fpdf, c color.NRGBA) { pdf.SetFillColor(int(c.R), int(c.G), int(c.B)) }
func setDraw(pdf *fpdf.Fpdf, c color.NRGBA) { pdf.SetDrawColor(int(c.R), int(c.G), int(c.B)) }
func setText(pdf *fpdf.Fpdf, c color.NRGBA) { pdf.SetTextColor(int(c.R), int(c.G), int(c.B)) }

// roundedRect draws a rectangle, rounding the corners when r > 0.
func roundedRect(pdf *fpdf.Fpdf, x, y, w, h, r float64, style string) {
	r = min(r, w/2, h/2)
	if r <= 0 {
		pdf.Rect(x, y, w, h, style)
		return
	}
	pdf.RoundedRect(x, y, w, h, r, "1234", style)
}

// drawFrame paints a rendered frame with its top-left corner at (x, y),
// scale mm per pixel.
func drawFrame(pdf *fpdf.Fpdf, tr func(string) string, frame model.Frame, x, y, scale float64) {
	pdf.SetLineWidth(0.2)
	setFill(pdf, frame.Background)
	setDraw(pdf, frame.BorderColor)
	roundedRect(pdf, x, y, frame.Width*scale, frame.Height*scale, frame.BorderRadius*scale, "FD")

	if b := frame.Bar; b != nil {
		setFill(pdf, b.Color)
		roundedRect(pdf, x+b.X*scale, y+b.Y*scale, b.Width*scale, b.Height*scale, b.Radius*scale, "F")
	}

	if l := frame.Label; l != nil {
		setFrameFont(pdf, l.Font, scale)
		setText(pdf, l.Color)
		pdf.Text(x+l.X*scale, y+l.Baseline*scale, tr(l.Text))
	}
}

// pageRows is how many preset rows fit below the header on one page.
func pageRows() int {
	return int(math.Floor((pageHeight - marginTop - headerHeight - marginBottom) / rowPitch))
}

// ExportPDF renders every preset as a slider sheet, one row per preset
// with its name on the left.
func ExportPDF(path string, presets []model.SliderPreset) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	rendered, err := renderPresets(presets, pdfMeasurer{pdf: pdf, tr: tr})
	if err != nil {
		return err
	}

	rowsPerPage := pageRows()
	for i, rp := range rendered {
		if i%rowsPerPage == 0 {
			pdf.AddPage()
			renderHeader(pdf, len(rendered))
		}
		y := marginTop + headerHeight + float64(i%rowsPerPage)*rowPitch

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(nameColumn-2, frameHeightPx*mmPerPx, tr(rp.preset.Name), "", 0, "L", false, 0, "")

		drawFrame(pdf, tr, rp.frame, marginLeft+nameColumn, y, mmPerPx)

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(110, 110, 110)
		pdf.SetXY(marginLeft+nameColumn, y+frameHeightPx*mmPerPx+0.5)
		info := fmt.Sprintf("range %g .. %g   value %s", rp.preset.Minimum, rp.preset.Maximum, rp.slider.Value())
		pdf.CellFormat(frameWidthPx*mmPerPx, 3, tr(info), "", 0, "L", false, 0, "")
	}

	return pdf.OutputFileAndClose(path)
}

func renderHeader(pdf *fpdf.Fpdf, count int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth/2, 8, "Slider presets", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(110, 110, 110)
	pdf.SetXY(pageWidth/2, marginTop)
	stamp := fmt.Sprintf("%d presets, %s", count, time.Now().Format("2006-01-02 15:04"))
	pdf.CellFormat(pageWidth/2-marginLeft, 8, stamp, "", 0, "R", false, 0, "")
}
