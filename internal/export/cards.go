package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/advslider/internal/model"
)

// Card layout: 2 columns x 5 rows of 95 x 54 mm on A4.
const (
	cardMarginTop  = 13.5
	cardMarginLeft = 10.0
	cardWidth      = 95.0
	cardHeight     = 54.0
	cardCols       = 2
	cardRows       = 5
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 26.0
	cardPadding    = 3.0
)

// CardPayload returns the text encoded in a preset card's QR code: the
// preset as compact JSON, which PresetFromCardPayload reads back.
func CardPayload(p model.SliderPreset) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal preset %q: %w", p.Name, err)
	}
	return string(data), nil
}

// PresetFromCardPayload decodes a scanned card payload.
func PresetFromCardPayload(payload string) (model.SliderPreset, error) {
	var p model.SliderPreset
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return model.SliderPreset{}, fmt.Errorf("invalid card payload: %w", err)
	}
	return p, nil
}

// ExportCards writes one cut-out card per preset: name, the rendered
// slider, its range and a QR code carrying the full preset.
func ExportCards(path string, presets []model.SliderPreset) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	rendered, err := renderPresets(presets, pdfMeasurer{pdf: pdf, tr: tr})
	if err != nil {
		return err
	}

	for i, rp := range rendered {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}
		pos := i % cardsPerPage
		x := cardMarginLeft + float64(pos%cardCols)*cardWidth
		y := cardMarginTop + float64(pos/cardCols)*cardHeight

		if err := renderCard(pdf, tr, x, y, i, rp); err != nil {
			return fmt.Errorf("failed to render card for %q: %w", rp.preset.Name, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderCard(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, index int, rp renderedPreset) error {
	// Cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	payload, err := CardPayload(rp.preset)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	imgName := fmt.Sprintf("qr_%d_%s", index, rp.preset.ID)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+cardWidth-cardQRSize-cardPadding, y+cardPadding, cardQRSize, cardQRSize, false, opts, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 5, truncate(pdf, tr(rp.preset.Name), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetXY(textX, y+cardPadding+6)
	pdf.CellFormat(textW, 4, tr(fmt.Sprintf("%g .. %g", rp.preset.Minimum, rp.preset.Maximum)), "", 1, "L", false, 0, "")
	pdf.SetXY(textX, y+cardPadding+10)
	pdf.CellFormat(textW, 4, tr("value "+rp.slider.ValueFormatted()), "", 1, "L", false, 0, "")

	pdf.SetFont("Courier", "", 6)
	pdf.SetXY(textX, y+cardPadding+14)
	pdf.CellFormat(textW, 3, "id "+rp.preset.ID, "", 1, "L", false, 0, "")

	// The frame spans the card width below the QR code.
	scale := (cardWidth - 2*cardPadding) / rp.frame.Width
	drawFrame(pdf, tr, rp.frame, textX, y+cardPadding+cardQRSize+6, scale)

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// truncate shortens the already translated s with an ellipsis to fit
// width in the current font.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
