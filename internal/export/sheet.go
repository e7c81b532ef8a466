package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/advslider/internal/model"
)

const sheetName = "Sliders"

// SheetColumns are the header cells written by ExportXLSX. The importer
// package recognises the same names.
var SheetColumns = []string{
	"Name", "Minimum", "Maximum", "Value", "Float", "Decimals",
	"Prefix", "Suffix", "Accent", "Formatted", "Position",
}

// ExportXLSX writes one row per preset with its configuration, the text
// the slider shows and the marker position at the export frame width.
// Accent cells are filled with the preset's accent color.
func ExportXLSX(path string, presets []model.SliderPreset) error {
	rendered, err := renderPresets(presets, nil)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D6D6D6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, name := range SheetColumns {
		if err := setCell(f, col+1, 1, name); err != nil {
			return err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(SheetColumns), 1)
	if err := f.SetCellStyle(sheetName, "A1", last, header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, rp := range rendered {
		row := i + 2
		s := rp.slider
		accent := model.HexColor(s.AccentColor())
		values := []any{
			rp.preset.Name, s.Minimum(), s.Maximum(), s.Value().Float(), s.IsFloat(), s.Decimals(),
			s.Prefix(), s.Suffix(), accent, s.ValueFormatted(), rp.frame.MarkerX,
		}
		for col, v := range values {
			if err := setCell(f, col+1, row, v); err != nil {
				return err
			}
		}

		fill, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{strings.TrimPrefix(accent, "#")}, Pattern: 1},
		})
		if err != nil {
			return fmt.Errorf("failed to create accent style: %w", err)
		}
		cell, _ := excelize.CoordinatesToCellName(9, row)
		if err := f.SetCellStyle(sheetName, cell, cell, fill); err != nil {
			return fmt.Errorf("failed to style accent cell: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return f.SaveAs(path)
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("failed to write %s: %w", cell, err)
	}
	return nil
}
