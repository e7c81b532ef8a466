package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/advslider/internal/export"
	"github.com/piwi3910/advslider/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Name,Min,Max\nA,0,10\nB,5,50\n", ','},
		{"semicolon", "Name;Min;Max\nA;0;10\nB;5;50\n", ';'},
		{"tab", "Name\tMin\tMax\nA\t0\t10\nB\t5\t50\n", '\t'},
		{"pipe", "Name|Min|Max\nA|0|10\nB|5|50\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_CaseInsensitive(t *testing.T) {
	m, ok := DetectColumns([]string{"NAME", "Minimum", "maximum", "VALUE"})
	if !ok {
		t.Fatal("expected header detection")
	}
	if m.Name != 0 || m.Minimum != 1 || m.Maximum != 2 || m.Value != 3 {
		t.Errorf("unexpected mapping %+v", m)
	}
	if m.Float != -1 || m.Accent != -1 {
		t.Errorf("absent columns should be -1, got %+v", m)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	m, ok := DetectColumns([]string{"Label", "From", "To", "Precision", "Unit", "Color"})
	if !ok {
		t.Fatal("expected header detection")
	}
	if m.Name != 0 || m.Minimum != 1 || m.Maximum != 2 || m.Decimals != 3 || m.Suffix != 4 || m.Accent != 5 {
		t.Errorf("unexpected mapping %+v", m)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	m, ok := DetectColumns([]string{"Max", "Value", "Min", "Name"})
	if !ok {
		t.Fatal("expected header detection")
	}
	if m.Maximum != 0 || m.Value != 1 || m.Minimum != 2 || m.Name != 3 {
		t.Errorf("unexpected mapping %+v", m)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	m, ok := DetectColumns([]string{"Volume", "0", "100", "40"})
	if ok {
		t.Fatal("numeric row should not be a header")
	}
	if m.Name != 0 || m.Minimum != 1 || m.Maximum != 2 || m.Value != 3 || m.Accent != 8 {
		t.Errorf("expected positional mapping, got %+v", m)
	}
}

// ─── ImportCSVFromReader Tests ─────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := "Name,Min,Max,Value,Float,Decimals,Prefix,Suffix,Accent\n" +
		"Price,-500,2500,100,true,2,~, €,#F0921F\n" +
		"Steps,0,10,3,no,0,,,\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(result.Presets))
	}

	p := result.Presets[0]
	if p.Name != "Price" || p.Minimum != -500 || p.Maximum != 2500 || p.Value != 100 {
		t.Errorf("unexpected preset %+v", p)
	}
	if !p.Float || p.Decimals != 2 {
		t.Errorf("expected float with 2 decimals, got %v/%d", p.Float, p.Decimals)
	}
	if p.Prefix != "~" || p.Suffix != " €" {
		t.Errorf("affixes should keep their spaces, got %q %q", p.Prefix, p.Suffix)
	}
	if p.AccentColor != "#F0921F" {
		t.Errorf("expected accent #F0921F, got %q", p.AccentColor)
	}
	if p.ID == "" {
		t.Error("imported presets should get an ID")
	}

	s, err := p.NewSlider()
	if err != nil {
		t.Fatalf("imported preset should build a slider: %v", err)
	}
	if got := s.ValueFormatted(); got != "~100.00 €" {
		t.Errorf("expected \"~100.00 €\", got %q", got)
	}

	if result.Presets[1].Float {
		t.Error("\"no\" should parse as an integer slider")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Volume,0,100,40\nGain,-12,12\n"), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(result.Presets))
	}
	if result.Presets[0].Value != 40 {
		t.Errorf("expected value 40, got %v", result.Presets[0].Value)
	}
	if result.Presets[1].Value != -12 {
		t.Errorf("missing value should default to the minimum, got %v", result.Presets[1].Value)
	}
}

func TestImportCSVFromReader_SemicolonDelimiter(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name;Min;Max\nA;1;2\n"), ';')
	if len(result.Presets) != 1 || result.Presets[0].Maximum != 2 {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected an error for an empty file")
	}
}

func TestImportCSVFromReader_MissingRequiredColumns(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Value\nA,3\n"), ',')
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Minimum, Maximum") {
		t.Errorf("expected missing column error, got %v", result.Errors)
	}
	if len(result.Presets) != 0 {
		t.Errorf("expected no presets, got %d", len(result.Presets))
	}
}

func TestImportCSVFromReader_RowErrors(t *testing.T) {
	csv := "Name,Min,Max,Decimals,Accent\n" +
		"Inverted,10,0,1,\n" +
		"Empty,5,5,1,\n" +
		"BadMin,abc,10,1,\n" +
		"NoMax,0,,1,\n" +
		"BadDecimals,0,10,-1,\n" +
		"BadColor,0,10,1,orange\n" +
		"Good,0,10,1,#00FF00\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 6 {
		t.Fatalf("expected 6 row errors, got %d: %v", len(result.Errors), result.Errors)
	}
	if !strings.HasPrefix(result.Errors[0], "Line 2:") {
		t.Errorf("errors should name the line, got %q", result.Errors[0])
	}
	if len(result.Presets) != 1 || result.Presets[0].Name != "Good" {
		t.Errorf("expected only the valid row, got %+v", result.Presets)
	}
}

func TestImportCSVFromReader_UnknownFloatFlag(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Min,Max,Float\nA,0,1,maybe\n"), ',')
	if len(result.Presets) != 1 || result.Presets[0].Float {
		t.Fatalf("expected an integer preset, got %+v", result.Presets)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Unknown float flag") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a float flag warning, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_UnnamedRows(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Name,Min,Max\n,0,1\n,0,2\n"), ',')
	if len(result.Presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(result.Presets))
	}
	if result.Presets[0].Name != "Slider 1" || result.Presets[1].Name != "Slider 2" {
		t.Errorf("unexpected generated names %q %q", result.Presets[0].Name, result.Presets[1].Name)
	}
}

// ─── File Tests ────────────────────────────────────────────

func TestImportCSV_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliders.csv")
	if err := os.WriteFile(path, []byte("Name;Min;Max;Value\nVolume;0;100;40\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Presets) != 1 || result.Presets[0].Value != 40 {
		t.Errorf("unexpected presets %+v", result.Presets)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

func TestImportExcel_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliders.xlsx")
	f := excelize.NewFile()
	rows := [][]any{
		{"Name", "Minimum", "Maximum", "Value"},
		{"Volume", 0, 100, 40},
	}
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Presets) != 1 || result.Presets[0].Maximum != 100 {
		t.Errorf("unexpected presets %+v", result.Presets)
	}
}

func TestImportExcel_RoundTripsExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sliders.xlsx")
	presets := model.DefaultPresets()
	if err := export.ExportXLSX(path, presets); err != nil {
		t.Fatal(err)
	}

	result := ImportExcel(path)
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Presets) != len(presets) {
		t.Fatalf("expected %d presets, got %d", len(presets), len(result.Presets))
	}

	for i, got := range result.Presets {
		want, err := presets[i].NewSlider()
		if err != nil {
			t.Fatal(err)
		}
		if got.Name != presets[i].Name {
			t.Errorf("preset %d: name %q, want %q", i, got.Name, presets[i].Name)
		}
		if got.Minimum != want.Minimum() || got.Maximum != want.Maximum() {
			t.Errorf("preset %d: range %v..%v, want %v..%v", i, got.Minimum, got.Maximum, want.Minimum(), want.Maximum())
		}
		if got.Value != want.Value().Float() {
			t.Errorf("preset %d: value %v, want %v", i, got.Value, want.Value().Float())
		}
		if got.Float != want.IsFloat() || got.Decimals != want.Decimals() {
			t.Errorf("preset %d: float %v/%d, want %v/%d", i, got.Float, got.Decimals, want.IsFloat(), want.Decimals())
		}
		if got.Prefix != want.Prefix() || got.Suffix != want.Suffix() {
			t.Errorf("preset %d: affixes %q %q", i, got.Prefix, got.Suffix)
		}
		if got.AccentColor != model.HexColor(want.AccentColor()) {
			t.Errorf("preset %d: accent %q", i, got.AccentColor)
		}
	}
}
