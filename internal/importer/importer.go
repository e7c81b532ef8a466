// Package importer reads slider presets from CSV and Excel tables. It
// detects the delimiter, maps columns by header name case-insensitively
// and falls back to the column order written by the XLSX exporter.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/advslider/internal/model"
)

// ImportResult is what an import produced: presets plus per-row errors
// and warnings.
type ImportResult struct {
	Presets  []model.SliderPreset
	Errors   []string
	Warnings []string
}

// ColumnMapping maps column roles to their indices; -1 means absent.
type ColumnMapping struct {
	Name     int
	Minimum  int
	Maximum  int
	Value    int
	Float    int
	Decimals int
	Prefix   int
	Suffix   int
	Accent   int
}

// headerAliases maps column roles to their accepted header names (lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "label", "slider", "title"},
	"minimum":  {"minimum", "min", "from", "lower"},
	"maximum":  {"maximum", "max", "to", "upper"},
	"value":    {"value", "val", "current"},
	"float":    {"float", "is float", "decimal mode", "fractional"},
	"decimals": {"decimals", "precision", "digits", "places"},
	"prefix":   {"prefix", "before"},
	"suffix":   {"suffix", "unit", "after"},
	"accent":   {"accent", "accent color", "color", "colour"},
}

// aliasRoles is headerAliases inverted.
var aliasRoles = func() map[string]string {
	out := make(map[string]string)
	for role, aliases := range headerAliases {
		for _, a := range aliases {
			out[a] = role
		}
	}
	return out
}()

// DetectCSVDelimiter guesses the delimiter of data among comma,
// semicolon, tab and pipe. A candidate scores by how many records share
// the first record's width, wider tables breaking ties. Comma wins when
// no candidate splits the first record.
func DetectCSVDelimiter(data []byte) rune {
	best, bestScore := ',', 0
	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, err := readRecords(bytes.NewReader(data), delim)
		if err != nil || len(records) == 0 || len(records[0]) < 2 {
			continue
		}
		width := len(records[0])
		consistent := 0
		for _, r := range records {
			if len(r) == width {
				consistent++
			}
		}
		if score := consistent*10 + width; score > bestScore {
			best, bestScore = delim, score
		}
	}
	return best
}

// readRecords reads every record, tolerating stray quotes and ragged rows.
func readRecords(r io.Reader, delim rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// DetectColumns examines a header row and returns a ColumnMapping. It
// reports false, with the exporter's positional mapping, when no cell is a
// known header name.
func DetectColumns(row []string) (ColumnMapping, bool) {
	m := ColumnMapping{-1, -1, -1, -1, -1, -1, -1, -1, -1}
	slots := map[string]*int{
		"name": &m.Name, "minimum": &m.Minimum, "maximum": &m.Maximum,
		"value": &m.Value, "float": &m.Float, "decimals": &m.Decimals,
		"prefix": &m.Prefix, "suffix": &m.Suffix, "accent": &m.Accent,
	}

	isHeader := false
	for i, cell := range row {
		role, ok := aliasRoles[strings.ToLower(strings.TrimSpace(cell))]
		if !ok {
			continue
		}
		isHeader = true
		if *slots[role] == -1 {
			*slots[role] = i
		}
	}

	if !isHeader {
		return ColumnMapping{Name: 0, Minimum: 1, Maximum: 2, Value: 3, Float: 4, Decimals: 5, Prefix: 6, Suffix: 7, Accent: 8}, false
	}
	return m, true
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "x":
		return true, true
	case "", "false", "no", "n", "0", "-":
		return false, true
	default:
		return false, false
	}
}

// getCell returns the trimmed cell at idx, or "" when out of range.
func getCell(row []string, idx int) string {
	return strings.TrimSpace(rawCell(row, idx))
}

// rawCell returns the untrimmed cell; prefixes and suffixes keep spaces.
func rawCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseNumber(row []string, idx int, rowLabel, column string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, column)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, column, s)
	}
	return v, ""
}

// parseRow extracts a preset from a row. It returns the preset, an error
// message and a warning message.
func parseRow(row []string, m ColumnMapping, rowLabel string, count int) (model.SliderPreset, string, string) {
	name := getCell(row, m.Name)
	if name == "" {
		name = fmt.Sprintf("Slider %d", count+1)
	}
	p := model.NewSliderPreset(name)

	var msg string
	if p.Minimum, msg = parseNumber(row, m.Minimum, rowLabel, "minimum"); msg != "" {
		return model.SliderPreset{}, msg, ""
	}
	if p.Maximum, msg = parseNumber(row, m.Maximum, rowLabel, "maximum"); msg != "" {
		return model.SliderPreset{}, msg, ""
	}
	if p.Minimum >= p.Maximum {
		return model.SliderPreset{}, fmt.Sprintf("%s: Minimum must be less than maximum", rowLabel), ""
	}

	p.Value = p.Minimum
	if getCell(row, m.Value) != "" {
		if p.Value, msg = parseNumber(row, m.Value, rowLabel, "value"); msg != "" {
			return model.SliderPreset{}, msg, ""
		}
	}

	if s := getCell(row, m.Decimals); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d < 0 {
			return model.SliderPreset{}, fmt.Sprintf("%s: Invalid decimals '%s'", rowLabel, s), ""
		}
		p.Decimals = d
	}

	if s := getCell(row, m.Accent); s != "" {
		c, err := model.ParseHexColor(s)
		if err != nil {
			return model.SliderPreset{}, fmt.Sprintf("%s: Invalid accent color '%s'", rowLabel, s), ""
		}
		p.AccentColor = model.HexColor(c)
	}

	p.Prefix = rawCell(row, m.Prefix)
	p.Suffix = rawCell(row, m.Suffix)

	var warning string
	floatStr := getCell(row, m.Float)
	if f, ok := parseBool(floatStr); ok {
		p.Float = f
	} else {
		warning = fmt.Sprintf("%s: Unknown float flag '%s', defaulting to integer", rowLabel, floatStr)
	}

	return p, "", warning
}

func isEmptyRow(row []string) bool {
	return strings.TrimSpace(strings.Join(row, "")) == ""
}

// missingRequired names the required roles a header did not provide.
func (m ColumnMapping) missingRequired() []string {
	var missing []string
	if m.Minimum < 0 {
		missing = append(missing, "Minimum")
	}
	if m.Maximum < 0 {
		missing = append(missing, "Maximum")
	}
	return missing
}

// looksLikeHeader reports whether an unrecognised first row is still a
// header, judged by a non-numeric minimum cell.
func looksLikeHeader(row []string) bool {
	if len(row) < 3 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	return err != nil
}

func failed(format string, args ...any) ImportResult {
	return ImportResult{Errors: []string{fmt.Sprintf(format, args...)}}
}

var delimiterNames = map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}

// ImportCSV imports presets from a CSV file with comma, semicolon, tab
// or pipe delimiters.
func ImportCSV(path string) ImportResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return failed("open %s: %v", filepath.Base(path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return failed("%s is empty", filepath.Base(path))
	}

	delim := DetectCSVDelimiter(data)
	var warnings []string
	if name, ok := delimiterNames[delim]; ok {
		warnings = append(warnings, "Using "+name+" as delimiter")
	}
	return importCSV(bytes.NewReader(data), delim, warnings)
}

// ImportCSVFromReader imports presets from CSV data with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importCSV(reader, delimiter, nil)
}

func importCSV(r io.Reader, delim rune, warnings []string) ImportResult {
	records, err := readRecords(r, delim)
	if err != nil {
		return failed("read CSV: %v", err)
	}
	return importFromRows(records, "Line", warnings)
}

// ImportExcel imports presets from the first sheet of an XLSX workbook.
func ImportExcel(path string) ImportResult {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return failed("open %s: %v", filepath.Base(path), err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return failed("%s has no sheets", filepath.Base(path))
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return failed("read sheet %s: %v", sheet, err)
	}
	return importFromRows(rows, "Row", nil)
}

// importFromRows turns table rows into presets. rowPrefix labels row
// numbers in messages ("Line" or "Row").
func importFromRows(rows [][]string, rowPrefix string, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no rows to import")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	if missing := mapping.missingRequired(); hasHeader && len(missing) > 0 {
		result.Errors = append(result.Errors, "header lacks required columns: "+strings.Join(missing, ", "))
		return result
	}

	skip := 0
	if hasHeader || looksLikeHeader(rows[0]) {
		skip = 1
	}
	for i := skip; i < len(rows); i++ {
		if isEmptyRow(rows[i]) {
			continue
		}
		label := fmt.Sprintf("%s %d", rowPrefix, i+1)
		preset, errMsg, warning := parseRow(rows[i], mapping, label, len(result.Presets))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		result.Presets = append(result.Presets, preset)
	}
	return result
}
