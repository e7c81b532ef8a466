package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupPrinter renders numbers with "," as group mark and "." as
// fractional mark. Separators are swapped in afterwards, independent of
// the user's locale.
var groupPrinter = message.NewPrinter(language.English)

// FormatNumber renders value the way the slider displays it.
//
// In float mode the value is grouped and shown with exactly decimals
// fractional digits; in integer mode it is truncated and never shows a
// decimal part. Both separator substitutions happen in one pass, so a
// thousands separator of "." or a decimal separator of "," cannot be
// mistaken for the other mark.
func FormatNumber(value float64, isFloat bool, decimals int, thousandsSep, decimalSep string) string {
	if !isFloat {
		s := groupPrinter.Sprintf("%.0f", truncate(value))
		return strings.ReplaceAll(s, ",", thousandsSep)
	}
	if decimals < 0 {
		decimals = 0
	}
	s := groupPrinter.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
	return strings.NewReplacer(",", thousandsSep, ".", decimalSep).Replace(s)
}

// truncate drops the fractional part of v. It returns +0 for -0 so no
// "-0" is ever displayed.
func truncate(v float64) float64 {
	t := math.Trunc(v)
	if t == 0 {
		return 0
	}
	return t
}

// roundTo rounds v to the given number of decimal places using the same
// rounding as the formatted output.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		decimals = 0
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Reading is a reported slider value: truncated in integer mode, rounded
// to the configured decimals in float mode.
type Reading struct {
	value   float64
	isFloat bool
}

// NewReading builds a Reading from a raw value and mode.
func NewReading(v float64, isFloat bool, decimals int) Reading {
	if isFloat {
		return Reading{value: roundTo(v, decimals), isFloat: true}
	}
	return Reading{value: truncate(v)}
}

// IsFloat reports whether the reading came from a float slider.
func (r Reading) IsFloat() bool { return r.isFloat }

// Int returns the reading as an integer, saturating at the int limits.
func (r Reading) Int() int {
	switch {
	case r.value >= float64(math.MaxInt):
		return math.MaxInt
	case r.value <= float64(math.MinInt):
		return math.MinInt
	}
	return int(r.value)
}

// Float returns the reading as a float64.
func (r Reading) Float() float64 { return r.value }

func (r Reading) String() string {
	if r.isFloat {
		return strconv.FormatFloat(r.value, 'f', -1, 64)
	}
	return strconv.FormatFloat(r.value, 'f', 0, 64)
}
