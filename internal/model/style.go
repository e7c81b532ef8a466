package model

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Font weights, matching the CSS numeric scale.
const (
	WeightNormal = 400
	WeightBold   = 700
)

// digitHeightRatio is the height of a lining digit relative to the em size.
// Formatted values are made of digits and separators, so it stands in for
// the tight bounding box height when a host cannot measure glyph ink.
const digitHeightRatio = 0.72

// Font describes the typeface used for text metrics.
type Font struct {
	Family string  `json:"family" yaml:"family"`
	Size   float64 `json:"size" yaml:"size"` // points
	Weight int     `json:"weight" yaml:"weight"`
}

// DefaultFont returns the stock slider font (Arial 9pt bold).
func DefaultFont() Font {
	return Font{Family: "Arial", Size: 9, Weight: WeightBold}
}

// Bold reports whether the weight is semi-bold or heavier.
func (f Font) Bold() bool {
	return f.Weight >= 600
}

// DigitHeight approximates the tight height of a rendered number.
func (f Font) DigitHeight() float64 {
	return f.Size * digitHeightRatio
}

func (f Font) String() string {
	return fmt.Sprintf("%s %gpt %d", f.Family, f.Size, f.Weight)
}

// Default colors.
var (
	DefaultTextColor       = MustParseHexColor("#000000")
	DefaultBackgroundColor = MustParseHexColor("#D6D6D6")
	DefaultAccentColor     = MustParseHexColor("#0078D7")
	DefaultBorderColor     = MustParseHexColor("#D1CFD3")
)

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
func MustParseHexColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor formats c as "#RRGGBB", dropping alpha.
func HexColor(c color.NRGBA) string {
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	return strings.ToUpper(cf.Hex())
}
