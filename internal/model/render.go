package model

import (
	"image/color"
	"math"
	"unicode/utf8"
)

const (
	// textMargin keeps the value text off the marker and the right edge.
	textMargin = 5
	// flushInset shortens the bar when it touches the right edge so the
	// rounded end is not clipped by the border.
	flushInset = 2
)

// TextMeasurer reports the advance width and tight ink height of text
// rendered in a font. Hosts implement it over their font engine.
type TextMeasurer interface {
	MeasureText(text string, font Font) (width, height float64)
}

// MeasureFunc adapts a plain function to TextMeasurer.
type MeasureFunc func(text string, font Font) (width, height float64)

func (f MeasureFunc) MeasureText(text string, font Font) (float64, float64) {
	return f(text, font)
}

// ApproxMeasurer estimates metrics from the font size alone. It is used
// when a host passes no measurer.
type ApproxMeasurer struct{}

// averageAdvance is a typical digit advance relative to the em size.
const averageAdvance = 0.6

func (ApproxMeasurer) MeasureText(text string, font Font) (float64, float64) {
	return float64(utf8.RuneCountInString(text)) * font.Size * averageAdvance, font.DigitHeight()
}

// Rect is an axis-aligned rectangle in widget pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// Bar is the filled, rounded rectangle from the left edge to the marker.
type Bar struct {
	Rect
	Radius float64
	Color  color.NRGBA
}

// Label is the value text. X is the left edge and Baseline the y offset
// of the text baseline.
type Label struct {
	Text     string
	X        float64
	Baseline float64
	Width    float64
	Height   float64
	Color    color.NRGBA
	Font     Font
}

// Frame is the complete set of draw instructions for one render.
type Frame struct {
	Width        float64
	Height       float64
	Background   color.NRGBA
	BorderColor  color.NRGBA
	BorderRadius float64
	MarkerX      int
	Bar          *Bar   // nil while the marker sits at 0
	Label        *Label // nil when the value is hidden
}

// Render produces draw instructions for a widget of the given size.
//
// It fails with an *InvalidRangeError when minimum >= maximum. When
// neither the size nor the value changed since the previous render and
// no style change forced a repaint, it returns the previous frame with
// changed set to false so the host can skip the redraw. A nil measurer
// falls back to ApproxMeasurer.
func (s *Slider) Render(width, height float64, m TextMeasurer) (frame Frame, changed bool, err error) {
	if s.minimum >= s.maximum {
		return Frame{}, false, &InvalidRangeError{Minimum: s.minimum, Maximum: s.maximum}
	}
	if m == nil {
		m = ApproxMeasurer{}
	}
	width, height = max(width, 0), max(height, 0)

	resized := !s.painted || width != s.paintedWidth || height != s.paintedHeight
	valueChanged := !s.painted || s.value != s.paintedValue
	if !resized && !valueChanged && !s.forceRepaint {
		return s.frame, false, nil
	}

	s.forceRepaint = false
	s.painted = true
	s.paintedValue = s.value
	s.paintedWidth, s.paintedHeight = width, height
	s.SetSize(width, height)
	if resized {
		s.markerValid = false
	}
	if !s.markerValid {
		s.markerX = s.ValueToPosition(s.value)
		s.markerValid = true
	}

	f := Frame{
		Width:        width,
		Height:       height,
		Background:   s.backgroundColor,
		BorderColor:  s.borderColor,
		BorderRadius: float64(s.borderRadius),
		MarkerX:      s.markerX,
	}

	if s.markerX > 0 {
		w := float64(s.markerX)
		if w+flushInset >= width {
			w -= flushInset
		}
		f.Bar = &Bar{
			Rect:   Rect{X: 0, Y: 1, Width: max(w, 0), Height: max(height-2, 0)},
			Radius: float64(s.borderRadius),
			Color:  s.accentColor,
		}
	}

	if s.showingValue {
		text := s.ValueFormatted()
		tw, th := m.MeasureText(text, s.font)

		x := float64(s.markerX + textMargin)
		if x+tw >= width-textMargin {
			x = width - tw - textMargin
		}
		if x == 0 {
			x = 1
		} else {
			x = math.Trunc(x)
		}

		f.Label = &Label{
			Text:     text,
			X:        x,
			Baseline: math.Trunc(height - (height-th)/2),
			Width:    tw,
			Height:   th,
			Color:    s.textColor,
			Font:     s.font,
		}
	}

	s.frame = f
	return f, true, nil
}

// ForceRepaint makes the next Render produce a fresh frame.
func (s *Slider) ForceRepaint() {
	s.forceRepaint = true
}
