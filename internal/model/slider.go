package model

import (
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Adaptive step sizes as a fraction of the value range, used while the
// configured step is zero.
const (
	adaptiveSingleStep = 0.01
	adaptivePageStep   = 0.05
)

// PointerAction is the phase of a pointer event.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerMove
	PointerRelease
)

// PointerButton identifies the button behind a pointer event.
type PointerButton int

const (
	ButtonNone PointerButton = iota
	ButtonPrimary
	ButtonSecondary
	ButtonTertiary
)

// Key is a host-independent key identity.
type Key int

const (
	KeyUnknown Key = iota
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
)

func (k Key) String() string {
	switch k {
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	default:
		return "Unknown"
	}
}

type listener struct {
	id string
	fn func(Reading)
}

// Slider holds the complete state of one slider control and implements
// all of its behaviour except painting, which hosts do from the Frame
// returned by Render.
//
// A Slider is not safe for concurrent use; hosts drive it from their UI
// goroutine.
type Slider struct {
	minimum float64
	maximum float64
	value   float64

	isFloat            bool
	decimals           int
	singleStep         float64
	pageStep           float64
	thousandsSeparator string
	decimalSeparator   string
	prefix             string
	suffix             string
	showingValue       bool

	textColor       color.NRGBA
	backgroundColor color.NRGBA
	accentColor     color.NRGBA
	borderColor     color.NRGBA
	borderRadius    int
	font            Font

	keyboardInputEnabled   bool
	mouseWheelInputEnabled bool

	// Widget size in pixels as last reported by the host.
	width  float64
	height float64

	// Cached marker position; markerValid is false whenever size or
	// value changed since it was computed.
	markerX     int
	markerValid bool

	dragging    bool
	lastReading Reading
	listeners   []listener

	forceRepaint  bool
	painted       bool
	paintedValue  float64
	paintedWidth  float64
	paintedHeight float64
	frame         Frame
}

// NewSlider creates a slider with the default range [0, 10], integer
// mode and the stock style.
func NewSlider() *Slider {
	s := &Slider{
		minimum:                0,
		maximum:                10,
		decimals:               1,
		decimalSeparator:       ".",
		showingValue:           true,
		textColor:              DefaultTextColor,
		backgroundColor:        DefaultBackgroundColor,
		accentColor:            DefaultAccentColor,
		borderColor:            DefaultBorderColor,
		font:                   DefaultFont(),
		keyboardInputEnabled:   true,
		mouseWheelInputEnabled: true,
	}
	s.lastReading = s.Value()
	return s
}

// ─── Value ─────────────────────────────────────────────────

// Value returns the reported value.
func (s *Slider) Value() Reading {
	return NewReading(s.value, s.isFloat, s.decimals)
}

// RawValue returns the unrounded internal value.
func (s *Slider) RawValue() float64 {
	return s.value
}

// SetValue stores v clamped to [minimum, maximum]. NaN is ignored.
func (s *Slider) SetValue(v float64) {
	if math.IsNaN(v) {
		return
	}
	s.value = s.clamp(v)
	s.markerValid = false
	s.notify()
}

// ValueFormatted returns the text shown on the slider, including prefix
// and suffix.
func (s *Slider) ValueFormatted() string {
	return s.prefix + FormatNumber(s.value, s.isFloat, s.decimals, s.thousandsSeparator, s.decimalSeparator) + s.suffix
}

// ValuePosition returns the marker position in pixels. If the cached
// position was invalidated it is computed from the value.
func (s *Slider) ValuePosition() int {
	if s.markerValid {
		return s.markerX
	}
	return s.ValueToPosition(s.value)
}

// OnValueChanged registers fn to be called synchronously whenever the
// reported value changes. It returns an id for RemoveValueChangedListener.
func (s *Slider) OnValueChanged(fn func(Reading)) string {
	id := uuid.NewString()
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return id
}

// RemoveValueChangedListener unregisters a listener. It reports whether
// the id was known.
func (s *Slider) RemoveValueChangedListener(id string) bool {
	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Slider) notify() {
	r := s.Value()
	if r == s.lastReading {
		return
	}
	s.lastReading = r
	listeners := append([]listener(nil), s.listeners...)
	for _, l := range listeners {
		l.fn(r)
	}
}

// ─── Range ─────────────────────────────────────────────────

func (s *Slider) Minimum() float64 { return s.minimum }
func (s *Slider) Maximum() float64 { return s.maximum }

// Range returns the minimum and maximum.
func (s *Slider) Range() (float64, float64) {
	return s.minimum, s.maximum
}

// SetMinimum changes the lower bound and re-clamps the value.
func (s *Slider) SetMinimum(minimum float64) {
	s.minimum = minimum
	s.forceRepaint = true
	s.SetValue(s.value)
}

// SetMaximum changes the upper bound and re-clamps the value.
func (s *Slider) SetMaximum(maximum float64) {
	s.maximum = maximum
	s.forceRepaint = true
	s.SetValue(s.value)
}

// SetRange changes both bounds and re-clamps the value. An inverted or
// empty range is accepted here and reported by the next Render.
func (s *Slider) SetRange(minimum, maximum float64) {
	s.minimum = minimum
	s.maximum = maximum
	s.forceRepaint = true
	s.SetValue(s.value)
}

func (s *Slider) clamp(v float64) float64 {
	return min(s.maximum, max(s.minimum, v))
}

// valueRange is the distance between minimum and maximum.
func (s *Slider) valueRange() float64 {
	if s.minimum < 0 {
		return s.maximum + math.Abs(s.minimum)
	}
	return s.maximum - s.minimum
}

// ─── Position mapping ──────────────────────────────────────

// SetSize records the host widget size. A changed size invalidates the
// cached marker position.
func (s *Slider) SetSize(width, height float64) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.markerValid = false
}

// Size returns the last recorded widget size.
func (s *Slider) Size() (float64, float64) {
	return s.width, s.height
}

// PositionToValue converts a pointer x offset into a clamped value. The
// offset is clamped to [0, width] first. With no width the current value
// is returned unchanged.
func (s *Slider) PositionToValue(x float64) float64 {
	if s.width <= 0 {
		return s.value
	}
	x = min(s.width, max(0, x))
	v := x / s.width * s.valueRange()
	if s.minimum != 0 {
		v += s.minimum
	}
	return s.clamp(v)
}

// ValueToPosition converts a value into a marker x offset, rounded down
// to whole pixels.
func (s *Slider) ValueToPosition(v float64) int {
	r := s.valueRange()
	if s.width <= 0 || r <= 0 {
		return 0
	}
	var x float64
	switch {
	case s.minimum < 0:
		x = (v + math.Abs(s.minimum)) * (s.width / r)
	case s.minimum > 0:
		x = (v - s.minimum) * (s.width / r)
	default:
		x = v * (s.width / r)
	}
	return int(math.Floor(x))
}

// ─── Input ─────────────────────────────────────────────────

// HandlePointer applies a pointer event at local x. Only the primary
// button moves the value; moves count only while it is held. It reports
// whether the event was consumed.
func (s *Slider) HandlePointer(action PointerAction, button PointerButton, x float64) bool {
	switch action {
	case PointerPress:
		if button != ButtonPrimary {
			return false
		}
		s.dragging = true
	case PointerMove:
		if !s.dragging {
			return false
		}
	case PointerRelease:
		if button != ButtonPrimary {
			return false
		}
		s.dragging = false
	default:
		return false
	}
	if s.width <= 0 {
		return false
	}
	s.SetValue(s.PositionToValue(x))
	return true
}

// Dragging reports whether a primary-button drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// CancelDrag ends a drag without applying a final position.
func (s *Slider) CancelDrag() {
	s.dragging = false
}

// HandleWheel applies a vertical wheel delta: positive scrolls up and
// increments by the single step, negative decrements. A zero delta is
// ignored.
func (s *Slider) HandleWheel(dy float64) bool {
	if !s.mouseWheelInputEnabled || dy == 0 {
		return false
	}
	if dy > 0 {
		s.SetValue(s.value + s.effectiveSingleStep())
	} else {
		s.SetValue(s.value - s.effectiveSingleStep())
	}
	return true
}

// HandleKey applies a key press. It reports whether the key was used.
func (s *Slider) HandleKey(k Key) bool {
	if !s.keyboardInputEnabled {
		return false
	}
	switch k {
	case KeyHome:
		s.SetValue(s.minimum)
	case KeyEnd:
		s.SetValue(s.maximum)
	case KeyRight, KeyUp:
		s.SetValue(s.value + s.effectiveSingleStep())
	case KeyLeft, KeyDown:
		s.SetValue(s.value - s.effectiveSingleStep())
	case KeyPageUp:
		s.SetValue(s.value + s.effectivePageStep())
	case KeyPageDown:
		s.SetValue(s.value - s.effectivePageStep())
	default:
		return false
	}
	return true
}

func (s *Slider) effectiveSingleStep() float64 {
	if s.singleStep > 0 {
		return s.singleStep
	}
	return s.valueRange() * adaptiveSingleStep
}

func (s *Slider) effectivePageStep() float64 {
	if s.pageStep > 0 {
		return s.pageStep
	}
	return s.valueRange() * adaptivePageStep
}

// ─── Number options ────────────────────────────────────────

func (s *Slider) IsFloat() bool { return s.isFloat }

// SetFloat switches between integer and float mode.
func (s *Slider) SetFloat(on bool) {
	s.isFloat = on
	s.forceRepaint = true
	s.lastReading = s.Value()
}

func (s *Slider) Decimals() int { return s.decimals }

// SetDecimals sets the fractional digits shown in float mode. Negative
// values are treated as zero.
func (s *Slider) SetDecimals(decimals int) {
	s.decimals = max(decimals, 0)
	s.forceRepaint = true
	s.lastReading = s.Value()
}

func (s *Slider) SingleStep() float64        { return s.singleStep }
func (s *Slider) SetSingleStep(step float64) { s.singleStep = step }
func (s *Slider) PageStep() float64          { return s.pageStep }
func (s *Slider) SetPageStep(step float64)   { s.pageStep = step }

func (s *Slider) ThousandsSeparator() string { return s.thousandsSeparator }

func (s *Slider) SetThousandsSeparator(sep string) {
	s.thousandsSeparator = sep
	s.forceRepaint = true
}

func (s *Slider) DecimalSeparator() string { return s.decimalSeparator }

func (s *Slider) SetDecimalSeparator(sep string) {
	s.decimalSeparator = sep
	s.forceRepaint = true
}

func (s *Slider) Prefix() string { return s.prefix }

func (s *Slider) SetPrefix(prefix string) {
	s.prefix = prefix
	s.forceRepaint = true
}

func (s *Slider) Suffix() string { return s.suffix }

func (s *Slider) SetSuffix(suffix string) {
	s.suffix = suffix
	s.forceRepaint = true
}

func (s *Slider) IsShowingValue() bool { return s.showingValue }

// ShowValue toggles the value text.
func (s *Slider) ShowValue(on bool) {
	s.showingValue = on
	s.forceRepaint = true
}

// ─── Style ─────────────────────────────────────────────────

func (s *Slider) TextColor() color.NRGBA { return s.textColor }

func (s *Slider) SetTextColor(c color.NRGBA) {
	s.textColor = c
	s.forceRepaint = true
}

func (s *Slider) BackgroundColor() color.NRGBA { return s.backgroundColor }

func (s *Slider) SetBackgroundColor(c color.NRGBA) {
	s.backgroundColor = c
	s.forceRepaint = true
}

func (s *Slider) AccentColor() color.NRGBA { return s.accentColor }

func (s *Slider) SetAccentColor(c color.NRGBA) {
	s.accentColor = c
	s.forceRepaint = true
}

func (s *Slider) BorderColor() color.NRGBA { return s.borderColor }

func (s *Slider) SetBorderColor(c color.NRGBA) {
	s.borderColor = c
	s.forceRepaint = true
}

func (s *Slider) BorderRadius() int { return s.borderRadius }

// SetBorderRadius sets the corner radius in pixels; negative values are
// treated as zero.
func (s *Slider) SetBorderRadius(radius int) {
	s.borderRadius = max(radius, 0)
	s.forceRepaint = true
}

func (s *Slider) Font() Font { return s.font }

func (s *Slider) SetFont(f Font) {
	s.font = f
	s.forceRepaint = true
}

func (s *Slider) IsKeyboardInputEnabled() bool      { return s.keyboardInputEnabled }
func (s *Slider) SetKeyboardInputEnabled(on bool)   { s.keyboardInputEnabled = on }
func (s *Slider) IsMouseWheelInputEnabled() bool    { return s.mouseWheelInputEnabled }
func (s *Slider) SetMouseWheelInputEnabled(on bool) { s.mouseWheelInputEnabled = on }
