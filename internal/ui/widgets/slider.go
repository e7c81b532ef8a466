package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/advslider/internal/logger"
	"github.com/piwi3910/advslider/internal/model"
)

// pointsToUnits converts font points to Fyne's 96-dpi based units.
const pointsToUnits = 96.0 / 72.0

// FyneMeasurer measures text with Fyne's font engine. Height is the
// font's digit height, since Fyne only reports line boxes.
type FyneMeasurer struct{}

func (FyneMeasurer) MeasureText(text string, f model.Font) (float64, float64) {
	size := fyne.MeasureText(text, float32(f.Size*pointsToUnits), fyne.TextStyle{Bold: f.Bold()})
	return float64(size.Width), f.DigitHeight() * pointsToUnits
}

var (
	_ fyne.Widget       = (*AdvancedSlider)(nil)
	_ fyne.Draggable    = (*AdvancedSlider)(nil)
	_ fyne.Focusable    = (*AdvancedSlider)(nil)
	_ fyne.Scrollable   = (*AdvancedSlider)(nil)
	_ fyne.Tappable     = (*AdvancedSlider)(nil)
	_ desktop.Mouseable = (*AdvancedSlider)(nil)
)

// AdvancedSlider is a Fyne widget hosting a model.Slider: a flat bar
// filled up to the value with the formatted value drawn beside it.
type AdvancedSlider struct {
	widget.BaseWidget

	slider   *model.Slider
	measurer model.TextMeasurer
	log      *logger.Logger

	dragX float32
}

// NewAdvancedSlider wraps s. A nil s creates a default slider.
func NewAdvancedSlider(s *model.Slider, log *logger.Logger) *AdvancedSlider {
	if s == nil {
		s = model.NewSlider()
	}
	as := &AdvancedSlider{
		slider:   s,
		measurer: FyneMeasurer{},
		log:      log,
	}
	as.ExtendBaseWidget(as)
	return as
}

// Slider returns the hosted slider. Mutate it through Apply so the
// widget repaints.
func (as *AdvancedSlider) Slider() *model.Slider {
	return as.slider
}

// Apply runs fn against the hosted slider and refreshes the widget.
func (as *AdvancedSlider) Apply(fn func(*model.Slider)) {
	fn(as.slider)
	as.Refresh()
}

// SetValue is shorthand for Apply with Slider.SetValue.
func (as *AdvancedSlider) SetValue(v float64) {
	as.Apply(func(s *model.Slider) { s.SetValue(v) })
}

// OnValueChanged registers fn on the hosted slider.
func (as *AdvancedSlider) OnValueChanged(fn func(model.Reading)) string {
	return as.slider.OnValueChanged(fn)
}

// SetMeasurer replaces the text measurer, mainly for tests.
func (as *AdvancedSlider) SetMeasurer(m model.TextMeasurer) {
	as.measurer = m
	as.slider.ForceRepaint()
	as.Refresh()
}

func (as *AdvancedSlider) CreateRenderer() fyne.WidgetRenderer {
	return newAdvancedSliderRenderer(as)
}

// syncSize hands the current widget size to the slider before input is
// mapped to values.
func (as *AdvancedSlider) syncSize() {
	size := as.Size()
	as.slider.SetSize(float64(size.Width), float64(size.Height))
}

func (as *AdvancedSlider) pointer(action model.PointerAction, button model.PointerButton, x float32) {
	as.syncSize()
	if as.slider.HandlePointer(action, button, float64(x)) {
		as.Refresh()
	}
}

// ─── Input ─────────────────────────────────────────────────

func (as *AdvancedSlider) MouseDown(ev *desktop.MouseEvent) {
	as.dragX = ev.Position.X
	as.pointer(model.PointerPress, mouseButton(ev.Button), ev.Position.X)
}

func (as *AdvancedSlider) MouseUp(ev *desktop.MouseEvent) {
	as.pointer(model.PointerRelease, mouseButton(ev.Button), ev.Position.X)
}

func (as *AdvancedSlider) Dragged(ev *fyne.DragEvent) {
	as.dragX = ev.Position.X
	as.pointer(model.PointerMove, model.ButtonPrimary, ev.Position.X)
}

// DragEnd finishes a drag that ended without a MouseUp on the widget.
func (as *AdvancedSlider) DragEnd() {
	if as.slider.Dragging() {
		as.pointer(model.PointerRelease, model.ButtonPrimary, as.dragX)
	}
}

func (as *AdvancedSlider) Scrolled(ev *fyne.ScrollEvent) {
	if as.slider.HandleWheel(float64(ev.Scrolled.DY)) {
		as.Refresh()
	}
}

// Tapped takes keyboard focus on click.
func (as *AdvancedSlider) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(as); c != nil {
		c.Focus(as)
	}
}

func (as *AdvancedSlider) FocusGained() {}

func (as *AdvancedSlider) FocusLost() {
	as.slider.CancelDrag()
}

func (as *AdvancedSlider) TypedRune(rune) {}

func (as *AdvancedSlider) TypedKey(ev *fyne.KeyEvent) {
	if as.slider.HandleKey(keyFor(ev.Name)) {
		as.Refresh()
	}
}

func mouseButton(b desktop.MouseButton) model.PointerButton {
	switch b {
	case desktop.MouseButtonPrimary:
		return model.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return model.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return model.ButtonTertiary
	default:
		return model.ButtonNone
	}
}

func keyFor(name fyne.KeyName) model.Key {
	switch name {
	case fyne.KeyHome:
		return model.KeyHome
	case fyne.KeyEnd:
		return model.KeyEnd
	case fyne.KeyLeft:
		return model.KeyLeft
	case fyne.KeyRight:
		return model.KeyRight
	case fyne.KeyUp:
		return model.KeyUp
	case fyne.KeyDown:
		return model.KeyDown
	case fyne.KeyPageUp:
		return model.KeyPageUp
	case fyne.KeyPageDown:
		return model.KeyPageDown
	default:
		return model.KeyUnknown
	}
}

// ─── Renderer ──────────────────────────────────────────────

type advancedSliderRenderer struct {
	as *AdvancedSlider

	background *canvas.Rectangle
	bar        *canvas.Rectangle
	text       *canvas.Text
	objects    []fyne.CanvasObject
}

func newAdvancedSliderRenderer(as *AdvancedSlider) *advancedSliderRenderer {
	r := &advancedSliderRenderer{
		as:         as,
		background: canvas.NewRectangle(color.Transparent),
		bar:        canvas.NewRectangle(color.Transparent),
		text:       canvas.NewText("", color.Black),
	}
	r.background.StrokeWidth = 1
	r.bar.Hide()
	r.text.Hide()
	r.objects = []fyne.CanvasObject{r.background, r.bar, r.text}
	return r
}

// paint renders the slider at size and updates the canvas objects. A
// skipped or failed render leaves the previous frame on screen.
func (r *advancedSliderRenderer) paint(size fyne.Size) {
	frame, changed, err := r.as.slider.Render(float64(size.Width), float64(size.Height), r.as.measurer)
	if err != nil {
		r.as.log.Error(err, "slider render failed, keeping last frame")
		return
	}
	if !changed {
		return
	}

	r.background.FillColor = frame.Background
	r.background.StrokeColor = frame.BorderColor
	r.background.CornerRadius = float32(frame.BorderRadius)
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	if b := frame.Bar; b != nil {
		r.bar.FillColor = b.Color
		r.bar.CornerRadius = float32(b.Radius)
		r.bar.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
		r.bar.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		r.bar.Show()
	} else {
		r.bar.Hide()
	}

	if l := frame.Label; l != nil {
		r.text.Text = l.Text
		r.text.Color = l.Color
		r.text.TextSize = float32(l.Font.Size * pointsToUnits)
		r.text.TextStyle = fyne.TextStyle{Bold: l.Font.Bold()}
		box := r.text.MinSize()
		// Center the line box on the digit box whose baseline is l.Baseline.
		top := float32(l.Baseline) - (box.Height+float32(l.Height))/2
		r.text.Move(fyne.NewPos(float32(l.X), top))
		r.text.Resize(box)
		r.text.Show()
	} else {
		r.text.Hide()
	}

	r.as.log.Debugf("slider repainted at %.0fx%.0f, marker %d", frame.Width, frame.Height, frame.MarkerX)
	for _, o := range r.objects {
		canvas.Refresh(o)
	}
}

func (r *advancedSliderRenderer) Layout(size fyne.Size) { r.paint(size) }
func (r *advancedSliderRenderer) Refresh()              { r.paint(r.as.Size()) }
func (r *advancedSliderRenderer) Destroy()              {}

func (r *advancedSliderRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *advancedSliderRenderer) MinSize() fyne.Size {
	font := r.as.slider.Font()
	h := float32(font.Size*pointsToUnits) + 8
	return fyne.NewSize(120, max(h, 18))
}
