package widgets

import (
	"strconv"

	"github.com/go-drift/tk/pkg/widget"
)

// Slider selects a value in [Min, Max] by dragging a thumb.
type Slider struct {
	*widget.Widget

	Min, Max int
	Step     int
	Value    int
	Vertical bool
}

// ProgressBar shows a percentage.
type ProgressBar struct {
	*widget.Widget

	// Value is in [0, 100].
	Value    int
	Vertical bool
	ShowText bool
}

// Dragger is an invisible handle constrained to a rectangle.
type Dragger struct {
	*widget.Widget

	XMin, YMin, XMax, YMax int16
}

var (
	sliderVT      = widget.VTable{TypeName: TypeSlider, OnPaintSelf: paintSlider}
	progressBarVT = widget.VTable{TypeName: TypeProgressBar, OnPaintSelf: paintProgressBar}
	draggerVT     = widget.VTable{TypeName: TypeDragger, OnPaintSelf: func(*widget.Widget, widget.Canvas) error { return nil }}
)

func init() {
	sliderVT.Create = SliderCreate
	progressBarVT.Create = ProgressBarCreate
	draggerVT.Create = DraggerCreate
}

// SliderCreate creates a horizontal slider over [0, 100] with step 1.
func SliderCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	s := &Slider{Max: 100, Step: 1}
	s.Widget = widget.New(&sliderVT, s, parent, x, y, w, h)
	return s.Widget
}

// SetValue sets the value, clamped to the range and snapped to Step.
func (s *Slider) SetValue(v int) {
	v = clamp(v, s.Min, s.Max)
	if s.Step > 1 {
		v = s.Min + (v-s.Min)/s.Step*s.Step
	}
	s.Value = v
}

// SetRange sets the range and re-clamps the value.
func (s *Slider) SetRange(lo, hi int) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.Min, s.Max = lo, hi
	s.SetValue(s.Value)
}

func (s *Slider) fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}

func paintSlider(w *widget.Widget, c widget.Canvas) error {
	s, ok := As[*Slider](w)
	if !ok {
		return nil
	}
	st := widget.StyleFor(w.State())
	width, height := int(w.W), int(w.H)
	if s.Vertical {
		c.FillRect(width/2-1, 0, 2, height, st.Border)
		pos := height - int(s.fraction()*float64(height))
		c.FillRect(0, pos-width/2, width, width, st.Text)
		return nil
	}
	c.FillRect(0, height/2-1, width, 2, st.Border)
	pos := int(s.fraction() * float64(width))
	c.FillRect(pos-height/2, 0, height, height, st.Text)
	return nil
}

// ProgressBarCreate creates an empty horizontal progress bar.
func ProgressBarCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	p := &ProgressBar{}
	p.Widget = widget.New(&progressBarVT, p, parent, x, y, w, h)
	return p.Widget
}

// SetValue sets the percentage, clamped to [0, 100].
func (p *ProgressBar) SetValue(v int) {
	p.Value = clamp(v, 0, 100)
}

func paintProgressBar(w *widget.Widget, c widget.Canvas) error {
	p, ok := As[*ProgressBar](w)
	if !ok {
		return nil
	}
	st := widget.StyleFor(w.State())
	width, height := int(w.W), int(w.H)
	c.FillRect(0, 0, width, height, st.Background)
	if p.Vertical {
		filled := height * p.Value / 100
		c.FillRect(0, height-filled, width, filled, st.Text)
	} else {
		c.FillRect(0, 0, width*p.Value/100, height, st.Text)
	}
	if p.ShowText {
		text := strconv.Itoa(p.Value) + "%"
		tw, th := widget.MeasureText(text)
		c.DrawText(text, (width-tw)/2, (height-th)/2, st.Border)
	}
	return nil
}

// DraggerCreate creates a dragger confined to its initial position.
func DraggerCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	d := &Dragger{XMin: x, XMax: x, YMin: y, YMax: y}
	d.Widget = widget.New(&draggerVT, d, parent, x, y, w, h)
	return d.Widget
}

// SetRange sets the rectangle the dragger may move within.
func (d *Dragger) SetRange(xmin, ymin, xmax, ymax int16) {
	d.XMin, d.YMin, d.XMax, d.YMax = xmin, ymin, xmax, ymax
}

// MoveTo moves the dragger, clamped to its range.
func (d *Dragger) MoveTo(x, y int16) {
	d.X = int16(clamp(int(x), int(d.XMin), int(d.XMax)))
	d.Y = int16(clamp(int(y), int(d.YMin), int(d.YMax)))
}
