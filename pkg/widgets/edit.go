package widgets

import (
	"strconv"
	"unicode/utf8"

	"github.com/go-drift/tk/pkg/widget"
)

// InputType restricts what an edit accepts.
type InputType int

const (
	InputText InputType = iota
	InputInt
	InputFloat
	InputPassword
)

// Edit is a single-line text input.
type Edit struct {
	*widget.Widget

	InputType InputType
	Readonly  bool
	// Tips is shown while the edit is empty.
	Tips string
	// MaxLength bounds the text length in runes for text inputs; 0 is
	// unbounded.
	MaxLength int
}

// SpinBox is an integer edit with a bounded range.
type SpinBox struct {
	Edit

	Min, Max, Step int
}

var (
	editVT    = widget.VTable{TypeName: TypeEdit, OnPaintSelf: paintEdit}
	spinBoxVT = widget.VTable{TypeName: TypeSpinBox, OnPaintSelf: paintEdit}
)

func init() {
	editVT.Create = EditCreate
	spinBoxVT.Create = SpinBoxCreate
}

// EditCreate creates an empty edit.
func EditCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	e := &Edit{}
	e.Widget = widget.New(&editVT, e, parent, x, y, w, h)
	e.SetState(widget.StateEmpty)
	return e.Widget
}

// SpinBoxCreate creates a spin box over [0, 100] with step 1.
func SpinBoxCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	sb := &SpinBox{Edit: Edit{InputType: InputInt}, Max: 100, Step: 1}
	sb.Widget = widget.New(&spinBoxVT, sb, parent, x, y, w, h)
	sb.SetInt(0)
	return sb.Widget
}

// SetText sets the edit text, rejecting input the edit does not accept.
// It reports whether the text was applied.
func (e *Edit) SetText(text string) bool {
	if e.Readonly {
		return false
	}
	switch e.InputType {
	case InputInt:
		if _, err := strconv.Atoi(text); err != nil && text != "" {
			return false
		}
	case InputFloat:
		if _, err := strconv.ParseFloat(text, 64); err != nil && text != "" {
			return false
		}
	default:
		if e.MaxLength > 0 && utf8.RuneCountInString(text) > e.MaxLength {
			return false
		}
	}
	e.Widget.SetText(text)
	if text == "" {
		e.SetState(widget.StateEmpty)
	} else {
		e.SetState(widget.StateNormal)
	}
	return true
}

// SetInt sets the value clamped to [Min, Max].
func (sb *SpinBox) SetInt(v int) {
	v = clamp(v, sb.Min, sb.Max)
	sb.Widget.SetText(strconv.Itoa(v))
	sb.SetState(widget.StateNormal)
}

// Int returns the current value, or Min if the text is not a number.
func (sb *SpinBox) Int() int {
	v, err := strconv.Atoi(sb.Text)
	if err != nil {
		return sb.Min
	}
	return v
}

// Inc adds Step to the value.
func (sb *SpinBox) Inc() { sb.SetInt(sb.Int() + sb.Step) }

// Dec subtracts Step from the value.
func (sb *SpinBox) Dec() { sb.SetInt(sb.Int() - sb.Step) }

func paintEdit(w *widget.Widget, c widget.Canvas) error {
	e, ok := As[*Edit](w)
	if !ok {
		if sb, isSpin := As[*SpinBox](w); isSpin {
			e = &sb.Edit
		}
	}
	st := widget.StyleFor(w.State())
	c.FillRect(0, 0, int(w.W), int(w.H), st.Background)
	c.StrokeRect(0, 0, int(w.W), int(w.H), st.Border)

	text := w.Text
	if e != nil {
		if e.InputType == InputPassword {
			text = maskText(text)
		}
		if text == "" {
			text = e.Tips
		}
	}
	if text == "" {
		return nil
	}
	_, th := widget.MeasureText(text)
	c.DrawText(text, 2, (int(w.H)-th)/2, st.Text)
	return nil
}

func maskText(s string) string {
	n := utf8.RuneCountInString(s)
	b := make([]byte, n)
	for i := range b {
		b[i] = '*'
	}
	return string(b)
}
