package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// Button is a push button.
type Button struct {
	*widget.Widget

	// Repeat is the auto-repeat interval in milliseconds; 0 disables it.
	Repeat int
	// OnClick runs when the button is clicked while enabled.
	OnClick func()
}

// CheckButton is a two-state toggle. Radio buttons are check buttons whose
// siblings of the same type are cleared when one is checked.
type CheckButton struct {
	*widget.Widget

	Value bool
	Radio bool
}

var (
	buttonVT      = widget.VTable{TypeName: TypeButton}
	checkButtonVT = widget.VTable{TypeName: TypeCheckButton, OnPaintSelf: paintCheckButton}
	radioButtonVT = widget.VTable{TypeName: TypeRadioButton, OnPaintSelf: paintCheckButton}
)

func init() {
	buttonVT.Create = ButtonCreate
	checkButtonVT.Create = CheckButtonCreate
	radioButtonVT.Create = RadioButtonCreate
}

// ButtonCreate creates a push button.
func ButtonCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	b := &Button{}
	b.Widget = widget.New(&buttonVT, b, parent, x, y, w, h)
	return b.Widget
}

// Click invokes OnClick if the button is enabled. It reports whether the
// click was delivered.
func (b *Button) Click() bool {
	if !b.Enabled || b.OnClick == nil {
		return false
	}
	b.SetState(widget.StatePressed)
	b.OnClick()
	b.SetState(widget.StateNormal)
	return true
}

// CheckButtonCreate creates an unchecked check button.
func CheckButtonCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	return newCheckButton(&checkButtonVT, false, parent, x, y, w, h)
}

// RadioButtonCreate creates an unchecked radio button.
func RadioButtonCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	return newCheckButton(&radioButtonVT, true, parent, x, y, w, h)
}

func newCheckButton(vt *widget.VTable, radio bool, parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	cb := &CheckButton{Radio: radio}
	cb.Widget = widget.New(vt, cb, parent, x, y, w, h)
	cb.SetState(widget.StateUnchecked)
	return cb.Widget
}

// SetValue checks or unchecks the button. Checking a radio button
// unchecks its radio siblings.
func (cb *CheckButton) SetValue(checked bool) {
	if cb.Radio && checked {
		if p := cb.Parent(); p != nil {
			for _, sib := range p.Children() {
				if other, ok := As[*CheckButton](sib); ok && other != cb && other.Radio {
					other.Value = false
					other.SetState(widget.StateUnchecked)
				}
			}
		}
	}
	cb.Value = checked
	if checked {
		cb.SetState(widget.StateChecked)
	} else {
		cb.SetState(widget.StateUnchecked)
	}
}

func paintCheckButton(w *widget.Widget, c widget.Canvas) error {
	st := widget.StyleFor(widget.StateNormal)
	box := int(w.H)
	if int(w.W) < box {
		box = int(w.W)
	}
	if box == 0 {
		return nil
	}
	c.StrokeRect(0, 0, box, box, st.Border)
	if w.State() == widget.StateChecked {
		c.FillRect(box/4, box/4, box/2, box/2, st.Text)
	}
	if w.Text != "" {
		_, th := widget.MeasureText(w.Text)
		c.DrawText(w.Text, box+4, (int(w.H)-th)/2, st.Text)
	}
	return nil
}
