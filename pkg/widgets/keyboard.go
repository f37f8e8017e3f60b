//go:build !lowres

package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// Keyboard is a soft keyboard window. Its keys are ordinary child widgets
// loaded from a keyboard UI description.
type Keyboard struct {
	*widget.Widget

	// Layout names the keyboard description (e.g. "kb_default").
	Layout string
}

// Candidates shows input-method suggestions as buttons.
type Candidates struct {
	*widget.Widget

	// OnSelect runs with the chosen candidate.
	OnSelect func(text string)
}

var (
	keyboardVT   = widget.VTable{TypeName: TypeKeyboard, OnPaintSelf: paintBackground}
	candidatesVT = widget.VTable{TypeName: TypeCandidates}
)

func init() {
	keyboardVT.Create = KeyboardCreate
	candidatesVT.Create = CandidatesCreate
}

// KeyboardCreate creates an empty keyboard.
func KeyboardCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	kb := &Keyboard{Layout: "kb_default"}
	kb.Widget = widget.New(&keyboardVT, kb, parent, x, y, w, h)
	return kb.Widget
}

// CandidatesCreate creates an empty candidate picker.
func CandidatesCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	cd := &Candidates{}
	cd.Widget = widget.New(&candidatesVT, cd, parent, x, y, w, h)
	return cd.Widget
}

// SetCandidates replaces the picker's buttons with one per candidate, laid
// out left to right and sized to their text.
func (cd *Candidates) SetCandidates(items []string) {
	for len(cd.Children()) > 0 {
		cd.Children()[0].Destroy()
	}
	x := 0
	for _, item := range items {
		tw, _ := widget.MeasureText(item)
		w := uint16(tw + 8)
		btn := ButtonCreate(cd.Widget, int16(x), 0, w, cd.H)
		btn.SetText(item)
		if b, ok := As[*Button](btn); ok {
			text := item
			b.OnClick = func() {
				if cd.OnSelect != nil {
					cd.OnSelect(text)
				}
			}
		}
		x += int(w)
	}
}
