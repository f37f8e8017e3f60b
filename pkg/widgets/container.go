package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// GroupBox groups related widgets, typically radio buttons.
type GroupBox struct {
	*widget.Widget
}

// View is a plain container.
type View struct {
	*widget.Widget
}

// Pages shows exactly one of its children at a time.
type Pages struct {
	*widget.Widget

	Active int
}

var (
	groupBoxVT = widget.VTable{TypeName: TypeGroupBox}
	viewVT     = widget.VTable{TypeName: TypeView, OnPaintSelf: paintBackground}
	pagesVT    = widget.VTable{TypeName: TypePages, OnPaintSelf: paintPages}
)

func init() {
	groupBoxVT.Create = GroupBoxCreate
	viewVT.Create = ViewCreate
	pagesVT.Create = PagesCreate
}

// GroupBoxCreate creates a group box.
func GroupBoxCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	g := &GroupBox{}
	g.Widget = widget.New(&groupBoxVT, g, parent, x, y, w, h)
	return g.Widget
}

// ViewCreate creates a view.
func ViewCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	v := &View{}
	v.Widget = widget.New(&viewVT, v, parent, x, y, w, h)
	return v.Widget
}

// PagesCreate creates a pages container showing its first child.
func PagesCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	p := &Pages{}
	p.Widget = widget.New(&pagesVT, p, parent, x, y, w, h)
	return p.Widget
}

// SetActive selects the visible page. Out-of-range indexes are ignored.
// It reports whether the active page changed.
func (p *Pages) SetActive(index int) bool {
	children := p.Children()
	if index < 0 || index >= len(children) {
		return false
	}
	p.Active = index
	for i, c := range children {
		c.Visible = i == index
	}
	return true
}

// paintPages hides inactive pages before children are painted.
func paintPages(w *widget.Widget, c widget.Canvas) error {
	p, ok := As[*Pages](w)
	if !ok {
		return nil
	}
	for i, child := range w.Children() {
		child.Visible = i == p.Active
	}
	return nil
}
