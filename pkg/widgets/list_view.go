//go:build !lowres

package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// ListView is a vertical list of list items.
type ListView struct {
	*widget.Widget

	ItemHeight        int
	DefaultItemHeight int
}

// ListViewH is a horizontal list of list items.
type ListViewH struct {
	*widget.Widget

	ItemWidth int
	Spacing   int
}

// ListItem is one row of a list view.
type ListItem struct {
	*widget.Widget
}

// SlideView pages through its children by swiping.
type SlideView struct {
	*widget.Widget

	Active   int
	Vertical bool
	// AutoPlay is the interval in milliseconds between pages; 0 disables it.
	AutoPlay int
}

var (
	listViewVT  = widget.VTable{TypeName: TypeListView}
	listViewHVT = widget.VTable{TypeName: TypeListViewH}
	listItemVT  = widget.VTable{TypeName: TypeListItem}
	slideViewVT = widget.VTable{TypeName: TypeSlideView, OnPaintSelf: paintSlideView}
)

func init() {
	listViewVT.Create = ListViewCreate
	listViewHVT.Create = ListViewHCreate
	listItemVT.Create = ListItemCreate
	slideViewVT.Create = SlideViewCreate
}

// ListViewCreate creates a list view with 30px items.
func ListViewCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	lv := &ListView{ItemHeight: 30, DefaultItemHeight: 30}
	lv.Widget = widget.New(&listViewVT, lv, parent, x, y, w, h)
	return lv.Widget
}

// ItemsHeight returns the total height of the list's items.
func (lv *ListView) ItemsHeight() int {
	total := 0
	for _, c := range lv.Children() {
		if _, ok := As[*ListItem](c); !ok {
			continue
		}
		h := int(c.H)
		if lv.ItemHeight > 0 {
			h = lv.ItemHeight
		} else if h == 0 {
			h = lv.DefaultItemHeight
		}
		total += h
	}
	return total
}

// ListViewHCreate creates a horizontal list view.
func ListViewHCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	lv := &ListViewH{ItemWidth: int(h)}
	lv.Widget = widget.New(&listViewHVT, lv, parent, x, y, w, h)
	return lv.Widget
}

// ListItemCreate creates a list item.
func ListItemCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	li := &ListItem{}
	li.Widget = widget.New(&listItemVT, li, parent, x, y, w, h)
	return li.Widget
}

// SlideViewCreate creates a horizontal slide view.
func SlideViewCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	sv := &SlideView{}
	sv.Widget = widget.New(&slideViewVT, sv, parent, x, y, w, h)
	return sv.Widget
}

// Next advances to the following page, wrapping at the end.
func (sv *SlideView) Next() {
	if n := len(sv.Children()); n > 0 {
		sv.Active = (sv.Active + 1) % n
	}
}

// Prev goes back one page, wrapping at the start.
func (sv *SlideView) Prev() {
	if n := len(sv.Children()); n > 0 {
		sv.Active = (sv.Active - 1 + n) % n
	}
}

func paintSlideView(w *widget.Widget, c widget.Canvas) error {
	sv, ok := As[*SlideView](w)
	if !ok {
		return nil
	}
	children := w.Children()
	for i, child := range children {
		child.Visible = i == sv.Active
	}
	// page indicator dots
	st := widget.StyleFor(w.State())
	n := len(children)
	for i := 0; i < n; i++ {
		x := int(w.W)/2 - n*6 + i*12
		y := int(w.H) - 10
		if i == sv.Active {
			c.FillRect(x, y, 6, 6, st.Text)
		} else {
			c.StrokeRect(x, y, 6, 6, st.Border)
		}
	}
	return nil
}
