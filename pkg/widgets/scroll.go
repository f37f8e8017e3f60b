//go:build !lowres

package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// ScrollView is a viewport over a virtual area larger than itself.
type ScrollView struct {
	*widget.Widget

	VirtualW, VirtualH int
	XOffset, YOffset   int
}

// ScrollBar shows and controls a scroll position. Mobile scroll bars are
// thin indicators; desktop scroll bars carry arrow buttons.
type ScrollBar struct {
	*widget.Widget

	Mobile      bool
	VirtualSize int
	Row         int
	Value       int
}

var (
	scrollViewVT = widget.VTable{TypeName: TypeScrollView, OnPaintSelf: paintBackground}
	scrollBarVT  = widget.VTable{TypeName: TypeScrollBar, OnPaintSelf: paintScrollBar}
	scrollBarDVT = widget.VTable{TypeName: TypeScrollBarD, OnPaintSelf: paintScrollBar}
	scrollBarMVT = widget.VTable{TypeName: TypeScrollBarM, OnPaintSelf: paintScrollBar}
)

func init() {
	scrollViewVT.Create = ScrollViewCreate
	scrollBarVT.Create = ScrollBarCreate
	scrollBarDVT.Create = ScrollBarCreateDesktop
	scrollBarMVT.Create = ScrollBarCreateMobile
}

// ScrollViewCreate creates a scroll view whose virtual area equals its size.
func ScrollViewCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	sv := &ScrollView{VirtualW: int(w), VirtualH: int(h)}
	sv.Widget = widget.New(&scrollViewVT, sv, parent, x, y, w, h)
	return sv.Widget
}

// SetVirtualSize sets the scrollable area; it never shrinks below the view.
func (sv *ScrollView) SetVirtualSize(w, h int) {
	sv.VirtualW = max(w, int(sv.W))
	sv.VirtualH = max(h, int(sv.H))
	sv.ScrollTo(sv.XOffset, sv.YOffset)
}

// ScrollTo moves the viewport, clamped to the virtual area.
func (sv *ScrollView) ScrollTo(x, y int) {
	sv.XOffset = clamp(x, 0, max(0, sv.VirtualW-int(sv.W)))
	sv.YOffset = clamp(y, 0, max(0, sv.VirtualH-int(sv.H)))
}

// ScrollBarCreate creates a scroll bar matching the platform default.
func ScrollBarCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	return newScrollBar(&scrollBarVT, false, parent, x, y, w, h)
}

// ScrollBarCreateDesktop creates a desktop scroll bar.
func ScrollBarCreateDesktop(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	return newScrollBar(&scrollBarDVT, false, parent, x, y, w, h)
}

// ScrollBarCreateMobile creates a mobile scroll bar.
func ScrollBarCreateMobile(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	return newScrollBar(&scrollBarMVT, true, parent, x, y, w, h)
}

func newScrollBar(vt *widget.VTable, mobile bool, parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	sb := &ScrollBar{Mobile: mobile, Row: 30}
	sb.Widget = widget.New(vt, sb, parent, x, y, w, h)
	return sb.Widget
}

// SetValue sets the scroll position, clamped to [0, VirtualSize].
func (sb *ScrollBar) SetValue(v int) {
	sb.Value = clamp(v, 0, max(0, sb.VirtualSize))
}

func paintScrollBar(w *widget.Widget, c widget.Canvas) error {
	sb, ok := As[*ScrollBar](w)
	if !ok || sb.VirtualSize <= 0 {
		return nil
	}
	st := widget.StyleFor(w.State())
	width, height := int(w.W), int(w.H)
	if !sb.Mobile {
		c.FillRect(0, 0, width, height, st.Background)
	}
	vertical := height > width
	if vertical {
		thumb := max(height*height/(height+sb.VirtualSize), 4)
		pos := (height - thumb) * sb.Value / sb.VirtualSize
		c.FillRect(0, pos, width, thumb, st.Border)
	} else {
		thumb := max(width*width/(width+sb.VirtualSize), 4)
		pos := (width - thumb) * sb.Value / sb.VirtualSize
		c.FillRect(pos, 0, thumb, height, st.Border)
	}
	return nil
}
