package widgets

import "github.com/go-drift/tk/pkg/widget"

// Type names of the standard widgets. These are the identifiers UI
// descriptions use and the keys of the factory's builtin table.
const (
	TypeDialog       = "dialog"
	TypeDialogTitle  = "dialog_title"
	TypeDialogClient = "dialog_client"
	TypeWindow       = "window"
	TypeImage        = "image"
	TypeButton       = "button"
	TypeLabel        = "label"
	TypeEdit         = "edit"
	TypeProgressBar  = "progress_bar"
	TypeSlider       = "slider"
	TypeGroupBox     = "group_box"
	TypeView         = "view"
	TypeCheckButton  = "check_button"
	TypeRadioButton  = "radio_button"
	TypePages        = "pages"
	TypeSpinBox      = "spin_box"
	TypeDragger      = "dragger"
	TypeScrollView   = "scroll_view"
	TypeListView     = "list_view"
	TypeListViewH    = "list_view_h"
	TypeListItem     = "list_item"
	TypeScrollBar    = "scroll_bar"
	TypeScrollBarD   = "scroll_bar_d"
	TypeScrollBarM   = "scroll_bar_m"
	TypeSlideView    = "slide_view"
	TypeKeyboard     = "keyboard"
	TypeCandidates   = "candidates"
)

// As returns the concrete variant of w as T.
//
//	if s, ok := widgets.As[*widgets.Slider](w); ok {
//	    s.SetValue(40)
//	}
func As[T any](w *widget.Widget) (T, bool) {
	var zero T
	if w == nil {
		return zero, false
	}
	v, ok := w.Impl().(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
