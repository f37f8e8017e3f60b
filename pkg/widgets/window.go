package widgets

import (
	"github.com/go-drift/tk/pkg/widget"
)

// Window is a top-level normal window.
type Window struct {
	*widget.Widget

	// Theme names the style group the window is drawn with.
	Theme string
}

// Dialog is a modal window made of a title and a client area.
type Dialog struct {
	*widget.Widget

	Theme string
	// Quit holds the code passed to Quit, or -1 while running.
	Quit int
}

// DialogTitle is the title bar of a dialog.
type DialogTitle struct {
	*widget.Widget
}

// DialogClient is the content area of a dialog.
type DialogClient struct {
	*widget.Widget
}

var (
	windowVT       = widget.VTable{TypeName: TypeWindow, OnPaintSelf: paintBackground}
	dialogVT       = widget.VTable{TypeName: TypeDialog, OnPaintSelf: paintBackground}
	dialogTitleVT  = widget.VTable{TypeName: TypeDialogTitle}
	dialogClientVT = widget.VTable{TypeName: TypeDialogClient, OnPaintSelf: paintBackground}
)

func init() {
	windowVT.Create = WindowCreate
	dialogVT.Create = DialogCreate
	dialogTitleVT.Create = DialogTitleCreate
	dialogClientVT.Create = DialogClientCreate
}

// WindowCreate creates a window.
func WindowCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	win := &Window{Theme: "default"}
	win.Widget = widget.New(&windowVT, win, parent, x, y, w, h)
	return win.Widget
}

// DialogCreate creates a dialog.
func DialogCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	dlg := &Dialog{Theme: "default", Quit: -1}
	dlg.Widget = widget.New(&dialogVT, dlg, parent, x, y, w, h)
	return dlg.Widget
}

// Title returns the dialog's title bar, or nil if it has none.
func (d *Dialog) Title() *DialogTitle {
	for _, c := range d.Children() {
		if t, ok := As[*DialogTitle](c); ok {
			return t
		}
	}
	return nil
}

// Client returns the dialog's client area, or nil if it has none.
func (d *Dialog) Client() *DialogClient {
	for _, c := range d.Children() {
		if cl, ok := As[*DialogClient](c); ok {
			return cl
		}
	}
	return nil
}

// SetQuit records code as the dialog's result.
func (d *Dialog) SetQuit(code int) {
	d.Quit = code
}

// DialogTitleCreate creates a dialog title bar.
func DialogTitleCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	t := &DialogTitle{}
	t.Widget = widget.New(&dialogTitleVT, t, parent, x, y, w, h)
	return t.Widget
}

// DialogClientCreate creates a dialog client area.
func DialogClientCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	c := &DialogClient{}
	c.Widget = widget.New(&dialogClientVT, c, parent, x, y, w, h)
	return c.Widget
}

// paintBackground fills the widget without a border or caption.
func paintBackground(w *widget.Widget, c widget.Canvas) error {
	if w.W == 0 || w.H == 0 {
		return nil
	}
	c.FillRect(0, 0, int(w.W), int(w.H), widget.StyleFor(w.State()).Background)
	return nil
}
