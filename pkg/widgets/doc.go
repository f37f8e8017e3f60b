// Package widgets provides the standard widget types.
//
// Every type has a constructor with the widget.Constructor signature,
// named after the type (WindowCreate, ButtonCreate, SliderCreate, ...).
// The constructor allocates the concrete variant, installs the type's
// vtable, links the widget under parent with the requested geometry and
// sets its initial state:
//
//	win := widgets.WindowCreate(nil, 0, 0, 320, 240)
//	ok := widgets.ButtonCreate(win, 10, 10, 80, 30)
//	ok.SetText("OK")
//
// The concrete variant is recovered with As:
//
//	if s, ok := widgets.As[*widgets.Slider](w); ok {
//	    s.SetValue(40)
//	}
//
// # Low-resource builds
//
// Building with the lowres tag leaves out the heavier widgets: scroll
// views, scroll bars, list views, slide views, keyboards and candidate
// pickers. Their Type constants remain defined so that UI descriptions can
// still name them; the factory simply does not resolve them.
package widgets
