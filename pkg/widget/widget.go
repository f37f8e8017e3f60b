// Package widget provides the base widget shared by every widget type: the
// parent/child tree, geometry, interaction state and the per-type vtable
// through which concrete variants paint and tear down.
//
// Concrete widgets live in package widgets. They allocate their variant,
// install a VTable, and call New, which links the widget under its parent
// and applies the requested geometry:
//
//	func LabelCreate(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
//	    l := &Label{}
//	    l.Widget = widget.New(&labelVT, l, parent, x, y, w, h)
//	    return l.Widget
//	}
//
// Every constructor shares the Constructor signature, so the factory can
// store any of them as an opaque value.
package widget

// Constructor creates a widget of one concrete type under parent with the
// given position and size. It returns nil on failure and leaves no partially
// linked widget behind.
type Constructor func(parent *Widget, x, y int16, w, h uint16) *Widget

// VTable is the per-type dispatch table installed by a constructor.
type VTable struct {
	// TypeName is the type tag, identical to the factory name of the type.
	TypeName string
	// Create is the constructor of the type.
	Create Constructor
	// OnPaintSelf draws the widget itself, not its children.
	// A nil OnPaintSelf falls back to PaintHelper.
	OnPaintSelf func(w *Widget, c Canvas) error
	// OnDestroy releases variant resources. Optional.
	OnDestroy func(w *Widget)
}

// Widget is the base of every widget in the tree.
type Widget struct {
	// Name identifies the widget among its siblings for lookups.
	Name string
	// Text is the caption drawn by PaintHelper.
	Text string

	X, Y int16
	W, H uint16

	Visible bool
	Enabled bool

	state     State
	parent    *Widget
	children  []*Widget
	vt        *VTable
	impl      any
	destroyed bool
}

// New initializes a widget for vt, links it under parent and applies the
// geometry. The widget starts visible, enabled and in StateNormal.
// impl is the concrete variant returned by Impl. A nil vt returns nil
// without touching parent.
func New(vt *VTable, impl any, parent *Widget, x, y int16, w, h uint16) *Widget {
	if vt == nil {
		return nil
	}
	wg := &Widget{
		vt:      vt,
		impl:    impl,
		Visible: true,
		Enabled: true,
	}
	if parent != nil {
		parent.AddChild(wg)
	}
	wg.MoveResize(x, y, w, h)
	wg.SetState(StateNormal)
	return wg
}

// Type returns the type tag from the widget's vtable.
func (w *Widget) Type() string {
	if w == nil || w.vt == nil {
		return ""
	}
	return w.vt.TypeName
}

// VTable returns the dispatch table installed by the constructor.
func (w *Widget) VTable() *VTable { return w.vt }

// Impl returns the concrete variant passed to New.
func (w *Widget) Impl() any { return w.impl }

// Parent returns the widget this one is linked under, or nil for a root.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the ordered child list. The slice must not be modified.
func (w *Widget) Children() []*Widget { return w.children }

// State returns the current interaction state.
func (w *Widget) State() State { return w.state }

// SetState changes the interaction state.
func (w *Widget) SetState(s State) { w.state = s }

// MoveResize sets position and size in one step.
func (w *Widget) MoveResize(x, y int16, width, height uint16) {
	w.X, w.Y = x, y
	w.W, w.H = width, height
}

// SetText sets the caption.
func (w *Widget) SetText(text string) { w.Text = text }

// SetName sets the lookup name.
func (w *Widget) SetName(name string) { w.Name = name }

// SetEnabled toggles interaction; a disabled widget is shown in StateDisabled.
func (w *Widget) SetEnabled(enabled bool) {
	w.Enabled = enabled
	if enabled {
		if w.state == StateDisabled {
			w.state = StateNormal
		}
		return
	}
	w.state = StateDisabled
}

// Destroyed reports whether Destroy has run.
func (w *Widget) Destroyed() bool { return w.destroyed }

// AddChild appends child, unlinking it from any previous parent first.
func (w *Widget) AddChild(child *Widget) {
	if child == nil || child == w {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
}

// RemoveChild unlinks child. It reports whether child was found.
func (w *Widget) RemoveChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Child returns the direct child named name.
func (w *Widget) Child(name string) *Widget {
	for _, c := range w.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Lookup finds a descendant named name, depth-first when recursive is set.
func (w *Widget) Lookup(name string, recursive bool) *Widget {
	if !recursive {
		return w.Child(name)
	}
	var found *Widget
	w.Walk(func(c *Widget) bool {
		if c != w && c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Walk visits w and its descendants in depth-first pre-order until visit
// returns false.
func (w *Widget) Walk(visit func(*Widget) bool) bool {
	if !visit(w) {
		return false
	}
	for _, c := range w.children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// Paint draws the widget and its children. Child coordinates are relative
// to the parent.
func (w *Widget) Paint(c Canvas) error {
	if w == nil || !w.Visible || w.destroyed {
		return nil
	}
	c.Translate(int(w.X), int(w.Y))
	defer c.Translate(-int(w.X), -int(w.Y))

	var err error
	if w.vt != nil && w.vt.OnPaintSelf != nil {
		err = w.vt.OnPaintSelf(w, c)
	} else {
		err = PaintHelper(w, c)
	}
	if err != nil {
		return err
	}
	for _, child := range w.children {
		if err := child.Paint(c); err != nil {
			return err
		}
	}
	return nil
}

// Destroy unlinks the widget from its parent and destroys its subtree,
// children first.
func (w *Widget) Destroy() {
	if w == nil || w.destroyed {
		return
	}
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
	for len(w.children) > 0 {
		w.children[len(w.children)-1].Destroy()
	}
	if w.vt != nil && w.vt.OnDestroy != nil {
		w.vt.OnDestroy(w)
	}
	w.destroyed = true
}
