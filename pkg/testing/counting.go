package testing

import (
	"github.com/go-drift/tk/pkg/widget"
)

// CountingConstructor is a widget constructor that counts the widgets it
// creates and destroys. Use Create as a widget.Constructor.
type CountingConstructor struct {
	// Fail makes Create return nil without allocating.
	Fail bool

	vt        widget.VTable
	calls     int
	created   int
	destroyed int
	last      *widget.Widget
}

// NewCountingConstructor returns a counting constructor whose widgets carry
// typeName as their type tag.
func NewCountingConstructor(typeName string) *CountingConstructor {
	c := &CountingConstructor{}
	c.vt = widget.VTable{
		TypeName: typeName,
		Create:   c.Create,
		OnDestroy: func(*widget.Widget) {
			c.destroyed++
		},
	}
	return c
}

// Create implements widget.Constructor.
func (c *CountingConstructor) Create(parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	c.calls++
	if c.Fail {
		return nil
	}
	wg := widget.New(&c.vt, c, parent, x, y, w, h)
	c.created++
	c.last = wg
	return wg
}

// Calls returns how many times Create ran.
func (c *CountingConstructor) Calls() int { return c.calls }

// Live returns created minus destroyed widgets.
func (c *CountingConstructor) Live() int { return c.created - c.destroyed }

// Last returns the most recently created widget.
func (c *CountingConstructor) Last() *widget.Widget { return c.last }
