package testing

import (
	"fmt"

	"github.com/go-drift/tk/pkg/widget"
)

// Finder locates widgets in a tree.
type Finder interface {
	// Evaluate returns all matching widgets under root (depth-first pre-order).
	Evaluate(root *widget.Widget) []*widget.Widget
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	widgets []*widget.Widget
	finder  Finder
}

// Find evaluates f against root.
func Find(root *widget.Widget, f Finder) FinderResult {
	return FinderResult{widgets: f.Evaluate(root), finder: f}
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *widget.Widget {
	if len(r.widgets) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no widgets: %s", desc))
	}
	return r.widgets[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *widget.Widget {
	if len(r.widgets) == 0 {
		return nil
	}
	return r.widgets[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*widget.Widget {
	return r.widgets
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.widgets)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.widgets) > 0
}

// typeFinder matches widgets by type tag.
type typeFinder struct {
	typeName string
}

func (f *typeFinder) Evaluate(root *widget.Widget) []*widget.Widget {
	return collectMatches(root, func(w *widget.Widget) bool {
		return w.Type() == f.typeName
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches widgets whose type tag is typeName.
func ByType(typeName string) Finder {
	return &typeFinder{typeName: typeName}
}

// nameFinder matches widgets by name.
type nameFinder struct {
	name string
}

func (f *nameFinder) Evaluate(root *widget.Widget) []*widget.Widget {
	return collectMatches(root, func(w *widget.Widget) bool {
		return w.Name == f.name
	})
}

func (f *nameFinder) Description() string {
	return fmt.Sprintf("ByName(%q)", f.name)
}

// ByName returns a finder that matches widgets named name.
func ByName(name string) Finder {
	return &nameFinder{name: name}
}

// predicateFinder matches widgets satisfying a predicate.
type predicateFinder struct {
	fn   func(*widget.Widget) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *widget.Widget) []*widget.Widget {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches widgets satisfying fn.
func ByPredicate(fn func(*widget.Widget) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

func collectMatches(root *widget.Widget, match func(*widget.Widget) bool) []*widget.Widget {
	if root == nil {
		return nil
	}
	var out []*widget.Widget
	root.Walk(func(w *widget.Widget) bool {
		if match(w) {
			out = append(out, w)
		}
		return true
	})
	return out
}
