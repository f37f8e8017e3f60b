// Package factory resolves widget type names to constructors.
//
// A Factory consults two tables. The builtin table is compiled in and lists
// every standard widget type; the runtime table holds types added with
// Register. CreateWidget always searches the builtin table first, so a
// registration can never shadow a standard type. Within the runtime table
// the first registration of a name wins.
//
//	f := factory.New()
//	f.Register("gauge", GaugeCreate)
//	factory.SetActive(f)
//
//	w := f.CreateWidget("gauge", root, 10, 20, 100, 50)
//	if w == nil {
//	    // unknown type or constructor failure
//	}
//
// A Factory is not safe for concurrent use. The active-factory slot is.
package factory

import (
	"slices"

	"go.uber.org/zap"

	"github.com/go-drift/tk/pkg/errors"
	"github.com/go-drift/tk/pkg/widget"
)

// Factory owns the runtime table of registered widget types.
// The zero value is ready to use with default Options.
type Factory struct {
	opts      Options
	creators  []Creator
	destroyed bool
}

// New returns an empty factory with default options.
func New() *Factory {
	return NewWithOptions(Options{})
}

// NewWithOptions returns an empty factory configured by opts.
func NewWithOptions(opts Options) *Factory {
	f := &Factory{opts: opts}
	return f.Init()
}

// Init resets a caller-owned factory to an empty runtime table and returns
// it. It returns nil for a nil or destroyed factory.
func (f *Factory) Init() *Factory {
	if f == nil || f.destroyed {
		return nil
	}
	f.opts = f.opts.withDefaults()
	f.creators = make([]Creator, 0)
	return f
}

func (f *Factory) options() Options {
	if f.opts.Logger == nil || f.opts.NameLen == 0 {
		f.opts = f.opts.withDefaults()
	}
	return f.opts
}

func (f *Factory) observer() Observer {
	if f.opts.Observer == nil {
		return nopObserver{}
	}
	return f.opts.Observer
}

// Register appends a runtime record for name. Duplicate names are kept;
// lookups return the first one registered. Names longer than the
// configured bound are truncated, or rejected when StrictNames is set.
//
// Register returns an error wrapping ErrBadParams for a nil factory, an
// empty name or a nil constructor, ErrDestroyed after Destroy, and
// ErrOutOfMemory when the table is at MaxTypes. A failed Register leaves the
// table unchanged.
func (f *Factory) Register(name string, create widget.Constructor) error {
	const op = "factory.Register"
	if f == nil || name == "" || create == nil {
		return errors.E(op, name, errors.ErrBadParams)
	}
	if f.destroyed {
		return errors.E(op, name, errors.ErrDestroyed)
	}
	opts := f.options()
	if len(name) > opts.NameLen {
		if opts.StrictNames {
			return errors.E(op, name, errors.ErrBadParams)
		}
		truncated := truncateName(name, opts.NameLen)
		if truncated == "" {
			return errors.E(op, name, errors.ErrBadParams)
		}
		opts.Logger.Debug("type name truncated", zap.String("name", name), zap.String("stored", truncated))
		name = truncated
	}
	if opts.MaxTypes > 0 && len(f.creators) >= opts.MaxTypes {
		return errors.E(op, name, errors.ErrOutOfMemory)
	}
	f.creators = append(f.creators, Creator{Type: name, Create: create})
	opts.Logger.Debug("widget type registered",
		zap.String("type", name),
		zap.Bool("shadowed_by_builtin", IsBuiltin(name)),
		zap.Int("registered", len(f.creators)),
	)
	f.observer().TypeRegistered(name)
	return nil
}

// Lookup resolves name without creating a widget: the builtin table
// first, then runtime records in registration order.
func (f *Factory) Lookup(name string) (widget.Constructor, Source, bool) {
	if f == nil || name == "" || f.destroyed {
		return nil, SourceBuiltin, false
	}
	if create, ok := LookupBuiltin(name); ok {
		return create, SourceBuiltin, true
	}
	opts := f.options()
	if len(name) > opts.NameLen {
		if opts.StrictNames {
			return nil, SourceRegistered, false
		}
		name = truncateName(name, opts.NameLen)
		if name == "" {
			return nil, SourceRegistered, false
		}
	}
	for _, c := range f.creators {
		if c.Type == name {
			return c.Create, SourceRegistered, true
		}
	}
	return nil, SourceRegistered, false
}

// CreateWidget creates a widget of type name under parent. It returns nil
// when the factory is nil or destroyed, name is empty, no table resolves
// name, or the constructor fails. A constructor panic is reported to the
// error handler and yields nil; widgets it had already linked under parent
// are destroyed.
func (f *Factory) CreateWidget(name string, parent *widget.Widget, x, y int16, w, h uint16) *widget.Widget {
	create, src, ok := f.Lookup(name)
	if !ok {
		if f != nil && name != "" && !f.destroyed {
			f.observer().WidgetMissed(name)
		}
		return nil
	}
	wg := invoke(create, parent, x, y, w, h)
	f.observer().WidgetCreated(name, src, wg != nil)
	return wg
}

func invoke(create widget.Constructor, parent *widget.Widget, x, y int16, w, h uint16) (wg *widget.Widget) {
	linked := 0
	if parent != nil {
		linked = len(parent.Children())
	}
	defer errors.RecoverWithCallback("factory.CreateWidget", func(any) {
		wg = nil
		if parent == nil {
			return
		}
		for len(parent.Children()) > linked {
			parent.Children()[len(parent.Children())-1].Destroy()
		}
	})
	return create(parent, x, y, w, h)
}

// Len returns the number of runtime records.
func (f *Factory) Len() int {
	if f == nil {
		return 0
	}
	return len(f.creators)
}

// Registered returns a copy of the runtime records in registration order.
func (f *Factory) Registered() []Creator {
	if f == nil {
		return nil
	}
	return slices.Clone(f.creators)
}

// Types returns every creatable type name: builtin names in table order,
// then registered names not already listed, in registration order. A
// destroyed factory creates nothing and returns nil.
func (f *Factory) Types() []string {
	if f.Destroyed() {
		return nil
	}
	seen := make(map[string]bool, len(builtinCreators))
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	for _, c := range builtinCreators {
		add(c.Type)
	}
	if f != nil {
		for _, c := range f.creators {
			add(c.Type)
		}
	}
	return out
}

// Deinit drops every runtime record. The factory remains usable and may
// accept new registrations.
func (f *Factory) Deinit() error {
	const op = "factory.Deinit"
	if f == nil {
		return errors.E(op, "", errors.ErrBadParams)
	}
	if f.destroyed {
		return errors.E(op, "", errors.ErrDestroyed)
	}
	clear(f.creators)
	f.creators = nil
	f.options().Logger.Debug("factory deinitialized")
	return nil
}

// Destroy drops every runtime record and marks the factory unusable. If
// the factory is the active one, the active slot is cleared. Calling
// Destroy twice returns ErrDestroyed.
func (f *Factory) Destroy() error {
	if err := f.Deinit(); err != nil {
		return err
	}
	f.destroyed = true
	active.CompareAndSwap(f, nil)
	return nil
}

// Destroyed reports whether Destroy has run.
func (f *Factory) Destroyed() bool {
	return f != nil && f.destroyed
}
