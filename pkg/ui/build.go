package ui

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/go-drift/tk/pkg/errors"
	"github.com/go-drift/tk/pkg/factory"
	"github.com/go-drift/tk/pkg/widget"
)

// Options controls how a document is materialized.
type Options struct {
	// Factory resolves type names. Nil uses factory.Active.
	Factory *factory.Factory
	// SkipUnknown skips nodes of unknown type, and their subtrees, instead
	// of aborting the build.
	SkipUnknown bool
	// Logger receives progress and skipped-node warnings. Optional.
	Logger *zap.Logger
}

// Result reports what Build created.
type Result struct {
	// Roots are the widgets created for the document's top-level nodes.
	Roots []*widget.Widget
	// Created counts every widget created.
	Created int
	// Skipped holds the errors for nodes skipped under SkipUnknown.
	Skipped []*errors.NotFoundError
}

// Build creates the document's widgets under parent. On error every
// widget Build created is destroyed again, so parent is left as it was.
func Build(doc *Document, parent *widget.Widget, opts Options) (*Result, error) {
	const op = "ui.Build"
	f := opts.Factory
	if f == nil {
		f = factory.Active()
	}
	if doc == nil || f == nil {
		return nil, errors.E(op, "", fmt.Errorf("no document or factory: %w", errors.ErrBadParams))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	b := &builder{f: f, opts: opts, log: log, res: &Result{}}
	for _, node := range doc.Widgets {
		w, err := b.build(node, parent)
		if err != nil {
			for _, r := range b.res.Roots {
				r.Destroy()
			}
			return nil, err
		}
		if w != nil {
			b.res.Roots = append(b.res.Roots, w)
		}
	}
	log.Debug("ui built", zap.Int("created", b.res.Created), zap.Int("skipped", len(b.res.Skipped)))
	return b.res, nil
}

type builder struct {
	f    *factory.Factory
	opts Options
	log  *zap.Logger
	res  *Result
}

func (b *builder) build(node *Node, parent *widget.Widget) (*widget.Widget, error) {
	const op = "ui.Build"
	w := b.f.CreateWidget(node.Type, parent, node.X, node.Y, node.W, node.H)
	if w == nil {
		if _, _, ok := b.f.Lookup(node.Type); ok {
			return nil, errors.E(op, node.Type, fmt.Errorf("constructor for %q failed: %w", node.Type, errors.ErrOutOfMemory))
		}
		nf := &errors.NotFoundError{Type: node.Type, Suggestion: Suggest(b.f, node.Type)}
		if !b.opts.SkipUnknown {
			return nil, errors.E(op, node.Type, nf)
		}
		errors.Report(errors.E(op, node.Type, nf))
		b.log.Warn("skipping unknown widget type",
			zap.String("type", node.Type),
			zap.String("name", node.Name),
			zap.String("suggestion", nf.Suggestion),
		)
		b.res.Skipped = append(b.res.Skipped, nf)
		return nil, nil
	}
	b.res.Created++
	if node.Name != "" {
		w.SetName(node.Name)
	}
	if node.Text != "" {
		w.SetText(node.Text)
	}
	for _, child := range node.Children {
		if _, err := b.build(child, w); err != nil {
			w.Destroy()
			return nil, err
		}
	}
	return w, nil
}

// Suggest returns the creatable type name closest to name by edit
// distance, or "" if none is close enough to be a likely typo.
func Suggest(f *factory.Factory, name string) string {
	best, bestDist := "", -1
	for _, candidate := range f.Types() {
		d := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}
