package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/tk/pkg/ui"
	"github.com/go-drift/tk/pkg/widget"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the widget tree a description builds",
		Long: `Build a UI description and print the resulting widget tree.

Each line shows the widget type, its name and text when set, and its
geometry relative to the parent.`,
		Usage: "tk tree <file>",
		Run:   runTree,
	})
}

func runTree(s *Session, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("exactly one file is required\n\nUsage: tk tree <file>")
	}
	doc, err := ui.LoadFile(args[0])
	if err != nil {
		return err
	}
	opts := s.Config.UIOptions(s.Log.Named("ui"))
	opts.Factory = s.Factory
	res, err := ui.Build(doc, nil, opts)
	if err != nil {
		return err
	}

	st := newStyles(s.Out)
	for _, root := range res.Roots {
		printTree(s, st, root, "", "")
		root.Destroy()
	}
	return nil
}

func printTree(s *Session, st styles, w *widget.Widget, prefix, branch string) {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(branch)
	sb.WriteString(st.typ.Render(w.Type()))
	if w.Name != "" {
		sb.WriteString(" " + st.name.Render(w.Name))
	}
	if w.Text != "" {
		sb.WriteString(fmt.Sprintf(" %q", w.Text))
	}
	sb.WriteString(" " + st.muted.Render(fmt.Sprintf("(%d,%d %dx%d)", w.X, w.Y, w.W, w.H)))
	fmt.Fprintln(s.Out, sb.String())

	childPrefix := prefix
	switch branch {
	case "├── ":
		childPrefix += "│   "
	case "└── ":
		childPrefix += "    "
	}
	children := w.Children()
	for i, c := range children {
		b := "├── "
		if i == len(children)-1 {
			b = "└── "
		}
		printTree(s, st, c, childPrefix, b)
	}
}
