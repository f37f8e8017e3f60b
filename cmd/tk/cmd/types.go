package cmd

import (
	"fmt"

	"github.com/go-drift/tk/pkg/factory"
)

func init() {
	RegisterCommand(&Command{
		Name:  "types",
		Short: "List creatable widget types",
		Long: `List the widget types the factory can create, in lookup order.

Builtin types come first. Heavy widgets (scroll views, list views,
keyboards) are absent from binaries built with the lowres tag.`,
		Usage: "tk types",
		Run:   runTypes,
	})
}

func runTypes(s *Session, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: tk types", args[0])
	}
	st := newStyles(s.Out)

	fmt.Fprintln(s.Out, st.header.Render(fmt.Sprintf("%-16s %s", "TYPE", "SOURCE")))
	for _, name := range s.Factory.Types() {
		_, src, _ := s.Factory.Lookup(name)
		fmt.Fprintf(s.Out, "%s %s\n", st.typ.Render(fmt.Sprintf("%-16s", name)), st.muted.Render(src.String()))
	}
	fmt.Fprintln(s.Out)
	fmt.Fprintf(s.Out, "%d builtin, %d registered\n", len(factory.Builtins()), s.Factory.Len())
	return nil
}
