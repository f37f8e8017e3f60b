//go:build lowres

package factory_test

import (
	"testing"

	"github.com/go-drift/tk/pkg/factory"
	"github.com/go-drift/tk/pkg/widgets"
)

func TestBuiltins_ExcludeHeavyWidgets(t *testing.T) {
	for _, name := range []string{widgets.TypeListView, widgets.TypeKeyboard, widgets.TypeScrollView} {
		if factory.IsBuiltin(name) {
			t.Errorf("%q should not be builtin in lowres builds", name)
		}
		if factory.New().CreateWidget(name, nil, 0, 0, 1, 1) != nil {
			t.Errorf("%q resolved in lowres build", name)
		}
	}
	if n := len(factory.Builtins()); n != 17 {
		t.Errorf("len(Builtins()) = %d, want 17", n)
	}
}
