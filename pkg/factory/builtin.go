package factory

import (
	"slices"

	"github.com/go-drift/tk/pkg/widget"
	"github.com/go-drift/tk/pkg/widgets"
)

// Creator pairs a widget type name with its constructor.
type Creator struct {
	Type   string
	Create widget.Constructor
}

// builtinCreators is the compiled-in table, in lookup order.
var builtinCreators = append([]Creator{
	{widgets.TypeDialog, widgets.DialogCreate},
	{widgets.TypeDialogTitle, widgets.DialogTitleCreate},
	{widgets.TypeDialogClient, widgets.DialogClientCreate},
	{widgets.TypeWindow, widgets.WindowCreate},
	{widgets.TypeImage, widgets.ImageCreate},
	{widgets.TypeButton, widgets.ButtonCreate},
	{widgets.TypeLabel, widgets.LabelCreate},
	{widgets.TypeEdit, widgets.EditCreate},
	{widgets.TypeProgressBar, widgets.ProgressBarCreate},
	{widgets.TypeSlider, widgets.SliderCreate},
	{widgets.TypeGroupBox, widgets.GroupBoxCreate},
	{widgets.TypeView, widgets.ViewCreate},
	{widgets.TypeCheckButton, widgets.CheckButtonCreate},
	{widgets.TypeRadioButton, widgets.RadioButtonCreate},
	{widgets.TypePages, widgets.PagesCreate},
	{widgets.TypeSpinBox, widgets.SpinBoxCreate},
	{widgets.TypeDragger, widgets.DraggerCreate},
}, heavyCreators...)

// Builtins returns a copy of the builtin table in lookup order.
func Builtins() []Creator {
	return slices.Clone(builtinCreators)
}

// LookupBuiltin scans the builtin table for an exact name match.
func LookupBuiltin(name string) (widget.Constructor, bool) {
	for _, c := range builtinCreators {
		if c.Type == name {
			return c.Create, true
		}
	}
	return nil, false
}

// IsBuiltin reports whether name is in the builtin table.
func IsBuiltin(name string) bool {
	_, ok := LookupBuiltin(name)
	return ok
}
