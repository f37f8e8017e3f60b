//go:build !lowres

package factory

import "github.com/go-drift/tk/pkg/widgets"

// heavyCreators are left out of low-resource builds.
var heavyCreators = []Creator{
	{widgets.TypeScrollView, widgets.ScrollViewCreate},
	{widgets.TypeListView, widgets.ListViewCreate},
	{widgets.TypeListViewH, widgets.ListViewHCreate},
	{widgets.TypeListItem, widgets.ListItemCreate},
	{widgets.TypeScrollBar, widgets.ScrollBarCreate},
	{widgets.TypeScrollBarD, widgets.ScrollBarCreateDesktop},
	{widgets.TypeScrollBarM, widgets.ScrollBarCreateMobile},
	{widgets.TypeSlideView, widgets.SlideViewCreate},
	{widgets.TypeKeyboard, widgets.KeyboardCreate},
	{widgets.TypeCandidates, widgets.CandidatesCreate},
}
