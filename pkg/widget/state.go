package widget

import "fmt"

// State is the visual/interaction state of a widget.
type State int

const (
	StateNormal State = iota
	StatePressed
	StateOver
	StateDisabled
	StateFocused
	StateChecked
	StateUnchecked
	StateSelected
	StateEmpty
	StateError
)

// String returns the style name of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePressed:
		return "pressed"
	case StateOver:
		return "over"
	case StateDisabled:
		return "disable"
	case StateFocused:
		return "focused"
	case StateChecked:
		return "checked"
	case StateUnchecked:
		return "unchecked"
	case StateSelected:
		return "selected"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
