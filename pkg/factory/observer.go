package factory

// Source tells which table resolved a type name.
type Source int

const (
	SourceBuiltin Source = iota
	SourceRegistered
)

func (s Source) String() string {
	if s == SourceRegistered {
		return "registered"
	}
	return "builtin"
}

// Observer is notified of factory activity.
type Observer interface {
	// TypeRegistered is called after a runtime registration succeeds.
	TypeRegistered(name string)
	// WidgetCreated is called after a constructor ran; ok is false when it
	// returned nil or panicked.
	WidgetCreated(name string, src Source, ok bool)
	// WidgetMissed is called when no table resolves name.
	WidgetMissed(name string)
}

type nopObserver struct{}

func (nopObserver) TypeRegistered(string)              {}
func (nopObserver) WidgetCreated(string, Source, bool) {}
func (nopObserver) WidgetMissed(string)                {}
