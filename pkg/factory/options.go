package factory

import (
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultNameLen is the default bound on registered type names, in bytes.
const DefaultNameLen = 31

// Options configures a Factory.
type Options struct {
	// NameLen bounds registered type names in bytes. Zero means
	// DefaultNameLen.
	NameLen int
	// StrictNames rejects names longer than NameLen with ErrBadParams
	// instead of truncating them.
	StrictNames bool
	// MaxTypes caps the number of runtime registrations; zero is unlimited.
	// Registering past the cap fails with ErrOutOfMemory.
	MaxTypes int
	// Observer is notified of registrations and creations. Optional.
	Observer Observer
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.NameLen <= 0 {
		o.NameLen = DefaultNameLen
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// truncateName cuts s to at most n bytes without splitting a rune.
func truncateName(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
