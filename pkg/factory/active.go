package factory

import (
	"sync/atomic"

	"github.com/go-drift/tk/pkg/errors"
)

var active atomic.Pointer[Factory]

// Active returns the process-wide factory installed with SetActive, or nil.
func Active() *Factory {
	return active.Load()
}

// SetActive installs f as the process-wide factory; nil clears the slot.
// The caller keeps ownership of f. A destroyed factory is rejected.
func SetActive(f *Factory) error {
	if f != nil && f.destroyed {
		return errors.E("factory.SetActive", "", errors.ErrDestroyed)
	}
	active.Store(f)
	return nil
}
