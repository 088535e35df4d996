package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Adapter is the accessibility-facing counterpart of one live widget. The
// identity map owns it; consumers hold it through Ref/Unref and must expect
// every operation to fail once the widget is destroyed.
type Adapter struct {
	b       *Bridge
	h       toolkit.Handle
	kind    toolkit.Kind
	role    Role
	caps    CapabilitySet
	desc    Descriptor
	actions []Action

	name      *string
	imageDesc *string

	// parent is a lookup key, valid while parentEpoch matches the bridge.
	parent      toolkit.Handle
	hasParent   bool
	parentEpoch uint64

	defunct bool
	refs    int
}

func (a *Adapter) Handle() toolkit.Handle { return a.h }
func (a *Adapter) Kind() toolkit.Kind { return a.kind }

// Role is fixed when the adapter is created.
func (a *Adapter) Role() Role { return a.role }

// Capabilities returns the derived capability set, or none once defunct.
func (a *Adapter) Capabilities() CapabilitySet {
	if a.defunct {
		return 0
	}
	return a.caps
}

// Has reports whether the adapter exposes capability c.
func (a *Adapter) Has(c Capability) bool {
	return a.Capabilities().Has(c)
}

// Defunct reports whether the backing widget has been destroyed.
func (a *Adapter) Defunct() bool { return a.defunct }

// Ref records a consumer hold and returns a.
func (a *Adapter) Ref() *Adapter {
	a.refs++
	return a
}

// Unref drops a hold. Extra calls are ignored.
func (a *Adapter) Unref() {
	if a.refs > 0 {
		a.refs--
	}
}

func (a *Adapter) RefCount() int { return a.refs }

// widget resolves the live widget behind a.
func (a *Adapter) widget(op string) (toolkit.Widget, error) {
	if a.defunct {
		return nil, a.fail(op, ErrStaleAdapter)
	}
	w, ok := a.b.tk.Widget(a.h)
	if !ok {
		return nil, a.fail(op, ErrStaleAdapter)
	}
	return w, nil
}

func (a *Adapter) fail(op string, err error) error {
	a.b.logger.Debug("adapter operation failed", "op", op, "handle", a.h, "kind", a.kind, "error", err)
	return opError(op, a.h, a.kind, err)
}
