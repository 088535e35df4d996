package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// FocusTracker holds the single global focus slot. The slot stores a handle
// key, never an adapter, and is either empty or names a live adapter.
type FocusTracker struct {
	b *Bridge
	h toolkit.Handle
}

// Set moves the slot to a. A nil adapter empties it.
func (f *FocusTracker) Set(a *Adapter) {
	if a == nil {
		f.clear("set")
		return
	}
	if a.h == f.h {
		return
	}
	prev, _ := f.b.ids.Lookup(f.h)
	f.h = a.h
	f.b.logger.Debug("focus changed", "from", prevHandle(prev), "to", a.h, "role", a.role.String())
	f.notify(prev, a)
}

// Lost empties the slot if it names h. A late loss for a widget that is no
// longer focused is ignored.
func (f *FocusTracker) Lost(h toolkit.Handle) {
	if f.h != 0 && f.h == h {
		f.clear("lost")
	}
}

// Forget is Lost for a widget that is being destroyed.
func (f *FocusTracker) Forget(h toolkit.Handle) {
	if f.h != 0 && f.h == h {
		f.clear("destroyed")
	}
}

// Handle returns the raw slot without validating it.
func (f *FocusTracker) Handle() (toolkit.Handle, bool) {
	return f.h, f.h != 0
}

// Current returns the focused adapter. A slot naming a handle the identity
// map does not hold is a tracker bug: it is reported, the slot is reset,
// and in strict mode the call panics.
func (f *FocusTracker) Current() (*Adapter, bool) {
	if f.h == 0 {
		return nil, false
	}
	a, ok := f.b.ids.Lookup(f.h)
	if !ok {
		err := opError("current focus", f.h, "", ErrFocusDesync)
		f.b.logger.Error("invariant violated", "error", err)
		for _, o := range f.b.observers {
			o.InvariantViolated(err)
		}
		f.h = 0
		if f.b.strict {
			panic(err)
		}
		return nil, false
	}
	return a, true
}

func (f *FocusTracker) clear(reason string) {
	if f.h == 0 {
		return
	}
	prev, _ := f.b.ids.Lookup(f.h)
	f.b.logger.Debug("focus cleared", "handle", f.h, "reason", reason)
	f.h = 0
	f.notify(prev, nil)
}

func (f *FocusTracker) notify(prev, next *Adapter) {
	for _, o := range f.b.observers {
		o.FocusChanged(prev, next)
	}
}

func prevHandle(a *Adapter) toolkit.Handle {
	if a == nil {
		return 0
	}
	return a.h
}
