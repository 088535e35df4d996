package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// IdentityMap keeps at most one adapter per live widget handle.
type IdentityMap struct {
	b        *Bridge
	adapters map[toolkit.Handle]*Adapter
}

func newIdentityMap(b *Bridge) *IdentityMap {
	return &IdentityMap{b: b, adapters: make(map[toolkit.Handle]*Adapter)}
}

// AdapterFor returns the adapter for h, creating it on first use. Repeated
// calls for the same live handle return the same adapter.
func (m *IdentityMap) AdapterFor(h toolkit.Handle) (*Adapter, error) {
	if a, ok := m.adapters[h]; ok {
		if m.b.tk.Alive(h) {
			return a, nil
		}
		// Destroyed without a notification reaching us yet.
		m.Release(h)
		return nil, opError("adapter for", h, a.kind, ErrStaleAdapter)
	}

	w, ok := m.b.tk.Widget(h)
	if !ok {
		return nil, opError("adapter for", h, "", ErrStaleAdapter)
	}
	d, err := m.b.reg.Describe(w.Kind())
	if err != nil {
		return nil, opError("adapter for", h, w.Kind(), err)
	}

	dv := d.derive(w)
	a := &Adapter{
		b:       m.b,
		h:       h,
		kind:    w.Kind(),
		role:    dv.role,
		caps:    dv.caps,
		desc:    d,
		actions: dv.actions,
	}
	m.adapters[h] = a
	m.b.logger.Debug("adapter created", "handle", h, "kind", a.kind, "role", a.role.String(), "caps", a.caps.String())
	for _, o := range m.b.observers {
		o.AdapterCreated(a)
	}
	return a, nil
}

// Lookup returns the cached adapter for h without creating one.
func (m *IdentityMap) Lookup(h toolkit.Handle) (*Adapter, bool) {
	a, ok := m.adapters[h]
	return a, ok
}

// Release marks the adapter for h defunct and drops it, clearing the focus
// slot if it names h. It reports whether there was anything to release.
func (m *IdentityMap) Release(h toolkit.Handle) bool {
	m.b.focus.Forget(h)
	a, ok := m.adapters[h]
	if !ok {
		return false
	}
	a.defunct = true
	delete(m.adapters, h)
	m.b.logger.Debug("adapter released", "handle", h, "kind", a.kind, "refs", a.refs)
	for _, o := range m.b.observers {
		o.AdapterReleased(a)
	}
	return true
}

// Len is the number of live adapters.
func (m *IdentityMap) Len() int { return len(m.adapters) }
