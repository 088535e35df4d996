package a11y

import (
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// registered reports whether h is a live widget of an exposed kind.
func (b *Bridge) registered(h toolkit.Handle) bool {
	k, ok := b.tk.Kind(h)
	return ok && b.reg.Known(k)
}

// override returns the logical child set of h when its kind replaces the
// native child rule.
func (b *Bridge) override(h toolkit.Handle) (map[toolkit.Handle]bool, bool) {
	k, ok := b.tk.Kind(h)
	if !ok {
		return nil, false
	}
	d, err := b.reg.Describe(k)
	if err != nil || d.Children == nil {
		return nil, false
	}
	w, ok := b.tk.Widget(h)
	if !ok {
		return nil, false
	}
	set := make(map[toolkit.Handle]bool)
	for _, c := range d.Children(w) {
		set[c] = true
	}
	return set, true
}

// promote lists the registered descendants of h reached through
// unregistered widgets only, in native order.
func (b *Bridge) promote(h toolkit.Handle) []toolkit.Handle {
	var out []toolkit.Handle
	for _, c := range b.tk.NativeChildren(h) {
		if b.registered(c) {
			out = append(out, c)
		} else {
			out = append(out, b.promote(c)...)
		}
	}
	return out
}

// candidates is the child rule for a before parent filtering.
func (b *Bridge) candidates(a *Adapter) []toolkit.Handle {
	if a.desc.Children == nil {
		return b.promote(a.h)
	}
	w, ok := b.tk.Widget(a.h)
	if !ok {
		return nil
	}
	var out []toolkit.Handle
	seen := make(map[toolkit.Handle]bool)
	for _, c := range a.desc.Children(w) {
		if seen[c] || !b.tk.Alive(c) {
			continue
		}
		seen[c] = true
		if b.registered(c) {
			out = append(out, c)
		} else {
			out = append(out, b.promote(c)...)
		}
	}
	return out
}

// parentHandle computes the accessible parent of h. The nearest ancestor
// with a logical child rule claims the subtrees of its logical children and
// hides the rest; without one, the nearest registered ancestor wins.
func (b *Bridge) parentHandle(h toolkit.Handle) (toolkit.Handle, bool) {
	if h == b.tk.Root() {
		return 0, false
	}
	path := []toolkit.Handle{h}
	for cur := h; ; {
		p, ok := b.tk.NativeParent(cur)
		if !ok {
			break
		}
		if claimed, ok := b.override(p); ok {
			return claimedParent(b, path, p, claimed)
		}
		path = append(path, p)
		cur = p
	}
	for _, p := range path[1:] {
		if b.registered(p) {
			return p, true
		}
	}
	return 0, false
}

func claimedParent(b *Bridge, path []toolkit.Handle, owner toolkit.Handle, claimed map[toolkit.Handle]bool) (toolkit.Handle, bool) {
	for j, x := range path {
		if !claimed[x] {
			continue
		}
		for _, p := range path[1 : j+1] {
			if b.registered(p) {
				return p, true
			}
		}
		return owner, true
	}
	return 0, false
}

// Parent returns the accessible parent of a. The root and hidden widgets
// have none.
func (b *Bridge) Parent(a *Adapter) (*Adapter, bool) {
	if a == nil || a.defunct {
		return nil, false
	}
	if a.parentEpoch != b.epoch {
		a.parent, a.hasParent = b.parentHandle(a.h)
		a.parentEpoch = b.epoch
	}
	if !a.hasParent {
		return nil, false
	}
	p, err := b.ids.AdapterFor(a.parent)
	if err != nil {
		b.logger.Debug("parent lookup failed", "handle", a.h, "error", err)
		return nil, false
	}
	return p, true
}

// Reachable reports whether a can be reached from Root by following
// children, i.e. no overlay hides it or any of its ancestors.
func (b *Bridge) Reachable(a *Adapter) bool {
	root := b.tk.Root()
	for cur := a; cur != nil; {
		if cur.h == root {
			return true
		}
		p, ok := b.Parent(cur)
		if !ok {
			return false
		}
		cur = p
	}
	return false
}

// Children returns the accessible children of a in order.
func (b *Bridge) Children(a *Adapter) []*Adapter {
	if a == nil || a.defunct {
		return nil
	}
	var out []*Adapter
	for _, h := range b.candidates(a) {
		c, err := b.ids.AdapterFor(h)
		if err != nil {
			b.logger.Debug("child skipped", "parent", a.h, "child", h, "error", err)
			continue
		}
		if p, ok := b.Parent(c); !ok || p != a {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ChildCount is len(Children(a)).
func (b *Bridge) ChildCount(a *Adapter) int {
	return len(b.Children(a))
}

// ChildAt returns the i-th child of a, or none when i is out of range.
func (b *Bridge) ChildAt(a *Adapter, i int) (*Adapter, bool) {
	kids := b.Children(a)
	if i < 0 || i >= len(kids) {
		if a != nil {
			b.logger.Debug("child index out of range", "handle", a.h, "index", i, "count", len(kids), "error", ErrIndexOutOfRange)
		}
		return nil, false
	}
	return kids[i], true
}

// IndexInParent is the position of a among its parent's children, or -1.
func (b *Bridge) IndexInParent(a *Adapter) int {
	p, ok := b.Parent(a)
	if !ok {
		return -1
	}
	for i, c := range b.Children(p) {
		if c == a {
			return i
		}
	}
	return -1
}
