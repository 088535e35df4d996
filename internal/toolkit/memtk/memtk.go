// Package memtk is an in-memory widget toolkit. It keeps a native
// containment tree, delivers lifecycle and focus notifications to
// subscribers, and can be populated from a YAML fixture. Tests and the CLI
// drive the accessibility bridge through it.
package memtk

import (
	"errors"
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Errors returned by tree mutations.
var (
	ErrNoSuchWidget = errors.New("no such widget")
	ErrUnknownKind  = errors.New("unknown widget kind")
	ErrNotFocusable = errors.New("widget cannot take focus")
	ErrCycle        = errors.New("reparent would create a cycle")
	ErrRootWidget   = errors.New("operation not allowed on the application root")
	ErrDuplicateID  = errors.New("duplicate widget id")
)

type node struct {
	widget   toolkit.Widget
	parent   toolkit.Handle
	children []toolkit.Handle
	id       string
}

// Toolkit is an in-memory toolkit.Toolkit. It is not safe for concurrent
// use; like a real event loop, all calls must come from one goroutine.
type Toolkit struct {
	next      toolkit.Handle
	root      toolkit.Handle
	nodes     map[toolkit.Handle]*node
	ids       map[string]toolkit.Handle
	focused   toolkit.Handle
	listeners []toolkit.Listener
	baseDir   string
}

var _ toolkit.Toolkit = (*Toolkit)(nil)

// New creates a toolkit holding only an application root with the given title.
func New(appTitle string) *Toolkit {
	tk := &Toolkit{
		nodes: make(map[toolkit.Handle]*node),
		ids:   make(map[string]toolkit.Handle),
	}
	tk.next++
	h := tk.next
	tk.root = h
	tk.nodes[h] = &node{widget: &Application{base: base{h: h, kind: KindApplication}, Title: appTitle}}
	return tk
}

// Root implements toolkit.Toolkit.
func (tk *Toolkit) Root() toolkit.Handle { return tk.root }

// Alive implements toolkit.Toolkit.
func (tk *Toolkit) Alive(h toolkit.Handle) bool {
	_, ok := tk.nodes[h]
	return ok
}

// Kind implements toolkit.Toolkit.
func (tk *Toolkit) Kind(h toolkit.Handle) (toolkit.Kind, bool) {
	n, ok := tk.nodes[h]
	if !ok {
		return "", false
	}
	return n.widget.Kind(), true
}

// Widget implements toolkit.Toolkit.
func (tk *Toolkit) Widget(h toolkit.Handle) (toolkit.Widget, bool) {
	n, ok := tk.nodes[h]
	if !ok {
		return nil, false
	}
	return n.widget, true
}

// NativeChildren implements toolkit.Toolkit. The returned slice is a copy.
func (tk *Toolkit) NativeChildren(h toolkit.Handle) []toolkit.Handle {
	n, ok := tk.nodes[h]
	if !ok || len(n.children) == 0 {
		return nil
	}
	out := make([]toolkit.Handle, len(n.children))
	copy(out, n.children)
	return out
}

// NativeParent implements toolkit.Toolkit.
func (tk *Toolkit) NativeParent(h toolkit.Handle) (toolkit.Handle, bool) {
	n, ok := tk.nodes[h]
	if !ok || h == tk.root {
		return 0, false
	}
	return n.parent, true
}

// Subscribe implements toolkit.Toolkit.
func (tk *Toolkit) Subscribe(l toolkit.Listener) {
	tk.listeners = append(tk.listeners, l)
}

// Lookup returns the handle registered under a fixture id.
func (tk *Toolkit) Lookup(id string) (toolkit.Handle, bool) {
	h, ok := tk.ids[id]
	if ok && !tk.Alive(h) {
		return 0, false
	}
	return h, ok
}

// MustLookup is Lookup for tests and fixtures known to be well formed.
func (tk *Toolkit) MustLookup(id string) toolkit.Handle {
	h, ok := tk.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("memtk: no widget with id %q", id))
	}
	return h
}

// Focused returns the widget holding native focus, if any.
func (tk *Toolkit) Focused() (toolkit.Handle, bool) {
	return tk.focused, tk.focused != 0
}

// Create adds a widget of the given kind under parent (0 means the
// application root). Props are decoded into the kind's option struct.
func (tk *Toolkit) Create(parent toolkit.Handle, kind toolkit.Kind, props map[string]any) (toolkit.Handle, error) {
	return tk.create(parent, kind, "", props)
}

// CreateWithID is Create plus a fixture id usable with Lookup.
func (tk *Toolkit) CreateWithID(parent toolkit.Handle, kind toolkit.Kind, id string, props map[string]any) (toolkit.Handle, error) {
	return tk.create(parent, kind, id, props)
}

func (tk *Toolkit) create(parent toolkit.Handle, kind toolkit.Kind, id string, props map[string]any) (toolkit.Handle, error) {
	if parent == 0 {
		parent = tk.root
	}
	pn, ok := tk.nodes[parent]
	if !ok {
		return 0, fmt.Errorf("create %s: parent %d: %w", kind, parent, ErrNoSuchWidget)
	}
	if id != "" {
		if _, dup := tk.ids[id]; dup {
			return 0, fmt.Errorf("create %s: %w %q", kind, ErrDuplicateID, id)
		}
	}
	build, ok := constructors[kind]
	if !ok {
		return 0, fmt.Errorf("create: %w %q", ErrUnknownKind, kind)
	}

	h := tk.next + 1
	w, err := build(base{h: h, kind: kind, tk: tk}, props, tk.baseDir)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", kind, err)
	}
	tk.next = h
	tk.nodes[h] = &node{widget: w, parent: parent, id: id}
	pn.children = append(pn.children, h)
	if id != "" {
		tk.ids[id] = h
	}

	for _, l := range tk.listeners {
		l.WidgetCreated(h, kind)
	}
	return h, nil
}

// Destroy removes h and its whole subtree. Descendants are destroyed first
// and every destroyed widget is reported to listeners.
func (tk *Toolkit) Destroy(h toolkit.Handle) error {
	if h == tk.root {
		return fmt.Errorf("destroy: %w", ErrRootWidget)
	}
	n, ok := tk.nodes[h]
	if !ok {
		return fmt.Errorf("destroy %d: %w", h, ErrNoSuchWidget)
	}
	for _, c := range tk.NativeChildren(h) {
		if err := tk.Destroy(c); err != nil {
			return err
		}
	}

	if tk.focused == h {
		tk.focused = 0
		for _, l := range tk.listeners {
			l.WidgetFocusLost(h)
		}
	}
	if pn, ok := tk.nodes[n.parent]; ok {
		pn.children = removeHandle(pn.children, h)
	}
	if n.id != "" {
		delete(tk.ids, n.id)
	}
	delete(tk.nodes, h)

	for _, l := range tk.listeners {
		l.WidgetDestroyed(h)
	}
	return nil
}

// Reparent moves h (with its subtree) to the end of newParent's children.
func (tk *Toolkit) Reparent(h, newParent toolkit.Handle) error {
	if h == tk.root {
		return fmt.Errorf("reparent: %w", ErrRootWidget)
	}
	n, ok := tk.nodes[h]
	if !ok {
		return fmt.Errorf("reparent %d: %w", h, ErrNoSuchWidget)
	}
	if newParent == 0 {
		newParent = tk.root
	}
	np, ok := tk.nodes[newParent]
	if !ok {
		return fmt.Errorf("reparent to %d: %w", newParent, ErrNoSuchWidget)
	}
	for p := newParent; ; {
		if p == h {
			return fmt.Errorf("reparent %d under %d: %w", h, newParent, ErrCycle)
		}
		next, ok := tk.NativeParent(p)
		if !ok {
			break
		}
		p = next
	}

	if old, ok := tk.nodes[n.parent]; ok {
		old.children = removeHandle(old.children, h)
	}
	n.parent = newParent
	np.children = append(np.children, h)

	for _, l := range tk.listeners {
		l.WidgetReparented(h, newParent)
	}
	return nil
}

// Focus moves native focus to h, as a click or Tab press would. The gain
// for h is reported before the loss for the previously focused widget.
func (tk *Toolkit) Focus(h toolkit.Handle) error {
	n, ok := tk.nodes[h]
	if !ok {
		return fmt.Errorf("focus %d: %w", h, ErrNoSuchWidget)
	}
	f, ok := n.widget.(toolkit.Focusable)
	if !ok || !f.CanFocus() {
		return fmt.Errorf("focus %d (%s): %w", h, n.widget.Kind(), ErrNotFocusable)
	}
	if tk.focused == h {
		return nil
	}
	prev := tk.focused
	tk.focused = h
	for _, l := range tk.listeners {
		l.WidgetFocusGained(h)
	}
	// The previous widget hears about the loss after its successor is known.
	if prev != 0 {
		for _, l := range tk.listeners {
			l.WidgetFocusLost(prev)
		}
	}
	return nil
}

// Blur drops native focus without a successor.
func (tk *Toolkit) Blur() {
	prev := tk.focused
	if prev == 0 {
		return
	}
	tk.focused = 0
	for _, l := range tk.listeners {
		l.WidgetFocusLost(prev)
	}
}

// descendants walks the subtree under h in native order (h excluded).
func (tk *Toolkit) descendants(h toolkit.Handle, visit func(toolkit.Handle) bool) bool {
	for _, c := range tk.NativeChildren(h) {
		if !visit(c) {
			return false
		}
		if !tk.descendants(c, visit) {
			return false
		}
	}
	return true
}

func removeHandle(hs []toolkit.Handle, h toolkit.Handle) []toolkit.Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}
