// Package toolkit defines the boundary between the accessibility bridge and
// the native widget toolkit it observes. The bridge consumes lifecycle and
// focus notifications from a Toolkit and reads widget state through the
// small accessor interfaces below; it never owns widgets.
package toolkit

// Handle is the opaque identity of a native widget instance.
// The zero Handle never refers to a widget.
type Handle uint64

// Kind tags the type of a native widget (e.g. "window", "button").
type Kind string

// Widget is a live native widget.
type Widget interface {
	Handle() Handle
	Kind() Kind
}

// Toolkit exposes the native containment tree and widget state.
type Toolkit interface {
	// Root returns the handle of the application object.
	Root() Handle

	// Alive reports whether h refers to a widget that has not been destroyed.
	Alive(h Handle) bool

	// Kind returns the kind of a live widget.
	Kind(h Handle) (Kind, bool)

	// Widget returns the live widget for h.
	Widget(h Handle) (Widget, bool)

	// NativeChildren returns the children of h in native insertion order.
	NativeChildren(h Handle) []Handle

	// NativeParent returns the native container of h. The root has none.
	NativeParent(h Handle) (Handle, bool)

	// Subscribe registers l for lifecycle and focus notifications.
	Subscribe(l Listener)
}

// Listener receives widget notifications. All calls arrive on the toolkit's
// event loop, one at a time.
type Listener interface {
	WidgetCreated(h Handle, kind Kind)
	WidgetDestroyed(h Handle)
	WidgetReparented(h Handle, newParent Handle)
	WidgetFocusGained(h Handle)
	WidgetFocusLost(h Handle)
}
