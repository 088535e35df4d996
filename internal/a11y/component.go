package a11y

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// GrabFocus is TryGrabFocus without the reason.
func (a *Adapter) GrabFocus() bool {
	return a.TryGrabFocus() == nil
}

// TryGrabFocus moves native focus to the widget. On success the focus
// tracker names a before it returns. Widgets hidden from the hierarchy
// refuse focus.
func (a *Adapter) TryGrabFocus() error {
	const op = "grab focus"
	w, err := a.widget(op)
	if err != nil {
		return err
	}
	if !a.caps.Has(CapComponent) {
		return a.fail(op, ErrUnsupported)
	}
	f := w.(toolkit.Focusable)
	if !f.CanFocus() {
		return a.fail(op, fmt.Errorf("%w: widget cannot take focus now", ErrUnsupported))
	}
	if !a.b.Reachable(a) {
		return a.fail(op, fmt.Errorf("%w: widget is hidden from the hierarchy", ErrUnsupported))
	}
	if err := f.Focus(); err != nil {
		return a.fail(op, err)
	}
	a.b.focus.Set(a)
	return nil
}

// Focused reports whether a holds the focus slot.
func (a *Adapter) Focused() bool {
	cur, ok := a.b.focus.Current()
	return ok && cur == a
}
