package a11y

import "github.com/mj1618/a11y-bridge/internal/toolkit"

// Name returns the accessible name: an explicit override, else the kind's
// name rule.
func (a *Adapter) Name() (string, bool) {
	w, err := a.widget("name")
	if err != nil {
		return "", false
	}
	if a.name != nil {
		return *a.name, true
	}
	if a.desc.Name != nil {
		return a.desc.Name(w)
	}
	return defaultName(w)
}

func defaultName(w toolkit.Widget) (string, bool) {
	if n, ok := w.(toolkit.Named); ok && n.AccessibleName() != "" {
		return n.AccessibleName(), true
	}
	if l, ok := w.(toolkit.Labeled); ok && l.Label() != "" {
		return l.Label(), true
	}
	return "", false
}

// SetName overrides the accessible name. An empty name clears the override.
func (a *Adapter) SetName(s string) bool {
	if _, err := a.widget("set name"); err != nil {
		return false
	}
	if s == "" {
		a.name = nil
	} else {
		a.name = &s
	}
	return true
}

// Description returns the widget's accessible description.
func (a *Adapter) Description() (string, bool) {
	w, err := a.widget("description")
	if err != nil {
		return "", false
	}
	if d, ok := w.(toolkit.Described); ok && d.AccessibleDescription() != "" {
		return d.AccessibleDescription(), true
	}
	return "", false
}

// TextContent returns the text a widget holds, for labels and entries.
func (a *Adapter) TextContent() (string, bool) {
	const op = "text content"
	w, err := a.widget(op)
	if err != nil {
		return "", false
	}
	t, ok := w.(toolkit.TextHolder)
	if !ok || !a.caps.Has(CapText) {
		a.fail(op, ErrUnsupported)
		return "", false
	}
	return t.Text(), true
}

// States reports the widget's current accessibility states.
func (a *Adapter) States() StateSet {
	var s StateSet
	w, err := a.widget("states")
	if err != nil {
		s.add(StateDefunct)
		return s
	}
	if a.caps.Has(CapComponent) {
		if f := w.(toolkit.Focusable); f.CanFocus() {
			s.add(StateFocusable)
		}
	}
	if h, ok := a.b.focus.Handle(); ok && h == a.h {
		s.add(StateFocused)
	}
	if m, ok := w.(toolkit.Modal); ok && m.IsModal() {
		s.add(StateModal)
	}
	if t, ok := w.(toolkit.Toggleable); ok && t.IsChecked() {
		s.add(StateChecked)
	}
	if win, ok := w.(toolkit.Windowed); ok {
		if win.IsMaximized() {
			s.add(StateMaximized)
		}
		if win.IsMinimized() {
			s.add(StateMinimized)
		}
	}
	if e, ok := w.(toolkit.Editable); ok && e.IsEditable() {
		s.add(StateEditable)
	}
	return s
}

// SetTextContents replaces the text of an editable widget.
func (a *Adapter) SetTextContents(s string) bool {
	return a.TrySetTextContents(s) == nil
}

// TrySetTextContents is SetTextContents with the failure reason. Read-only
// widgets report ErrUnsupported.
func (a *Adapter) TrySetTextContents(s string) error {
	const op = "set text contents"
	w, err := a.widget(op)
	if err != nil {
		return err
	}
	e, ok := w.(toolkit.Editable)
	if !ok || !a.caps.Has(CapText) || !e.IsEditable() {
		return a.fail(op, ErrUnsupported)
	}
	if err := e.SetText(s); err != nil {
		return a.fail(op, err)
	}
	return nil
}
