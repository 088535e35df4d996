package a11y

// Action is one named operation of an adapter. Indices are stable for the
// adapter's lifetime.
type Action struct {
	Name        string
	Description string
	Do          func() error
}

func (a *Adapter) hasActions() bool {
	return !a.defunct && a.caps.Has(CapAction)
}

// ActionCount is the number of actions the widget exposes.
func (a *Adapter) ActionCount() int {
	if !a.hasActions() {
		return 0
	}
	return len(a.actions)
}

func (a *Adapter) action(op string, i int) (*Action, error) {
	if a.defunct {
		return nil, a.fail(op, ErrStaleAdapter)
	}
	if !a.caps.Has(CapAction) {
		return nil, a.fail(op, ErrUnsupported)
	}
	if i < 0 || i >= len(a.actions) {
		return nil, a.fail(op, ErrIndexOutOfRange)
	}
	return &a.actions[i], nil
}

// ActionName returns the name of action i.
func (a *Adapter) ActionName(i int) (string, bool) {
	act, err := a.action("action name", i)
	if err != nil {
		return "", false
	}
	return act.Name, true
}

// ActionDescription returns the description of action i, if one is set.
func (a *Adapter) ActionDescription(i int) (string, bool) {
	act, err := a.action("action description", i)
	if err != nil {
		return "", false
	}
	return act.Description, true
}

// SetActionDescription attaches a description to action i.
func (a *Adapter) SetActionDescription(i int, s string) bool {
	act, err := a.action("set action description", i)
	if err != nil {
		return false
	}
	act.Description = s
	return true
}

// ActionNames lists action names in index order.
func (a *Adapter) ActionNames() []string {
	if !a.hasActions() {
		return nil
	}
	names := make([]string, len(a.actions))
	for i, act := range a.actions {
		names[i] = act.Name
	}
	return names
}

// ActionIndex returns the index of the named action, or -1.
func (a *Adapter) ActionIndex(name string) int {
	if !a.hasActions() {
		return -1
	}
	for i, act := range a.actions {
		if act.Name == name {
			return i
		}
	}
	return -1
}

// Invoke performs action i and reports whether it ran.
func (a *Adapter) Invoke(i int) bool {
	return a.TryInvoke(i) == nil
}

// TryInvoke is Invoke with the failure reason.
func (a *Adapter) TryInvoke(i int) error {
	const op = "invoke"
	act, err := a.action(op, i)
	if err != nil {
		return err
	}
	if _, err := a.widget(op); err != nil {
		return err
	}
	if err := act.Do(); err != nil {
		return a.fail(op+" "+act.Name, err)
	}
	a.b.logger.Debug("action invoked", "handle", a.h, "kind", a.kind, "action", act.Name)
	return nil
}
