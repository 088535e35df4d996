package a11y

// Observer receives bridge events. Calls arrive on the toolkit's event loop.
type Observer interface {
	AdapterCreated(a *Adapter)
	AdapterReleased(a *Adapter)
	// FocusChanged reports a move of the focus slot; nil means unfocused.
	FocusChanged(prev, next *Adapter)
	InvariantViolated(err error)
}

// NopObserver ignores everything. Embed it to implement a subset.
type NopObserver struct{}

func (NopObserver) AdapterCreated(*Adapter) {}
func (NopObserver) AdapterReleased(*Adapter) {}
func (NopObserver) FocusChanged(_, _ *Adapter) {}
func (NopObserver) InvariantViolated(error) {}
