package a11y

// State is a single accessibility state flag.
type State uint16

const (
	StateFocusable State = 1 << iota
	StateFocused
	StateModal
	StateChecked
	StateMaximized
	StateMinimized
	StateEditable
	StateDefunct
)

var stateNames = []struct {
	s    State
	name string
}{
	{StateFocusable, "focusable"},
	{StateFocused, "focused"},
	{StateModal, "modal"},
	{StateChecked, "checked"},
	{StateMaximized, "maximized"},
	{StateMinimized, "minimized"},
	{StateEditable, "editable"},
	{StateDefunct, "defunct"},
}

// StateSet is a bitset of states.
type StateSet uint16

func (s StateSet) Has(st State) bool { return s&StateSet(st) != 0 }

func (s *StateSet) add(st State) { *s |= StateSet(st) }

// Names returns the set's state names in a fixed order.
func (s StateSet) Names() []string {
	var out []string
	for _, n := range stateNames {
		if s.Has(n.s) {
			out = append(out, n.name)
		}
	}
	return out
}
