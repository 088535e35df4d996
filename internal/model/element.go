package model

// Element is one node of an accessible tree snapshot.
type Element struct {
	ID          int       `yaml:"i"                 json:"i"`             // Sequential integer ID
	Role        string    `yaml:"r"                 json:"r"`             // Abbreviated role code
	Title       string    `yaml:"t,omitempty"       json:"t,omitempty"`   // Accessible name
	Value       string    `yaml:"v,omitempty"       json:"v,omitempty"`   // Current value or text content
	Description string    `yaml:"d,omitempty"       json:"d,omitempty"`   // Accessible or image description
	Size        []int     `yaml:"sz,flow,omitempty" json:"sz,omitempty"`  // Image [width, height]
	Focused     bool      `yaml:"f,omitempty"       json:"f,omitempty"`   // Holds the focus slot
	States      []string  `yaml:"st,flow,omitempty" json:"st,omitempty"`  // Accessibility states
	Actions     []string  `yaml:"a,flow,omitempty"  json:"a,omitempty"`   // Action names in index order
	Ref         string    `yaml:"ref,omitempty"     json:"ref,omitempty"` // Stable path reference
	Children    []Element `yaml:"c,omitempty"       json:"c,omitempty"`   // Child elements
}

// HasAction reports whether el lists the named action.
func (el Element) HasAction(name string) bool {
	for _, a := range el.Actions {
		if a == name {
			return true
		}
	}
	return false
}

// FindByID searches a tree for the element with the given ID.
func FindByID(elements []Element, id int) *Element {
	for i := range elements {
		if elements[i].ID == id {
			return &elements[i]
		}
		if found := FindByID(elements[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits elements depth-first in tree order until visit returns false.
func Walk(elements []Element, visit func(*Element) bool) bool {
	for i := range elements {
		if !visit(&elements[i]) || !Walk(elements[i].Children, visit) {
			return false
		}
	}
	return true
}
