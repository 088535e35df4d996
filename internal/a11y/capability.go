package a11y

import "strings"

// Capability is one accessibility interface an adapter can implement.
type Capability uint8

const (
	CapAction Capability = 1 << iota
	CapValue
	CapImage
	CapComponent
	CapText
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapAction, "action"},
	{CapValue, "value"},
	{CapImage, "image"},
	{CapComponent, "component"},
	{CapText, "text"},
}

func (c Capability) String() string {
	for _, n := range capabilityNames {
		if n.c == c {
			return n.name
		}
	}
	return "unknown"
}

// CapabilitySet is a bitset of capabilities.
type CapabilitySet uint8

// Caps builds a set from individual capabilities.
func Caps(cs ...Capability) CapabilitySet {
	var s CapabilitySet
	for _, c := range cs {
		s |= CapabilitySet(c)
	}
	return s
}

func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

func (s CapabilitySet) Without(c Capability) CapabilitySet {
	return s &^ CapabilitySet(c)
}

// Names returns the capability names in a fixed order.
func (s CapabilitySet) Names() []string {
	var out []string
	for _, n := range capabilityNames {
		if s.Has(n.c) {
			out = append(out, n.name)
		}
	}
	return out
}

func (s CapabilitySet) String() string {
	return strings.Join(s.Names(), ",")
}
