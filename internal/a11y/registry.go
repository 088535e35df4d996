package a11y

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// Descriptor is the static accessibility description of one widget kind.
type Descriptor struct {
	Kind toolkit.Kind
	Role Role

	// RoleFor, when set, picks the role from the widget's state at adapter
	// creation. A RoleInvalid result falls back to Role.
	RoleFor func(w toolkit.Widget) Role

	Caps CapabilitySet

	// Name overrides the default name rule (accessible name, else label).
	Name func(w toolkit.Widget) (string, bool)

	// Children replaces the native child rule with the widget's logical
	// children. Unregistered handles in the result are transparent.
	Children func(w toolkit.Widget) []toolkit.Handle

	// Actions builds the ordered action table for one widget.
	Actions func(w toolkit.Widget) []Action

	Value *ValueAccessor
}

// ValueAccessor reads, and optionally writes, a widget's value.
type ValueAccessor struct {
	Read func(w toolkit.Widget) (ValueRange, bool)
	// Write is nil for read-only values.
	Write func(w toolkit.Widget, v Value) error
}

// Registry maps widget kinds to descriptors. It is built once at startup and
// read without locking afterwards.
type Registry struct {
	descs map[toolkit.Kind]Descriptor
}

func NewRegistry() *Registry {
	return &Registry{descs: make(map[toolkit.Kind]Descriptor)}
}

// Register adds d. Each kind may be registered once.
func (r *Registry) Register(d Descriptor) error {
	if d.Kind == "" {
		return errors.New("descriptor has no kind")
	}
	if d.Role == RoleInvalid {
		return fmt.Errorf("descriptor %q has no role", d.Kind)
	}
	if _, dup := r.descs[d.Kind]; dup {
		return fmt.Errorf("kind %q already registered", d.Kind)
	}
	r.descs[d.Kind] = d
	return nil
}

// MustRegister is Register for static tables.
func (r *Registry) MustRegister(ds ...Descriptor) *Registry {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
	return r
}

// Describe returns the descriptor for kind.
func (r *Registry) Describe(kind toolkit.Kind) (Descriptor, error) {
	d, ok := r.descs[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnsupportedWidgetKind, kind)
	}
	return d, nil
}

// Known reports whether kind is exposed.
func (r *Registry) Known(kind toolkit.Kind) bool {
	_, ok := r.descs[kind]
	return ok
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []toolkit.Kind {
	out := make([]toolkit.Kind, 0, len(r.descs))
	for k := range r.descs {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// derived is what capability derivation produces for one widget.
type derived struct {
	role    Role
	caps    CapabilitySet
	actions []Action
}

// derive evaluates d against a live widget. Capabilities the widget cannot
// back are dropped.
func (d Descriptor) derive(w toolkit.Widget) derived {
	out := derived{role: d.Role, caps: d.Caps}
	if d.RoleFor != nil {
		if r := d.RoleFor(w); r != RoleInvalid {
			out.role = r
		}
	}
	if out.caps.Has(CapAction) {
		if d.Actions != nil {
			out.actions = d.Actions(w)
		}
		if len(out.actions) == 0 {
			out.caps = out.caps.Without(CapAction)
		}
	}
	if out.caps.Has(CapValue) {
		if d.Value == nil || d.Value.Read == nil {
			out.caps = out.caps.Without(CapValue)
		} else if _, ok := d.Value.Read(w); !ok {
			out.caps = out.caps.Without(CapValue)
		}
	}
	if _, ok := w.(toolkit.Pictured); !ok {
		out.caps = out.caps.Without(CapImage)
	}
	if _, ok := w.(toolkit.Focusable); !ok {
		out.caps = out.caps.Without(CapComponent)
	}
	return out
}
