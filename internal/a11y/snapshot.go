package a11y

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// SnapshotOptions controls Snapshot.
type SnapshotOptions struct {
	// Depth limits the number of levels, the start adapter included.
	// 0 means unlimited.
	Depth int
	// Refs populates stable path references.
	Refs bool
}

// Tree is a snapshot of the accessible hierarchy. Element IDs are assigned
// in document order starting at 1 and map back to the adapters they came
// from.
type Tree struct {
	Elements []model.Element
	byID     map[int]*Adapter
	ids      map[*Adapter]int
}

// Adapter returns the adapter behind element id. It may have gone defunct
// since the snapshot was taken.
func (t *Tree) Adapter(id int) (*Adapter, bool) {
	a, ok := t.byID[id]
	return a, ok
}

// ID returns the element ID a was given in this snapshot.
func (t *Tree) ID(a *Adapter) (int, bool) {
	id, ok := t.ids[a]
	return id, ok
}

// Resolve looks up an element by ref (exact or suffix match).
func (t *Tree) Resolve(ref string) (*Adapter, error) {
	el, err := model.FindElementByRef(t.Elements, ref)
	if err != nil {
		return nil, err
	}
	a, ok := t.byID[el.ID]
	if !ok {
		return nil, fmt.Errorf("element %d has no adapter", el.ID)
	}
	return a, nil
}

// Len is the number of elements in the snapshot.
func (t *Tree) Len() int { return len(t.byID) }

// Snapshot walks the accessible tree from start, or from the root when start
// is nil.
func (b *Bridge) Snapshot(start *Adapter, opts SnapshotOptions) (*Tree, error) {
	if start == nil {
		root, err := b.Root()
		if err != nil {
			return nil, err
		}
		start = root
	}
	if start.Defunct() {
		return nil, opError("snapshot", start.h, start.kind, ErrStaleAdapter)
	}
	t := &Tree{byID: make(map[int]*Adapter), ids: make(map[*Adapter]int)}
	next := 1
	t.Elements = []model.Element{b.snapshot(start, 1, opts.Depth, &next, t)}
	if opts.Refs {
		model.GenerateRefs(t.Elements)
	}
	return t, nil
}

func (b *Bridge) snapshot(a *Adapter, level, depth int, next *int, t *Tree) model.Element {
	el := b.Describe(a)
	el.ID = *next
	t.byID[el.ID] = a
	t.ids[a] = el.ID
	*next++
	if depth > 0 && level >= depth {
		return el
	}
	for _, c := range b.Children(a) {
		el.Children = append(el.Children, b.snapshot(c, level+1, depth, next, t))
	}
	return el
}

// Describe renders a single adapter without children.
func (b *Bridge) Describe(a *Adapter) model.Element {
	el := model.Element{Role: model.MapRole(a.Role().String())}
	if a.Defunct() {
		el.States = a.States().Names()
		return el
	}
	el.Title, _ = a.Name()
	if a.Has(CapValue) {
		if v, ok := a.CurrentValue(); ok {
			el.Value = v.String()
		}
	} else if text := textContent(a); text != el.Title {
		el.Value = text
	}
	if a.Has(CapImage) {
		el.Description, _ = a.ImageDescription()
		if w, h, ok := a.ImageSize(); ok {
			el.Size = []int{w, h}
		}
	} else {
		el.Description, _ = a.Description()
	}
	el.Focused = a.Focused()
	el.States = a.States().Names()
	el.Actions = a.ActionNames()
	return el
}

// textContent returns text for widgets that hold it without logging a
// failed probe for those that do not.
func textContent(a *Adapter) string {
	w, ok := a.b.tk.Widget(a.h)
	if !ok {
		return ""
	}
	if _, holds := w.(toolkit.TextHolder); !holds {
		return ""
	}
	s, _ := a.TextContent()
	return s
}
