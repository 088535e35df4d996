package session

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
)

// Describe reports the target with its hierarchy position. Parent is 0 for
// the root.
func (s *Session) Describe(r *Resolved) output.DescribeResult {
	res := output.DescribeResult{
		Element:      r.Element,
		Capabilities: r.Adapter.Capabilities().Names(),
		Index:        s.Bridge.IndexInParent(r.Adapter),
		ChildCount:   s.Bridge.ChildCount(r.Adapter),
	}
	if p, ok := s.Bridge.Parent(r.Adapter); ok {
		res.Parent, _ = r.Tree.ID(p)
	}
	return res
}

// Children lists the target's children without their subtrees.
func (s *Session) Children(r *Resolved) []model.Element {
	children := []model.Element{}
	for _, c := range s.Bridge.Children(r.Adapter) {
		el := s.Bridge.Describe(c)
		el.ID, _ = r.Tree.ID(c)
		if full := model.FindByID(r.Tree.Elements, el.ID); full != nil {
			el.Ref = full.Ref
		}
		children = append(children, el)
	}
	return children
}

// Parent describes the target's parent. The root has none.
func (s *Session) Parent(r *Resolved) (*model.Element, error) {
	p, ok := s.Bridge.Parent(r.Adapter)
	if !ok {
		return nil, fmt.Errorf("%s %d has no parent", r.Adapter.Role(), r.Element.ID)
	}
	id, _ := r.Tree.ID(p)
	el := *model.FindByID(r.Tree.Elements, id)
	el.Children = nil
	return &el, nil
}

// Actions lists the target's actions in index order.
func (s *Session) Actions(r *Resolved) output.ActionsResult {
	res := output.ActionsResult{ID: r.Element.ID, Role: r.Element.Role, Actions: []output.ActionInfo{}}
	for i := 0; i < r.Adapter.ActionCount(); i++ {
		name, _ := r.Adapter.ActionName(i)
		desc, _ := r.Adapter.ActionDescription(i)
		res.Actions = append(res.Actions, output.ActionInfo{Index: i, Name: name, Description: desc})
	}
	return res
}

// Value reads the target's value quadruple.
func (s *Session) Value(r *Resolved) (output.ValueResult, error) {
	vr, ok := r.Adapter.Range()
	if !ok {
		return output.ValueResult{}, fmt.Errorf("%s has no value: %w", r.Adapter.Role(), a11y.ErrUnsupported)
	}
	return output.ValueResult{
		ID:        r.Element.ID,
		Role:      r.Element.Role,
		Current:   vr.Current.String(),
		Minimum:   vr.Minimum.String(),
		Maximum:   vr.Maximum.String(),
		Increment: vr.Increment.String(),
		Text:      vr.Current.IsText,
		Writable:  r.Adapter.WritableValue(),
	}, nil
}

// Image reads the target's image size and description.
func (s *Session) Image(r *Resolved) (output.ImageResult, error) {
	w, h, ok := r.Adapter.ImageSize()
	if !ok {
		return output.ImageResult{}, fmt.Errorf("%s has no image: %w", r.Adapter.Role(), a11y.ErrUnsupported)
	}
	desc, _ := r.Adapter.ImageDescription()
	return output.ImageResult{ID: r.Element.ID, Role: r.Element.Role, Width: w, Height: h, Description: desc}, nil
}
