package session

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/model"
)

// ReadOptions narrows a snapshot for display.
type ReadOptions struct {
	Depth   int
	ScopeID int
	Roles   string
	Text    string
	Focused bool
	Modal   bool
	Prune   bool
}

// ReadParams reads the tree filtering keys from a step or tool argument map.
func ReadParams(params map[string]interface{}) ReadOptions {
	return ReadOptions{
		Depth:   IntParam(params, "depth", 0),
		ScopeID: IntParam(params, "scope-id", 0),
		Roles:   StringParam(params, "roles", ""),
		Text:    StringParam(params, "text", ""),
		Focused: BoolParam(params, "focused", false),
		Modal:   BoolParam(params, "modal", false),
		Prune:   BoolParam(params, "prune", false),
	}
}

// SplitRoles parses a comma separated role list and expands meta-roles.
func SplitRoles(roles string) []string {
	var list []string
	for _, r := range strings.Split(roles, ",") {
		if r = strings.TrimSpace(r); r != "" {
			list = append(list, r)
		}
	}
	return model.ExpandRoles(list)
}

// Filter applies opts to a snapshot. The snapshot itself is not modified.
func Filter(tree *a11y.Tree, opts ReadOptions) ([]model.Element, error) {
	elements := tree.Elements
	if opts.ScopeID > 0 {
		scope := model.FindByID(elements, opts.ScopeID)
		if scope == nil {
			return nil, fmt.Errorf("scope element with id %d not found", opts.ScopeID)
		}
		elements = scope.Children
	}
	if opts.Modal {
		modal := model.DetectModal(elements)
		if modal == nil {
			return nil, fmt.Errorf("no modal dialog is open")
		}
		elements = []model.Element{*modal}
	}
	if opts.Roles != "" {
		elements = model.FilterElements(elements, SplitRoles(opts.Roles))
	}
	if opts.Text != "" {
		elements = model.FilterByText(elements, opts.Text)
	}
	if opts.Focused {
		elements = model.FilterByFocused(elements)
	}
	if opts.Prune {
		elements = model.PruneEmptyGroups(elements)
	}
	if elements == nil {
		elements = []model.Element{}
	}
	return elements, nil
}

// FocusID is the snapshot ID of the focused adapter, or 0.
func (s *Session) FocusID(tree *a11y.Tree) int {
	cur, ok := s.Bridge.CurrentFocus()
	if !ok {
		return 0
	}
	id, _ := tree.ID(cur)
	return id
}
