package session

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/model"
)

// Target addresses one element by snapshot ID, ref or text. ID wins over
// Ref, Ref over Text.
type Target struct {
	ID      int
	Ref     string
	Text    string
	Roles   string
	Exact   bool
	ScopeID int
}

// IsZero reports whether no addressing field is set.
func (t Target) IsZero() bool {
	return t.ID == 0 && t.Ref == "" && t.Text == ""
}

// Resolved is a target bound to its adapter and a fresh description.
type Resolved struct {
	Adapter *a11y.Adapter
	Element model.Element
	Tree    *a11y.Tree
}

// Resolve takes a fresh snapshot and finds the target in it.
func (s *Session) Resolve(t Target) (*Resolved, error) {
	if t.IsZero() {
		return nil, fmt.Errorf("specify id, ref or text to target an element")
	}
	tree, err := s.Snapshot(0)
	if err != nil {
		return nil, err
	}
	var el *model.Element
	switch {
	case t.ID > 0:
		el = model.FindByID(tree.Elements, t.ID)
		if el == nil {
			return nil, fmt.Errorf("element with id %d not found", t.ID)
		}
	case t.Ref != "":
		el, err = model.FindElementByRef(tree.Elements, t.Ref)
		if err != nil {
			return nil, err
		}
	default:
		el, err = MatchText(tree.Elements, t)
		if err != nil {
			return nil, err
		}
	}
	a, ok := tree.Adapter(el.ID)
	if !ok {
		return nil, fmt.Errorf("element %d has no adapter", el.ID)
	}
	brief := *el
	brief.Children = nil
	return &Resolved{Adapter: a, Element: brief, Tree: tree}, nil
}

// MatchText finds the single element whose title, value or description
// matches t.Text. When several match, those sharing the deepest ancestor
// with the focused element win, then interactive roles over static ones.
func MatchText(elements []model.Element, t Target) (*model.Element, error) {
	scope := elements
	if t.ScopeID > 0 {
		scopeEl := model.FindByID(elements, t.ScopeID)
		if scopeEl == nil {
			return nil, fmt.Errorf("scope element with id %d not found", t.ScopeID)
		}
		scope = scopeEl.Children
	}

	roleSet := make(map[string]bool)
	if t.Roles != "" {
		var roleList []string
		for _, r := range strings.Split(t.Roles, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roleList = append(roleList, r)
			}
		}
		for _, r := range model.ExpandRoles(roleList) {
			roleSet[r] = true
		}
	}

	matches := collectLeafMatches(scope, strings.ToLower(t.Text), roleSet, t.Exact)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no element found matching text %q", t.Text)
	}
	if len(matches) > 1 {
		matches = narrowByFocusProximity(elements, matches)
	}
	if len(matches) > 1 && t.Roles == "" {
		matches = preferInteractiveElements(matches)
	}
	if len(matches) == 1 {
		return matches[0], nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "multiple elements match text %q", t.Text)
	if t.Roles != "" {
		fmt.Fprintf(&b, " with roles %q", t.Roles)
	}
	b.WriteString("; use id, ref, exact or scope-id to narrow:\n")
	for _, m := range matches {
		fmt.Fprintf(&b, "  id=%d %s", m.ID, m.Role)
		if m.Title != "" {
			fmt.Fprintf(&b, " title=%q", m.Title)
		}
		if m.Ref != "" {
			fmt.Fprintf(&b, " ref=%q", m.Ref)
		}
		if path := rolePath(elements, m.ID); path != "" {
			fmt.Fprintf(&b, " path=%q", path)
		}
		b.WriteByte('\n')
	}
	return nil, fmt.Errorf("%s", strings.TrimRight(b.String(), "\n"))
}

// collectLeafMatches returns the deepest elements matching the text.
func collectLeafMatches(elements []model.Element, textLower string, roles map[string]bool, exact bool) []*model.Element {
	var results []*model.Element
	for i := range elements {
		el := &elements[i]
		childMatches := collectLeafMatches(el.Children, textLower, roles, exact)
		selfMatch := textMatches(*el, textLower, exact) && (len(roles) == 0 || roles[el.Role])
		if selfMatch && len(childMatches) == 0 {
			results = append(results, el)
		} else {
			results = append(results, childMatches...)
		}
	}
	return results
}

func textMatches(el model.Element, textLower string, exact bool) bool {
	if exact {
		return strings.EqualFold(el.Title, textLower) ||
			strings.EqualFold(el.Value, textLower) ||
			strings.EqualFold(el.Description, textLower)
	}
	return strings.Contains(strings.ToLower(el.Title), textLower) ||
		strings.Contains(strings.ToLower(el.Value), textLower) ||
		strings.Contains(strings.ToLower(el.Description), textLower)
}

func narrowByFocusProximity(elements []model.Element, matches []*model.Element) []*model.Element {
	focusPath := pathTo(elements, func(el *model.Element) bool { return el.Focused })
	if len(focusPath) == 0 {
		return matches
	}
	bestScore := 0
	scores := make([]int, len(matches))
	for i, m := range matches {
		id := m.ID
		scores[i] = commonPrefixLen(focusPath, pathTo(elements, func(el *model.Element) bool { return el.ID == id }))
		if scores[i] > bestScore {
			bestScore = scores[i]
		}
	}
	var narrowed []*model.Element
	for i, m := range matches {
		if scores[i] == bestScore {
			narrowed = append(narrowed, m)
		}
	}
	return narrowed
}

// staticRoles lose to interactive roles when both match.
var staticRoles = map[string]bool{
	"txt":   true,
	"img":   true,
	"group": true,
	"other": true,
}

func preferInteractiveElements(matches []*model.Element) []*model.Element {
	var interactive []*model.Element
	for _, m := range matches {
		if !staticRoles[m.Role] {
			interactive = append(interactive, m)
		}
	}
	if len(interactive) > 0 && len(interactive) < len(matches) {
		return interactive
	}
	return matches
}

// pathTo returns the IDs from the top of elements down to the first element
// satisfying match, or nil.
func pathTo(elements []model.Element, match func(*model.Element) bool) []int {
	for i := range elements {
		if match(&elements[i]) {
			return []int{elements[i].ID}
		}
		if sub := pathTo(elements[i].Children, match); sub != nil {
			return append([]int{elements[i].ID}, sub...)
		}
	}
	return nil
}

func rolePath(elements []model.Element, id int) string {
	ids := pathTo(elements, func(el *model.Element) bool { return el.ID == id })
	parts := make([]string, 0, len(ids))
	for _, pid := range ids {
		parts = append(parts, model.FindByID(elements, pid).Role)
	}
	return strings.Join(parts, " > ")
}

func commonPrefixLen(a, b []int) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
