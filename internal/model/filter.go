package model

import "strings"

// promote keeps elements for which keep is true. A dropped element is
// replaced by its kept descendants, so nothing below it is lost.
func promote(elements []Element, keep func(*Element) bool) []Element {
	var out []Element
	for _, el := range elements {
		children := promote(el.Children, keep)
		if !keep(&el) {
			out = append(out, children...)
			continue
		}
		el.Children = children
		out = append(out, el)
	}
	return out
}

// withAncestry keeps elements for which match is true together with the
// chain of ancestors leading to them. Non-matching siblings are dropped.
func withAncestry(elements []Element, match func(*Element) bool) []Element {
	var out []Element
	for _, el := range elements {
		children := withAncestry(el.Children, match)
		if len(children) == 0 && !match(&el) {
			continue
		}
		el.Children = children
		out = append(out, el)
	}
	return out
}

// FilterElements keeps elements whose role is in roles, promoting matching
// descendants of elements that are dropped. Depth is limited at snapshot
// time, not here.
func FilterElements(elements []Element, roles []string) []Element {
	if len(roles) == 0 {
		return elements
	}
	set := make(map[string]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return promote(elements, func(el *Element) bool { return set[el.Role] })
}

// FilterByText keeps elements whose title, value or description contains
// text (case-insensitive), with their ancestors.
func FilterByText(elements []Element, text string) []Element {
	if text == "" {
		return elements
	}
	needle := strings.ToLower(text)
	return withAncestry(elements, func(el *Element) bool {
		for _, s := range []string{el.Title, el.Value, el.Description} {
			if strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	})
}

// FilterByFocused keeps the focused element and its ancestry.
func FilterByFocused(elements []Element) []Element {
	return withAncestry(elements, func(el *Element) bool { return el.Focused })
}

// anonymous reports an unlabeled group or other node with no value.
func anonymous(role, title, value, desc string) bool {
	return (role == "group" || role == "other") && title == "" && value == "" && desc == ""
}

// PruneEmptyGroups removes anonymous group/other nodes, promoting their
// children.
func PruneEmptyGroups(elements []Element) []Element {
	return promote(elements, func(el *Element) bool {
		return !anonymous(el.Role, el.Title, el.Value, el.Description)
	})
}

// PruneEmptyGroupsFlat removes anonymous group/other entries. Paths of the
// remaining entries still name the removed groups.
func PruneEmptyGroupsFlat(elements []FlatElement) []FlatElement {
	var out []FlatElement
	for _, el := range elements {
		if !anonymous(el.Role, el.Title, el.Value, el.Description) {
			out = append(out, el)
		}
	}
	return out
}
