package model

import (
	"fmt"
	"regexp"
	"strings"
)

const maxSlugLen = 40

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// slug lowercases s and joins its alphanumeric runs with single hyphens.
func slug(s string) string {
	s = strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// stableLabel is the title, else the description. Values change as the user
// types or drags, so they never name an element.
func stableLabel(el *Element) string {
	if el.Title != "" {
		return el.Title
	}
	return el.Description
}

// refRoles always get a ref, labelled or not.
var refRoles = map[string]bool{
	"input": true, "chk": true, "slider": true, "spin": true,
	"img": true, "map": true, "route": true, "item": true,
}

// landmark reports whether el names a scope in the refs of its descendants:
// dialogs, forms, overlays and labelled groups.
func landmark(el *Element) bool {
	switch el.Role {
	case "dialog", "form", "overlay":
		return true
	case "group":
		return stableLabel(el) != ""
	}
	return false
}

func wantsRef(el *Element) bool {
	switch {
	case len(el.Actions) > 0, refRoles[el.Role]:
		return true
	case el.Role == "txt":
		return el.Title != "" || el.Value != ""
	}
	return false
}

func segment(el *Element) string {
	if s := slug(stableLabel(el)); s != "" {
		return s
	}
	return el.Role
}

func joinRef(scope, seg string) string {
	if scope == "" {
		return seg
	}
	return scope + "/" + seg
}

// GenerateRefs sets Ref on every addressable element (anything with actions,
// inputs, graphics, labelled text). A ref is the element's label slug under
// the slugs of its enclosing landmarks, e.g. "overlay/map-view". Refs that
// collide get ".1", ".2"... suffixes in tree order.
func GenerateRefs(elements []Element) {
	byRef := make(map[string][]*Element)
	var walk func(els []Element, scope string)
	walk = func(els []Element, scope string) {
		for i := range els {
			el := &els[i]
			if wantsRef(el) {
				el.Ref = joinRef(scope, segment(el))
				byRef[el.Ref] = append(byRef[el.Ref], el)
			}
			inner := scope
			if landmark(el) {
				inner = joinRef(scope, segment(el))
			}
			walk(el.Children, inner)
		}
	}
	walk(elements, "")

	for ref, els := range byRef {
		if len(els) < 2 {
			continue
		}
		for i, el := range els {
			el.Ref = fmt.Sprintf("%s.%d", ref, i+1)
		}
	}
}

// FindElementByRef returns the element whose ref is ref, or failing that the
// single element whose ref ends in "/"+ref.
func FindElementByRef(elements []Element, ref string) (*Element, error) {
	var suffixed []*Element
	var exact *Element
	Walk(elements, func(el *Element) bool {
		switch {
		case el.Ref == "":
		case el.Ref == ref:
			exact = el
			return false
		case strings.HasSuffix(el.Ref, "/"+ref):
			suffixed = append(suffixed, el)
		}
		return true
	})
	if exact != nil {
		return exact, nil
	}

	switch len(suffixed) {
	case 0:
		return nil, fmt.Errorf("no element matches ref %q", ref)
	case 1:
		return suffixed[0], nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "multiple elements match ref %q:", ref)
	for _, el := range suffixed {
		fmt.Fprintf(&b, "\n  ref=%q id=%d %s", el.Ref, el.ID, el.Role)
		if el.Title != "" {
			fmt.Fprintf(&b, " title=%q", el.Title)
		}
	}
	return nil, fmt.Errorf("%s", b.String())
}
