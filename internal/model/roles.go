package model

// RoleMap maps accessibility role names to compact role codes.
var RoleMap = map[string]string{
	"application": "app",
	"window":      "window",
	"dialog":      "dialog",
	"panel":       "group",
	"overlay":     "overlay",
	"button":      "btn",
	"check box":   "chk",
	"label":       "txt",
	"entry":       "input",
	"slider":      "slider",
	"spin button": "spin",
	"image":       "img",
	"image map":   "map",
	"route":       "route",
	"form":        "form",
	"list item":   "item",
}

// MetaRoles maps meta-role names to the concrete roles they expand to.
// For example, "interactive" matches every role that accepts input.
var MetaRoles = map[string][]string{
	"interactive": {"btn", "chk", "input", "slider", "spin", "map"},
	"graphic":     {"img", "map"},
}

// ExpandRoles expands any meta-roles in the given list to their concrete roles.
// Non-meta roles are passed through unchanged. Duplicates are removed.
func ExpandRoles(roles []string) []string {
	seen := make(map[string]bool, len(roles))
	var expanded []string
	for _, r := range roles {
		if concrete, ok := MetaRoles[r]; ok {
			for _, c := range concrete {
				if !seen[c] {
					seen[c] = true
					expanded = append(expanded, c)
				}
			}
		} else if !seen[r] {
			seen[r] = true
			expanded = append(expanded, r)
		}
	}
	return expanded
}

// MapRole converts a role name to a compact code.
func MapRole(role string) string {
	if short, ok := RoleMap[role]; ok {
		return short
	}
	return "other"
}

// RoleName converts a compact code back to its role name.
func RoleName(code string) (string, bool) {
	for name, c := range RoleMap {
		if c == code {
			return name, true
		}
	}
	return "", false
}
