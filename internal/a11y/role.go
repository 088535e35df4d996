package a11y

// Role is the accessibility role presented to assistive technology.
type Role int

const (
	RoleInvalid Role = iota
	RoleApplication
	RoleWindow
	RoleDialog
	RolePanel
	RoleOverlay
	RoleButton
	RoleCheckBox
	RoleLabel
	RoleEntry
	RoleSlider
	RoleSpinButton
	RoleImage
	RoleImageMap
	RoleRoute
	RoleForm
	RoleListItem
)

var roleNames = [...]string{
	RoleInvalid:     "invalid",
	RoleApplication: "application",
	RoleWindow:      "window",
	RoleDialog:      "dialog",
	RolePanel:       "panel",
	RoleOverlay:     "overlay",
	RoleButton:      "button",
	RoleCheckBox:    "check box",
	RoleLabel:       "label",
	RoleEntry:       "entry",
	RoleSlider:      "slider",
	RoleSpinButton:  "spin button",
	RoleImage:       "image",
	RoleImageMap:    "image map",
	RoleRoute:       "route",
	RoleForm:        "form",
	RoleListItem:    "list item",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return roleNames[RoleInvalid]
	}
	return roleNames[r]
}

// ParseRole maps a role name back to its Role.
func ParseRole(name string) (Role, bool) {
	for r, n := range roleNames {
		if n == name && Role(r) != RoleInvalid {
			return Role(r), true
		}
	}
	return RoleInvalid, false
}

// Roles lists every valid role in declaration order.
func Roles() []Role {
	out := make([]Role, 0, len(roleNames)-1)
	for r := RoleApplication; int(r) < len(roleNames); r++ {
		out = append(out, r)
	}
	return out
}
