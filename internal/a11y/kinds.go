package a11y

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
)

// DefaultRegistry returns a new registry holding the stock kinds. Layers,
// sections and separators are left out and so stay transparent.
func DefaultRegistry() *Registry {
	interactive := Caps(CapAction, CapComponent, CapText)
	ranged := Caps(CapAction, CapValue, CapComponent, CapText)

	return NewRegistry().MustRegister(
		Descriptor{Kind: toolkit.KindApplication, Role: RoleApplication, Caps: Caps(CapText)},
		Descriptor{Kind: toolkit.KindWindow, Role: RoleWindow, Caps: interactive, Actions: windowActions},
		Descriptor{Kind: toolkit.KindBox, Role: RolePanel, RoleFor: boxRole, Caps: Caps(CapText)},
		Descriptor{Kind: toolkit.KindOverlay, Role: RoleOverlay, Caps: Caps(CapText), Children: overlayContent},
		Descriptor{Kind: toolkit.KindButton, Role: RoleButton, Caps: interactive, Actions: pressActions},
		Descriptor{Kind: toolkit.KindCheck, Role: RoleCheckBox, Caps: interactive, Actions: toggleActions},
		Descriptor{Kind: toolkit.KindLabel, Role: RoleLabel, Caps: Caps(CapText)},
		Descriptor{Kind: toolkit.KindEntry, Role: RoleEntry, Caps: interactive, Actions: activateActions},
		Descriptor{Kind: toolkit.KindSlider, Role: RoleSlider, Caps: ranged, Actions: stepActions, Value: rangeValue},
		Descriptor{Kind: toolkit.KindSpin, Role: RoleSpinButton, Caps: ranged, Actions: stepActions, Value: rangeValue},
		Descriptor{Kind: toolkit.KindImage, Role: RoleImage, Caps: Caps(CapImage, CapText)},
		Descriptor{Kind: toolkit.KindMap, Role: RoleImageMap, Caps: Caps(CapImage, CapComponent, CapText)},
		Descriptor{Kind: toolkit.KindRoute, Role: RoleRoute, Caps: Caps(CapValue, CapText), Value: routeValue},
		Descriptor{Kind: toolkit.KindPreferences, Role: RoleForm, Caps: Caps(CapText), Children: preferenceItems},
		Descriptor{Kind: toolkit.KindPreference, Role: RoleListItem, Caps: Caps(CapText)},
	)
}

func boxRole(w toolkit.Widget) Role {
	if m, ok := w.(toolkit.Modal); ok && m.IsModal() {
		return RoleDialog
	}
	return RolePanel
}

func overlayContent(w toolkit.Widget) []toolkit.Handle {
	host, ok := w.(toolkit.OverlayHost)
	if !ok {
		return nil
	}
	if h, ok := host.Content(); ok {
		return []toolkit.Handle{h}
	}
	return nil
}

func preferenceItems(w toolkit.Widget) []toolkit.Handle {
	if c, ok := w.(toolkit.ItemContainer); ok {
		return c.Items()
	}
	return nil
}

func windowActions(w toolkit.Widget) []Action {
	win, ok := w.(toolkit.Windowed)
	if !ok {
		return nil
	}
	return []Action{
		{Name: "maximize", Description: "Maximize the window", Do: win.Maximize},
		{Name: "minimize", Description: "Minimize the window", Do: win.Minimize},
	}
}

func pressActions(w toolkit.Widget) []Action {
	p, ok := w.(toolkit.Pressable)
	if !ok {
		return nil
	}
	return []Action{{Name: "click", Description: "Press the button", Do: p.Press}}
}

func toggleActions(w toolkit.Widget) []Action {
	t, ok := w.(toolkit.Toggleable)
	if !ok {
		return nil
	}
	return []Action{{Name: "toggle", Description: "Toggle the check box", Do: t.Toggle}}
}

func activateActions(w toolkit.Widget) []Action {
	a, ok := w.(toolkit.Activatable)
	if !ok {
		return nil
	}
	return []Action{{Name: "activate", Description: "Activate the entry", Do: a.Activate}}
}

func stepActions(w toolkit.Widget) []Action {
	r, ok := w.(toolkit.Ranged)
	if !ok {
		return nil
	}
	set, ok := w.(toolkit.RangeSetter)
	if !ok {
		return nil
	}
	return []Action{
		{Name: "increment", Description: "Increase the value by one step", Do: func() error {
			return set.SetValue(r.Value() + r.Step())
		}},
		{Name: "decrement", Description: "Decrease the value by one step", Do: func() error {
			return set.SetValue(r.Value() - r.Step())
		}},
	}
}

var rangeValue = &ValueAccessor{
	Read: func(w toolkit.Widget) (ValueRange, bool) {
		r, ok := w.(toolkit.Ranged)
		if !ok {
			return ValueRange{}, false
		}
		return ValueRange{
			Current:   Number(r.Value()),
			Minimum:   Number(r.Min()),
			Maximum:   Number(r.Max()),
			Increment: Number(r.Step()),
		}, true
	},
	Write: func(w toolkit.Widget, v Value) error {
		set, ok := w.(toolkit.RangeSetter)
		if !ok {
			return ErrUnsupported
		}
		f, ok := v.Float()
		if !ok {
			return fmt.Errorf("value %q is not numeric", v.Text)
		}
		return set.SetValue(f)
	},
}

// routeValue reports coordinates as text; the increment is the route's
// resolution on both axes.
var routeValue = &ValueAccessor{
	Read: func(w toolkit.Widget) (ValueRange, bool) {
		r, ok := w.(toolkit.Routed)
		if !ok {
			return ValueRange{}, false
		}
		res := r.Resolution()
		return ValueRange{
			Current:   Text(FormatPoint(r.Position())),
			Minimum:   Text(FormatPoint(r.Start())),
			Maximum:   Text(FormatPoint(r.End())),
			Increment: Text(FormatPoint(toolkit.Point{Lat: res, Lon: res})),
		}, true
	},
}
