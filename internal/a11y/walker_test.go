package a11y

import (
	"testing"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertConsistent checks that parent and children agree everywhere below a.
func assertConsistent(t *testing.T, b *Bridge, a *Adapter) int {
	t.Helper()
	n := 1
	for i, c := range b.Children(a) {
		p, ok := b.Parent(c)
		if assert.True(t, ok, "child %d of %d has no parent", c.Handle(), a.Handle()) {
			assert.Same(t, a, p, "parent of %d", c.Handle())
		}
		assert.Equal(t, i, b.IndexInParent(c))
		n += assertConsistent(t, b, c)
	}
	return n
}

func TestChildren_UnregisteredWidgetsAreTransparent(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	sec := mk(t, tk, win, memtk.KindSection, nil)
	inner := mk(t, tk, sec, memtk.KindSection, nil)
	ok := mk(t, tk, inner, memtk.KindButton, props{"label": "OK"})
	mk(t, tk, win, memtk.KindSeparator, nil)
	cancel := mk(t, tk, win, memtk.KindButton, props{"label": "Cancel"})

	w := adapterOf(t, b, win)
	kids := b.Children(w)
	require.Len(t, kids, 2)
	assert.Equal(t, ok, kids[0].Handle())
	assert.Equal(t, cancel, kids[1].Handle())

	p, found := b.Parent(kids[0])
	require.True(t, found)
	assert.Same(t, w, p)

	root, err := b.Root()
	require.NoError(t, err)
	assertConsistent(t, b, root)
}

func TestChildren_OverlayExposesOnlyItsContent(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	ov := mk(t, tk, win, memtk.KindOverlay, nil)
	layer := ov
	for i := 0; i < 3; i++ {
		layer = mk(t, tk, layer, memtk.KindLayer, nil)
	}
	btn := mk(t, tk, layer, memtk.KindButton, props{"label": "Zoom in"})

	kids := b.Children(adapterOf(t, b, ov))
	require.Len(t, kids, 1)
	assert.Equal(t, RoleButton, kids[0].Role())
	assert.Equal(t, btn, kids[0].Handle())
	assert.Equal(t, 1, b.ChildCount(adapterOf(t, b, ov)))

	root, err := b.Root()
	require.NoError(t, err)
	assertConsistent(t, b, root)
}

func TestChildren_OverlaySkipsLeadingStructure(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	ov := mk(t, tk, win, memtk.KindOverlay, nil)
	mk(t, tk, ov, memtk.KindSeparator, nil)
	mk(t, tk, ov, memtk.KindSection, nil)
	layer := mk(t, tk, ov, memtk.KindLayer, nil)
	btn := mk(t, tk, layer, memtk.KindButton, props{"label": "Locate me"})

	o := adapterOf(t, b, ov)
	assert.Equal(t, 1, b.ChildCount(o))
	kids := b.Children(o)
	require.Len(t, kids, 1)
	assert.Equal(t, btn, kids[0].Handle())

	root, err := b.Root()
	require.NoError(t, err)
	assertConsistent(t, b, root)
}

func TestChildren_OverlayHidesDecorations(t *testing.T) {
	tk, b := newBridge(t)
	ov, err := tk.Create(0, memtk.KindOverlay, props{"content": "map"})
	require.NoError(t, err)
	deco := mk(t, tk, ov, memtk.KindButton, props{"label": "Attribution"})
	layer := mk(t, tk, ov, memtk.KindLayer, nil)
	mapH, err := tk.CreateWithID(layer, memtk.KindMap, "map", props{"width": 512, "height": 512})
	require.NoError(t, err)
	pin := mk(t, tk, mapH, memtk.KindButton, props{"label": "Pin"})

	o := adapterOf(t, b, ov)
	kids := b.Children(o)
	require.Len(t, kids, 1)
	assert.Equal(t, RoleImageMap, kids[0].Role())

	_, found := b.Parent(adapterOf(t, b, deco))
	assert.False(t, found, "decoration outside the content is hidden")

	p, found := b.Parent(adapterOf(t, b, pin))
	require.True(t, found)
	assert.Equal(t, mapH, p.Handle())

	root, err := b.Root()
	require.NoError(t, err)
	assertConsistent(t, b, root)
}

func TestChildren_PreferencesFlattenItems(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Settings"})
	prefs := mk(t, tk, win, memtk.KindPreferences, props{"title": "Preferences"})
	var items []toolkit.Handle
	for s := 0; s < 3; s++ {
		sec := mk(t, tk, prefs, memtk.KindSection, props{"title": "Section"})
		mk(t, tk, sec, memtk.KindLabel, props{"text": "Heading"})
		for i := 0; i < 3; i++ {
			items = append(items, mk(t, tk, sec, memtk.KindPreference, props{"title": "Item"}))
		}
	}

	p := adapterOf(t, b, prefs)
	assert.Equal(t, RoleForm, p.Role())
	kids := b.Children(p)
	require.Len(t, kids, 9)
	for i, c := range kids {
		assert.Equal(t, items[i], c.Handle())
		assert.Equal(t, RoleListItem, c.Role())
	}

	root, err := b.Root()
	require.NoError(t, err)
	assertConsistent(t, b, root)
}

func TestChildAt(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, nil)
	btn := mk(t, tk, win, memtk.KindButton, props{"label": "OK"})
	w := adapterOf(t, b, win)

	c, ok := b.ChildAt(w, 0)
	require.True(t, ok)
	assert.Equal(t, btn, c.Handle())

	_, ok = b.ChildAt(w, 1)
	assert.False(t, ok)
	_, ok = b.ChildAt(w, -1)
	assert.False(t, ok)
}

func TestParent_FollowsReparent(t *testing.T) {
	tk, b := newBridge(t)
	left := mk(t, tk, 0, memtk.KindBox, props{"title": "Left"})
	right := mk(t, tk, 0, memtk.KindBox, props{"title": "Right"})
	btn := mk(t, tk, left, memtk.KindButton, props{"label": "Move me"})
	a := adapterOf(t, b, btn)

	p, ok := b.Parent(a)
	require.True(t, ok)
	assert.Equal(t, left, p.Handle())

	require.NoError(t, tk.Reparent(btn, right))

	p, ok = b.Parent(a)
	require.True(t, ok)
	assert.Equal(t, right, p.Handle())
	assert.Empty(t, b.Children(adapterOf(t, b, left)))
	assert.Same(t, a, b.Children(adapterOf(t, b, right))[0])
}

func TestChildren_RecomputedAfterDestroy(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, nil)
	first := mk(t, tk, win, memtk.KindButton, props{"label": "One"})
	mk(t, tk, win, memtk.KindButton, props{"label": "Two"})
	w := adapterOf(t, b, win)
	require.Equal(t, 2, b.ChildCount(w))

	require.NoError(t, tk.Destroy(first))
	kids := b.Children(w)
	require.Len(t, kids, 1)
	name, _ := kids[0].Name()
	assert.Equal(t, "Two", name)
}

func TestHierarchyConsistency_Fixture(t *testing.T) {
	tk, err := memtk.Build(memtk.Fixture{
		App: "Maps",
		Widgets: []memtk.WidgetSpec{
			{Kind: memtk.KindWindow, Props: props{"title": "Maps"}, Children: []memtk.WidgetSpec{
				{Kind: memtk.KindBox, Children: []memtk.WidgetSpec{
					{Kind: memtk.KindEntry, Props: props{"placeholder": "Search"}},
					{Kind: memtk.KindSection, Children: []memtk.WidgetSpec{
						{Kind: memtk.KindButton, Props: props{"label": "Go"}},
					}},
				}},
				{Kind: memtk.KindOverlay, Children: []memtk.WidgetSpec{
					{Kind: memtk.KindLayer, Children: []memtk.WidgetSpec{
						{Kind: memtk.KindMap, Props: props{"width": 256, "height": 256}, Children: []memtk.WidgetSpec{
							{Kind: memtk.KindRoute, Props: props{"points": []any{props{"lat": 1.0, "lon": 2.0}}}},
						}},
					}},
					{Kind: memtk.KindButton, Props: props{"label": "Zoom"}},
				}},
				{Kind: memtk.KindPreferences, Children: []memtk.WidgetSpec{
					{Kind: memtk.KindPreference, Props: props{"title": "Units"}, Children: []memtk.WidgetSpec{
						{Kind: memtk.KindPreference, Props: props{"title": "Nested"}},
					}},
				}},
			}},
		},
	}, "")
	require.NoError(t, err)
	b := New(tk, WithStrict(true))

	root, err := b.Root()
	require.NoError(t, err)
	n := assertConsistent(t, b, root)
	// app, window, box, entry, go, overlay, map, route, prefs, units, nested
	assert.Equal(t, 11, n)
}
