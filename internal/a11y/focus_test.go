package a11y

import (
	"testing"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentFocus_NoneBeforeGrab(t *testing.T) {
	tk, b := newBridge(t)
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "OK"}))

	_, ok := b.CurrentFocus()
	assert.False(t, ok)

	require.True(t, btn.GrabFocus())
	cur, ok := b.CurrentFocus()
	require.True(t, ok)
	assert.Same(t, btn, cur)
	assert.True(t, btn.Focused())
	assert.True(t, btn.States().Has(StateFocused))
}

func TestFocus_MovesDirectlyBetweenWidgets(t *testing.T) {
	obs := &recordingObserver{}
	tk, b := newBridge(t, WithObserver(obs))
	one := mk(t, tk, 0, memtk.KindButton, props{"label": "One"})
	two := mk(t, tk, 0, memtk.KindEntry, nil)

	require.NoError(t, tk.Focus(one))
	require.NoError(t, tk.Focus(two))

	cur, ok := b.CurrentFocus()
	require.True(t, ok)
	assert.Equal(t, two, cur.Handle())

	// The late loss for "one" does not empty the slot in between.
	assert.Equal(t, [][2]toolkit.Handle{{0, one}, {one, two}}, obs.focus)
}

func TestFocus_LossForOtherWidgetIgnored(t *testing.T) {
	tk, b := newBridge(t)
	one := mk(t, tk, 0, memtk.KindButton, props{"label": "One"})
	two := mk(t, tk, 0, memtk.KindButton, props{"label": "Two"})

	b.WidgetFocusGained(two)
	b.WidgetFocusLost(one)

	cur, ok := b.CurrentFocus()
	require.True(t, ok)
	assert.Equal(t, two, cur.Handle())
}

func TestFocus_BlurClears(t *testing.T) {
	tk, b := newBridge(t)
	btn := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	require.NoError(t, tk.Focus(btn))
	tk.Blur()

	_, ok := b.CurrentFocus()
	assert.False(t, ok)
}

func TestFocus_DestroyingFocusedWidgetClears(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	entry := mk(t, tk, win, memtk.KindEntry, props{"placeholder": "Search"})
	require.True(t, adapterOf(t, b, entry).GrabFocus())

	require.NoError(t, tk.Destroy(entry))

	_, ok := b.CurrentFocus()
	assert.False(t, ok)
}

func TestFocus_DestroyWithoutLossNotification(t *testing.T) {
	tk, b := newBridge(t)
	btn := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	b.WidgetFocusGained(btn)

	// A toolkit that reports only the destruction.
	b.WidgetDestroyed(btn)

	_, ok := b.CurrentFocus()
	assert.False(t, ok)
}

func TestFocus_UnexposedWidgetEmptiesSlot(t *testing.T) {
	tk, b := newBridge(t)
	btn := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	sep := mk(t, tk, 0, memtk.KindSeparator, nil)
	b.WidgetFocusGained(btn)
	b.WidgetFocusGained(sep)

	_, ok := b.CurrentFocus()
	assert.False(t, ok)
}

func TestGrabFocus_UnsupportedRoleLeavesFocus(t *testing.T) {
	tk, b := newBridge(t)
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "OK"}))
	label := adapterOf(t, b, mk(t, tk, 0, memtk.KindLabel, props{"text": "Hi"}))
	require.True(t, btn.GrabFocus())

	assert.False(t, label.GrabFocus())
	assert.ErrorIs(t, label.TryGrabFocus(), ErrUnsupported)

	cur, ok := b.CurrentFocus()
	require.True(t, ok)
	assert.Same(t, btn, cur)
}

func TestGrabFocus_InsensitiveButtonRefuses(t *testing.T) {
	tk, b := newBridge(t)
	a := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "Off", "insensitive": true}))

	assert.False(t, a.GrabFocus())
	assert.False(t, a.States().Has(StateFocusable))
	_, ok := b.CurrentFocus()
	assert.False(t, ok)
}

func TestGrabFocus_HiddenWidgetRefuses(t *testing.T) {
	tk, b := newBridge(t)
	ov, err := tk.Create(0, memtk.KindOverlay, props{"content": "map"})
	require.NoError(t, err)
	deco := mk(t, tk, ov, memtk.KindButton, props{"label": "Attribution"})
	mapH, err := tk.CreateWithID(ov, memtk.KindMap, "map", props{"width": 256, "height": 256})
	require.NoError(t, err)

	hidden := adapterOf(t, b, deco)
	assert.False(t, b.Reachable(hidden))
	assert.ErrorIs(t, hidden.TryGrabFocus(), ErrUnsupported)
	_, ok := b.CurrentFocus()
	assert.False(t, ok)

	// Native focus moving there anyway leaves the slot empty.
	require.True(t, adapterOf(t, b, mapH).GrabFocus())
	b.WidgetFocusGained(deco)
	_, ok = b.CurrentFocus()
	assert.False(t, ok)
}

func TestCurrentFocus_DesyncPanicsInStrictMode(t *testing.T) {
	obs := &recordingObserver{}
	tk, b := newBridge(t, WithObserver(obs))
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "OK"}))
	require.True(t, btn.GrabFocus())

	// Drop the identity entry behind the tracker's back.
	delete(b.ids.adapters, btn.Handle())

	assert.PanicsWithError(t, (&Error{Op: "current focus", Handle: btn.Handle(), Err: ErrFocusDesync}).Error(), func() {
		b.CurrentFocus()
	})
	require.Len(t, obs.violations, 1)
	assert.ErrorIs(t, obs.violations[0], ErrFocusDesync)
}

func TestIdentityRelease_ClearsFocusSlot(t *testing.T) {
	obs := &recordingObserver{}
	tk, b := newBridge(t, WithObserver(obs))
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "OK"}))
	require.True(t, btn.GrabFocus())

	require.True(t, b.Identity().Release(btn.Handle()))

	assert.NotPanics(t, func() {
		_, ok := b.CurrentFocus()
		assert.False(t, ok)
	})
	assert.True(t, btn.Defunct())
	assert.Empty(t, obs.violations)
}

func TestCurrentFocus_DesyncRecoversOutsideStrictMode(t *testing.T) {
	tk := memtk.New("Maps")
	b := New(tk)
	btn := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	a := adapterOf(t, b, btn)
	require.True(t, a.GrabFocus())
	delete(b.ids.adapters, btn)

	_, ok := b.CurrentFocus()
	assert.False(t, ok)
	_, ok = b.Focus().Handle()
	assert.False(t, ok, "slot reset after desync")
}
