package a11y

import (
	"testing"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type props = map[string]any

// newBridge returns an empty application and a strict bridge attached to it.
func newBridge(t *testing.T, opts ...Option) (*memtk.Toolkit, *Bridge) {
	t.Helper()
	tk := memtk.New("Maps")
	return tk, New(tk, append([]Option{WithStrict(true)}, opts...)...)
}

func mk(t *testing.T, tk *memtk.Toolkit, parent toolkit.Handle, kind toolkit.Kind, p props) toolkit.Handle {
	t.Helper()
	h, err := tk.Create(parent, kind, p)
	require.NoError(t, err)
	return h
}

func adapterOf(t *testing.T, b *Bridge, h toolkit.Handle) *Adapter {
	t.Helper()
	a, err := b.AdapterFor(h)
	require.NoError(t, err)
	return a
}

func roles(as []*Adapter) []Role {
	out := make([]Role, len(as))
	for i, a := range as {
		out[i] = a.Role()
	}
	return out
}

func TestAdapterFor_IdentityStable(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	btn := mk(t, tk, win, memtk.KindButton, props{"label": "OK"})

	for _, h := range []toolkit.Handle{tk.Root(), win, btn} {
		first := adapterOf(t, b, h)
		second := adapterOf(t, b, h)
		assert.Same(t, first, second, "handle %d", h)
	}
	assert.Equal(t, 3, b.Identity().Len())

	// Adapters reached through traversal are the same instances.
	kids := b.Children(adapterOf(t, b, win))
	require.Len(t, kids, 1)
	assert.Same(t, adapterOf(t, b, btn), kids[0])
}

func TestAdapterFor_UnsupportedKindIsSkipped(t *testing.T) {
	tk, b := newBridge(t)
	sep := mk(t, tk, 0, memtk.KindSeparator, nil)

	_, err := b.AdapterFor(sep)
	assert.ErrorIs(t, err, ErrUnsupportedWidgetKind)

	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, sep, aerr.Handle)
	assert.Equal(t, memtk.KindSeparator, aerr.Kind)
	assert.Equal(t, 0, b.Identity().Len())
}

func TestAdapterFor_DestroyedHandle(t *testing.T) {
	tk, b := newBridge(t)
	btn := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	require.NoError(t, tk.Destroy(btn))

	_, err := b.AdapterFor(btn)
	assert.ErrorIs(t, err, ErrStaleAdapter)
}

func TestRoot(t *testing.T) {
	tk, b := newBridge(t)
	root, err := b.Root()
	require.NoError(t, err)
	assert.Equal(t, tk.Root(), root.Handle())
	assert.Equal(t, RoleApplication, root.Role())

	name, ok := root.Name()
	assert.True(t, ok)
	assert.Equal(t, "Maps", name)

	_, ok = b.Parent(root)
	assert.False(t, ok, "root has no parent")
}

func TestDestroy_ReleasesAdapterAndMarksDefunct(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	btn := mk(t, tk, win, memtk.KindButton, props{"label": "OK"})
	a := adapterOf(t, b, btn).Ref()

	require.NoError(t, tk.Destroy(win))

	assert.True(t, a.Defunct())
	_, cached := b.Identity().Lookup(btn)
	assert.False(t, cached)

	// Every operation is a quiet failure.
	_, ok := a.Name()
	assert.False(t, ok)
	assert.False(t, a.Invoke(0))
	assert.ErrorIs(t, a.TryInvoke(0), ErrStaleAdapter)
	assert.Equal(t, 0, a.ActionCount())
	assert.Equal(t, -1, a.ActionIndex("click"))
	assert.False(t, a.GrabFocus())
	assert.Empty(t, b.Children(a))
	_, ok = b.Parent(a)
	assert.False(t, ok)
	assert.True(t, a.States().Has(StateDefunct))
	assert.Equal(t, CapabilitySet(0), a.Capabilities())

	// Late releases are safe.
	a.Unref()
	a.Unref()
	assert.Equal(t, 0, a.RefCount())
	assert.False(t, b.Release(btn))
}

func TestRefUnref(t *testing.T) {
	tk, b := newBridge(t)
	a := adapterOf(t, b, mk(t, tk, 0, memtk.KindLabel, props{"text": "Hello"}))

	a.Ref().Ref()
	assert.Equal(t, 2, a.RefCount())
	a.Unref()
	assert.Equal(t, 1, a.RefCount())
}

// recordingObserver keeps every bridge event.
type recordingObserver struct {
	NopObserver
	created, released int
	focus             [][2]toolkit.Handle
	violations        []error
}

func (o *recordingObserver) AdapterCreated(*Adapter)  { o.created++ }
func (o *recordingObserver) AdapterReleased(*Adapter) { o.released++ }
func (o *recordingObserver) FocusChanged(prev, next *Adapter) {
	o.focus = append(o.focus, [2]toolkit.Handle{prevHandle(prev), prevHandle(next)})
}
func (o *recordingObserver) InvariantViolated(err error) { o.violations = append(o.violations, err) }

func TestObserver_SeesLifecycleAndFocus(t *testing.T) {
	obs := &recordingObserver{}
	tk, b := newBridge(t, WithObserver(obs))
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	btn := mk(t, tk, win, memtk.KindButton, props{"label": "OK"})

	require.True(t, adapterOf(t, b, btn).GrabFocus())
	require.NoError(t, tk.Destroy(btn))

	assert.Equal(t, 1, obs.created)
	assert.Equal(t, 1, obs.released)
	assert.Equal(t, [][2]toolkit.Handle{{0, btn}, {btn, 0}}, obs.focus)
	assert.Empty(t, obs.violations)
}

func TestStructureEpochAdvances(t *testing.T) {
	tk, b := newBridge(t)
	start := b.Epoch()
	win := mk(t, tk, 0, memtk.KindWindow, nil)
	box := mk(t, tk, win, memtk.KindBox, nil)
	require.NoError(t, tk.Reparent(box, tk.Root()))
	require.NoError(t, tk.Destroy(box))
	assert.Equal(t, start+4, b.Epoch())
}
