package a11y

import (
	"testing"

	"github.com/mj1618/a11y-bridge/internal/toolkit"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_MaximizeThenMinimize(t *testing.T) {
	tk, b := newBridge(t)
	h := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	win := adapterOf(t, b, h)

	require.Equal(t, 2, win.ActionCount())
	assert.Equal(t, []string{"maximize", "minimize"}, win.ActionNames())
	assert.Equal(t, 0, win.ActionIndex("maximize"))
	assert.Equal(t, 1, win.ActionIndex("minimize"))

	require.True(t, win.Invoke(0))
	assert.True(t, win.States().Has(StateMaximized))
	require.True(t, win.Invoke(1))
	assert.True(t, win.States().Has(StateMinimized))

	// A minimized window cannot take focus.
	assert.False(t, win.GrabFocus())
}

func TestActions_UnknownNameAndBadIndex(t *testing.T) {
	tk, b := newBridge(t)
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "OK"}))
	label := adapterOf(t, b, mk(t, tk, 0, memtk.KindLabel, props{"text": "Hi"}))

	assert.Equal(t, -1, btn.ActionIndex("maximize"))
	assert.Equal(t, -1, btn.ActionIndex(""))
	assert.Equal(t, -1, label.ActionIndex("click"))

	assert.False(t, btn.Invoke(1))
	assert.ErrorIs(t, btn.TryInvoke(-1), ErrIndexOutOfRange)
	_, ok := btn.ActionName(5)
	assert.False(t, ok)

	assert.Equal(t, 0, label.ActionCount())
	assert.ErrorIs(t, label.TryInvoke(0), ErrUnsupported)
}

func TestActions_EveryValidIndexInvokes(t *testing.T) {
	tk, b := newBridge(t)
	win := mk(t, tk, 0, memtk.KindWindow, props{"title": "Main"})
	handles := []toolkit.Handle{
		win,
		mk(t, tk, win, memtk.KindButton, props{"label": "OK"}),
		mk(t, tk, win, memtk.KindCheck, props{"label": "Traffic"}),
		mk(t, tk, win, memtk.KindEntry, props{"placeholder": "Search"}),
		mk(t, tk, win, memtk.KindSlider, props{"label": "Zoom", "value": 5, "max": 10}),
		mk(t, tk, win, memtk.KindSpin, props{"label": "Count", "value": 1, "max": 3}),
	}
	for _, h := range handles {
		a := adapterOf(t, b, h)
		require.Positive(t, a.ActionCount(), a.Kind())
		for i := 0; i < a.ActionCount(); i++ {
			name, ok := a.ActionName(i)
			require.True(t, ok)
			assert.Equal(t, i, a.ActionIndex(name))
			assert.NoError(t, a.TryInvoke(i), "%s %s", a.Kind(), name)
		}
	}
}

func TestActions_DispatchToWidget(t *testing.T) {
	tk, b := newBridge(t)
	btnH := mk(t, tk, 0, memtk.KindButton, props{"label": "OK"})
	chkH := mk(t, tk, 0, memtk.KindCheck, props{"label": "Traffic"})
	btn := adapterOf(t, b, btnH)
	chk := adapterOf(t, b, chkH)

	require.True(t, btn.Invoke(btn.ActionIndex("click")))
	require.True(t, btn.Invoke(btn.ActionIndex("click")))
	w, _ := tk.Widget(btnH)
	assert.Equal(t, 2, w.(*memtk.Button).Presses)

	assert.False(t, chk.States().Has(StateChecked))
	require.True(t, chk.Invoke(chk.ActionIndex("toggle")))
	assert.True(t, chk.States().Has(StateChecked))
}

func TestActions_WidgetFailureIsReported(t *testing.T) {
	tk, b := newBridge(t)
	btn := adapterOf(t, b, mk(t, tk, 0, memtk.KindButton, props{"label": "Off", "insensitive": true}))

	assert.False(t, btn.Invoke(0))
	err := btn.TryInvoke(0)
	assert.ErrorIs(t, err, memtk.ErrInsensitive)
	assert.Contains(t, err.Error(), "invoke click")
}

func TestActions_Descriptions(t *testing.T) {
	tk, b := newBridge(t)
	win := adapterOf(t, b, mk(t, tk, 0, memtk.KindWindow, nil))

	desc, ok := win.ActionDescription(0)
	require.True(t, ok)
	assert.Equal(t, "Maximize the window", desc)

	require.True(t, win.SetActionDescription(0, "Fill the screen"))
	desc, _ = win.ActionDescription(0)
	assert.Equal(t, "Fill the screen", desc)

	assert.False(t, win.SetActionDescription(2, "nope"))
}

func TestActions_SliderStepsByIncrement(t *testing.T) {
	tk, b := newBridge(t)
	s := adapterOf(t, b, mk(t, tk, 0, memtk.KindSlider, props{"label": "Zoom", "value": 9, "max": 10, "step": 2}))

	require.True(t, s.Invoke(s.ActionIndex("increment")))
	v, _ := s.CurrentValue()
	assert.Equal(t, Number(10), v, "clamped at max")

	require.True(t, s.Invoke(s.ActionIndex("decrement")))
	v, _ = s.CurrentValue()
	assert.Equal(t, Number(8), v)
}
