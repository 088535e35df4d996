package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-bridge/internal/a11y"
)

func resolve(t *testing.T, s *Session, target Target) *Resolved {
	t.Helper()
	r, err := s.Resolve(target)
	require.NoError(t, err)
	return r
}

func TestDescribe(t *testing.T) {
	_, s := newSession(t)
	d := s.Describe(resolve(t, s, Target{ID: idZoom}))
	assert.Equal(t, "slider", d.Role)
	assert.Equal(t, idMain, d.Parent)
	assert.Equal(t, 4, d.Index)
	assert.Equal(t, 0, d.ChildCount)
	assert.Contains(t, d.Capabilities, "value")

	root := s.Describe(resolve(t, s, Target{ID: idApp}))
	assert.Equal(t, 0, root.Parent)
	assert.Equal(t, -1, root.Index)
	assert.Equal(t, 2, root.ChildCount)
}

func TestChildrenAndParent(t *testing.T) {
	_, s := newSession(t)
	children := s.Children(resolve(t, s, Target{ID: idOverlay}))
	require.Len(t, children, 1)
	assert.Equal(t, idMap, children[0].ID)
	assert.Equal(t, "overlay/map-view", children[0].Ref)

	p, err := s.Parent(resolve(t, s, Target{ID: idMap}))
	require.NoError(t, err)
	assert.Equal(t, idOverlay, p.ID)
	assert.Nil(t, p.Children)

	_, err = s.Parent(resolve(t, s, Target{ID: idApp}))
	assert.Error(t, err)

	assert.Empty(t, s.Children(resolve(t, s, Target{ID: idMap})))
}

func TestActions(t *testing.T) {
	_, s := newSession(t)
	res := s.Actions(resolve(t, s, Target{ID: idZoom}))
	require.Len(t, res.Actions, 2)
	assert.Equal(t, "increment", res.Actions[0].Name)
	assert.Equal(t, 1, res.Actions[1].Index)

	assert.Empty(t, s.Actions(resolve(t, s, Target{ID: idMap})).Actions)
}

func TestValue(t *testing.T) {
	_, s := newSession(t)
	v, err := s.Value(resolve(t, s, Target{ID: idZoom}))
	require.NoError(t, err)
	assert.Equal(t, "3", v.Current)
	assert.Equal(t, "0", v.Minimum)
	assert.Equal(t, "18", v.Maximum)
	assert.Equal(t, "1", v.Increment)
	assert.False(t, v.Text)
	assert.True(t, v.Writable)

	_, err = s.Value(resolve(t, s, Target{ID: idZoomIn}))
	assert.ErrorIs(t, err, a11y.ErrUnsupported)
}

func TestImage(t *testing.T) {
	_, s := newSession(t)
	img, err := s.Image(resolve(t, s, Target{ID: idMap}))
	require.NoError(t, err)
	assert.Equal(t, 512, img.Width)
	assert.Equal(t, 512, img.Height)
	assert.Equal(t, "This is a map", img.Description)

	_, err = s.Image(resolve(t, s, Target{ID: idSearch}))
	assert.ErrorIs(t, err, a11y.ErrUnsupported)
}
