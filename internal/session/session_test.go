package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-bridge/internal/a11y"
	"github.com/mj1618/a11y-bridge/internal/toolkit/memtk"
)

const mapsFixture = `
app: Maps
focus: search
widgets:
  - kind: window
    id: main
    props: {title: Maps}
    children:
      - kind: entry
        id: search
        props: {placeholder: Search}
      - kind: button
        id: zoom-in
        props: {label: Zoom in}
      - kind: label
        props: {text: Zoom in}
      - kind: check
        id: traffic
        props: {label: Show traffic}
      - kind: slider
        id: zoom
        props: {label: Zoom, value: 3, max: 18}
      - kind: overlay
        children:
          - kind: map
            id: map
            props: {width: 512, height: 512, name: Map view, description: This is a map}
  - kind: window
    id: prefs
    props: {title: Preferences}
    children:
      - kind: button
        props: {label: Close}
`

// Element IDs in a full snapshot of mapsFixture.
const (
	idApp = iota + 1
	idMain
	idSearch
	idZoomIn
	idZoomLabel
	idTraffic
	idZoom
	idOverlay
	idMap
	idPrefs
	idClose
)

func newSession(t *testing.T) (*memtk.Toolkit, *Session) {
	t.Helper()
	tk, err := memtk.LoadFixture(strings.NewReader(mapsFixture), "")
	require.NoError(t, err)
	return tk, New(tk, Options{Strict: true})
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "gtk4"})
	assert.Error(t, err)
}

func TestOpen_EmptyMemtk(t *testing.T) {
	s, err := Open(Options{})
	require.NoError(t, err)
	assert.Equal(t, "a11y-bridge", s.App)
}

func TestNew_AppNameFromRoot(t *testing.T) {
	_, s := newSession(t)
	assert.Equal(t, "Maps", s.App)
}

func TestSnapshot_IDsAndRefs(t *testing.T) {
	_, s := newSession(t)
	tree, err := s.Snapshot(0)
	require.NoError(t, err)
	assert.Equal(t, idClose, tree.Len())

	a, ok := tree.Adapter(idMap)
	require.True(t, ok)
	assert.Equal(t, a11y.RoleImageMap, a.Role())
}

func TestWindows(t *testing.T) {
	_, s := newSession(t)
	windows, err := s.Windows()
	require.NoError(t, err)
	require.Len(t, windows, 2)

	assert.Equal(t, idMain, windows[0].ID)
	assert.Equal(t, "Maps", windows[0].Title)
	assert.True(t, windows[0].Focused, "focus is inside the main window")
	assert.Equal(t, []string{"maximize", "minimize"}, windows[0].Actions)

	assert.Equal(t, idPrefs, windows[1].ID)
	assert.False(t, windows[1].Focused)
}

func TestFocused(t *testing.T) {
	_, s := newSession(t)
	el, ok := s.Focused()
	require.True(t, ok)
	assert.Equal(t, "input", el.Role)
	assert.Equal(t, "Search", el.Title)
}

func TestResolve(t *testing.T) {
	_, s := newSession(t)
	tests := []struct {
		name   string
		target Target
		wantID int
	}{
		{"by id", Target{ID: idTraffic}, idTraffic},
		{"by ref suffix", Target{Ref: "map-view"}, idMap},
		{"by text prefers interactive", Target{Text: "zoom in"}, idZoomIn},
		{"by text with role", Target{Text: "zoom in", Roles: "txt"}, idZoomLabel},
		{"by exact text", Target{Text: "zoom", Exact: true}, idZoom},
		{"by text in scope", Target{Text: "close", ScopeID: idPrefs}, idClose},
		{"id wins over text", Target{ID: idSearch, Text: "close"}, idSearch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := s.Resolve(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, r.Element.ID)
			assert.Nil(t, r.Element.Children)
			assert.False(t, r.Adapter.Defunct())
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	_, s := newSession(t)
	tests := []struct {
		name    string
		target  Target
		wantErr string
	}{
		{"empty", Target{}, "specify id, ref or text"},
		{"unknown id", Target{ID: 99}, "id 99 not found"},
		{"unknown ref", Target{Ref: "nowhere"}, "no element matches ref"},
		{"no text match", Target{Text: "satellite"}, "no element found"},
		{"bad scope", Target{Text: "close", ScopeID: 99}, "scope element"},
		{"ambiguous", Target{Text: "zoom", Roles: "btn,slider"}, "multiple elements match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Resolve(tt.target)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
