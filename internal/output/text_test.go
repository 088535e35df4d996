package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-bridge/internal/model"
)

func TestRoleLabel(t *testing.T) {
	assert.Equal(t, "Check Box", RoleLabel("chk"))
	assert.Equal(t, "Image Map", RoleLabel("map"))
	assert.Equal(t, "Panel", RoleLabel("group"))
	assert.Equal(t, "Other", RoleLabel("other"))
}

func TestPrintText_Tree(t *testing.T) {
	buf := capture(t, FormatText)
	require.NoError(t, Print(sampleResult()))

	lines := strings.Split(strings.TrimRight(plain(buf), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "[1] Window"))
	assert.Contains(t, lines[0], `"Maps"`)
	assert.True(t, strings.HasPrefix(lines[1], "  [2] Entry"))
	assert.True(t, strings.HasSuffix(lines[1], "ref=search"))
	assert.True(t, strings.HasPrefix(lines[2], "  [3] Image Map"))
	assert.True(t, strings.HasSuffix(lines[2], "(focused)"))
}

func TestPrintText_Flat(t *testing.T) {
	buf := capture(t, FormatText)
	flat := model.FlattenElements(sampleResult().Elements)
	require.NoError(t, Print(ReadFlatResult{TS: 1, Elements: flat}))

	out := plain(buf)
	assert.Contains(t, out, "[2] Entry")
	assert.Contains(t, out, "window > input")
	assert.NotContains(t, out, "  [2]")
}

func TestPrintText_Value(t *testing.T) {
	buf := capture(t, FormatText)
	require.NoError(t, Print(model.Element{ID: 7, Role: "slider", Title: "Zoom", Value: "40"}))
	assert.Contains(t, plain(buf), `"Zoom" value=40`)
}

func TestPrintText_Windows(t *testing.T) {
	buf := capture(t, FormatText)
	windows := []model.Window{
		{ID: 1, Role: "window", Title: "Maps", Focused: true},
		{ID: 9, Role: "dialog", Title: "Preferences", Maximized: true},
	}
	require.NoError(t, Print(windows))

	lines := strings.Split(strings.TrimRight(plain(buf), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "TITLE")
	assert.Equal(t, "1    Maps        focused", lines[1])
	assert.Equal(t, "9    Preferences maximized", lines[2])
}

func TestPrintText_FallsBackToYAML(t *testing.T) {
	buf := capture(t, FormatText)
	require.NoError(t, Print(ValueResult{ID: 4, Role: "slider", Current: "40"}))
	assert.Contains(t, buf.String(), "current: \"40\"")
}
