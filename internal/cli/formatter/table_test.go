package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsOnVisibleWidth(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "B"},
		[][]string{
			{StyleGreen.Render("long cell"), "x"},
			{"s", "y"},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "A          B", lines[0])
	assert.Equal(t, "─────────  ─", lines[1])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          y", lines[3])
}

func TestRenderTable_ShortRowsAndNoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))

	out := stripANSI(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Contains(t, out, "only")
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "English"},
		{Title: "basic", Level: 1},
		{Title: "Book A", Level: 2, IsLast: true, Detail: "10h"},
		{Title: "tier2", Level: 1, IsLast: true},
		{Title: "Book B", Level: 2, IsLast: true},
	}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "English", lines[0])
	assert.Equal(t, "├─ basic", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "│  └─ Book A"))
	assert.True(t, strings.HasSuffix(lines[2], "[ 10h ]"))
	assert.Equal(t, "└─ tier2", lines[3])
	assert.Equal(t, "   └─ Book B", lines[4])

	assert.Equal(t, "", RenderTree(nil))
}
