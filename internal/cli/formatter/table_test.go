package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "STATUS"},
		[][]string{
			{StyleBold.Render("Mobile App"), "Draft"},
			{"API", StyleGreen.Render("Approved")},
		},
	)
	lines := splitLines(ansi.Strip(out))
	require.Len(t, lines, 4)
	col := strings.Index(lines[0], "STATUS")
	assert.Equal(t, col, strings.Index(lines[2], "Draft"))
	assert.Equal(t, col, strings.Index(lines[3], "Approved"))
}

func TestRenderTable_ShortRowsPadded(t *testing.T) {
	out := ansi.Strip(RenderTable([]string{"A", "B"}, [][]string{{"only"}}))
	assert.Contains(t, out, "only")
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderTree(t *testing.T) {
	out := ansi.Strip(RenderTree([]TreeItem{
		{Title: "Root"},
		{Title: "First", Level: 1, Detail: "approved"},
		{Title: "Last", Level: 1, IsLast: true},
	}))
	lines := splitLines(out)
	require.Len(t, lines, 3)
	assert.Equal(t, "Root", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], treeBranch+"First"))
	assert.True(t, strings.HasPrefix(lines[2], treeCorner+"Last"))
	assert.Contains(t, lines[1], "approved")
	assert.Empty(t, RenderTree(nil))
}
