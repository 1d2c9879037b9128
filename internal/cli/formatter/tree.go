package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree display.
type TreeItem struct {
	Title  string
	Icon   string // pre-styled glyph shown before the title
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree draws items with box-drawing connectors and right-aligned
// detail badges.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}
		content := prefix
		if item.Icon != "" {
			content += item.Icon + " "
		}
		content += item.Title
		contents[i] = content
		widest = max(widest, lipgloss.Width(content))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", widest-lipgloss.Width(contents[i])+2))
			b.WriteString(StyleBlue.Render("[ " + item.Detail + " ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
