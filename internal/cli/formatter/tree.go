package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem represents a single node in a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items as an indented tree using box-drawing connectors.
// Detail badges are right-aligned across all lines.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}
	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	// lastAt[d] tracks whether the most recent ancestor at depth d was the
	// last child, which decides between a pipe and blank indent.
	lastAt := map[int]bool{}
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for d := 1; d < item.Level; d++ {
				if lastAt[d] {
					prefix += treeBlank
				} else {
					prefix += treePipe
				}
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}
		lastAt[item.Level] = item.IsLast

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		lines[idx].content = StyleDim.Render(prefix) + title
		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render("[ " + item.Detail + " ]")
		}
		if w := lipgloss.Width(lines[idx].content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for _, li := range lines {
		if li.badge == "" {
			b.WriteString(li.content + "\n")
			continue
		}
		pad := max(maxContentWidth-lipgloss.Width(li.content), 0)
		b.WriteString(li.content + strings.Repeat(" ", pad) + "  " + li.badge + "\n")
	}
	return b.String()
}
