package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// MenuWidth is the outer width of the slide menu, border included
const MenuWidth = 30

// MenuState is what the menu needs to draw itself
type MenuState struct {
	Titles  []string
	Current int
	Cursor  int
	IsMatch func(int) bool
	Height  int // outer height, border included
}

// renderMenu draws the slide list, scrolled so the cursor is visible
func (r *Renderer) renderMenu(state MenuState) string {
	inner := state.Height - 2
	if inner < 1 {
		inner = 1
	}
	textWidth := MenuWidth - 4 // border and padding

	start := menuOffset(state.Cursor, len(state.Titles), inner)
	end := start + inner
	if end > len(state.Titles) {
		end = len(state.Titles)
	}

	var rows []string
	for i := start; i < end; i++ {
		marker := "  "
		if i == state.Current {
			marker = "▸ "
		}
		line := ansi.Truncate(fmt.Sprintf("%s%d. %s", marker, i+1, state.Titles[i]), textWidth, "…")
		line += strings.Repeat(" ", max(0, textWidth-ansi.StringWidth(line)))

		style := r.styles.MenuItem
		switch {
		case i == state.Current:
			style = r.styles.MenuCurrent
		case state.IsMatch != nil && state.IsMatch(i):
			style = r.styles.Match
		}
		if i == state.Cursor {
			style = style.Inherit(r.styles.MenuCursor)
		}
		rows = append(rows, style.Render(line))
	}

	return r.styles.MenuBox.
		Width(MenuWidth - 2).
		Height(inner).
		Render(strings.Join(rows, "\n"))
}

// menuOffset returns the first visible row for a window of height rows
// that keeps cursor in view, keeping the cursor centered where possible.
func menuOffset(cursor, total, height int) int {
	if total <= height {
		return 0
	}
	offset := cursor - height/2
	if offset < 0 {
		offset = 0
	}
	if offset > total-height {
		offset = total - height
	}
	return offset
}
