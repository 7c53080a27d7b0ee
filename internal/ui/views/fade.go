package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Desaturate strips colors from s and redraws every line in the faded
// grey. It is the first half of a cross-fade.
func (r *Renderer) Desaturate(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			lines[i] = plain
			continue
		}
		lines[i] = r.styles.Faded.Render(plain)
	}
	return strings.Join(lines, "\n")
}

// fitHeight pads or cuts s to exactly height lines
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
