package animation

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// risePadding is how many lines Rise starts below the final position
const risePadding = 2

// Playback is the progress of one effect on one slide
type Playback struct {
	Effect Effect
	Index  int // slide index
	Seq    int // transition the playback belongs to
	Step   int
	steps  int
}

// Start begins playback of e for a slide whose rendered content has the
// given number of blocks
func Start(e Effect, index, seq, blocks int) *Playback {
	p := &Playback{Effect: e, Index: index, Seq: seq}
	switch e {
	case Stagger, Cascade:
		p.steps = blocks - 1
		if p.steps < 0 {
			p.steps = 0
		}
	case Pop, Rise:
		p.steps = 1
	}
	return p
}

// Done reports whether the final frame has been reached
func (p *Playback) Done() bool {
	return p == nil || p.Step >= p.steps
}

// Advance moves to the next frame and reports whether more follow
func (p *Playback) Advance() bool {
	if p.Done() {
		return false
	}
	p.Step++
	return !p.Done()
}

// Apply renders content as it looks at the current frame. The line count
// of the result never changes between frames so the layout stays put.
func (p *Playback) Apply(content string) string {
	if p.Done() {
		return content
	}
	lines := strings.Split(content, "\n")

	switch p.Effect {
	case Stagger, Cascade:
		// Step n shows blocks [0, n]
		cut := blockEnd(lines, p.Step)
		for i := cut; i < len(lines); i++ {
			lines[i] = ""
		}
		return strings.Join(lines, "\n")

	case Pop:
		return faint(lines)

	case Rise:
		shifted := make([]string, 0, len(lines))
		for i := 0; i < risePadding && i < len(lines); i++ {
			shifted = append(shifted, "")
		}
		shifted = append(shifted, lines[:len(lines)-len(shifted)]...)
		return faint(shifted)
	}
	return content
}

// CountBlocks returns the number of blank-line separated blocks
func CountBlocks(content string) int {
	lines := strings.Split(content, "\n")
	count := 0
	inBlock := false
	for _, line := range lines {
		if isBlank(line) {
			inBlock = false
			continue
		}
		if !inBlock {
			count++
			inBlock = true
		}
	}
	return count
}

// blockEnd returns the line index just past block n (0-based)
func blockEnd(lines []string, n int) int {
	seen := -1
	inBlock := false
	for i, line := range lines {
		if isBlank(line) {
			if inBlock && seen == n {
				return i
			}
			inBlock = false
			continue
		}
		if !inBlock {
			seen++
			inBlock = true
		}
	}
	return len(lines)
}

func isBlank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}

func faint(lines []string) string {
	style := lipgloss.NewStyle().Faint(true)
	out := make([]string, len(lines))
	for i, line := range lines {
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			out[i] = plain
			continue
		}
		out[i] = style.Render(plain)
	}
	return strings.Join(out, "\n")
}
