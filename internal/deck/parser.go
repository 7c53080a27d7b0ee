// Package deck turns a markdown file into an ordered list of slides.
//
// A deck is plain markdown. Slides are separated by a line holding only
// "---". An optional YAML front matter block may open the file. Inside a
// slide, a line holding only "???" starts the speaker notes, as does an
// HTML comment of the form <!-- notes: ... -->. An <!-- animate: NAME -->
// comment names the entry effect of the slide.
package deck

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"podium/internal/domain"
)

// ErrNoSlides is returned for a deck with no non-empty slide
var ErrNoSlides = errors.New("deck has no slides")

const (
	separator   = "---"
	notesMarker = "???"
)

var (
	notesRE   = regexp.MustCompile(`(?s)<!--\s*notes:\s*(.*?)\s*-->`)
	animateRE = regexp.MustCompile(`<!--\s*animate:\s*([A-Za-z][\w-]*)\s*-->`)
)

// Load reads and parses the deck at path
func Load(path string) (*domain.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deck: %w", err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Parse reads a deck from r
func Parse(r io.Reader) (*domain.Deck, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	d := &domain.Deck{}
	lines = stripFrontMatter(lines, &d.Meta)

	for _, chunk := range splitSlides(lines) {
		slide, ok := parseSlide(chunk)
		if !ok {
			continue
		}
		slide.Index = len(d.Slides)
		d.Slides = append(d.Slides, slide)
	}

	if len(d.Slides) == 0 {
		return nil, ErrNoSlides
	}
	return d, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines, scanner.Err()
}

// stripFrontMatter consumes a leading YAML block. A leading block that is
// empty or is not a YAML mapping is treated as an ordinary first slide.
func stripFrontMatter(lines []string, meta *domain.DeckMeta) []string {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != separator {
		return lines
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != separator {
			continue
		}
		block := strings.Join(lines[1:i], "\n")
		var raw map[string]any
		if err := yaml.Unmarshal([]byte(block), &raw); err != nil || len(raw) == 0 {
			return lines
		}
		var parsed domain.DeckMeta
		if err := yaml.Unmarshal([]byte(block), &parsed); err != nil {
			return lines
		}
		*meta = parsed
		return lines[i+1:]
	}
	return lines
}

func splitSlides(lines []string) [][]string {
	var (
		chunks  [][]string
		current []string
		fence   string
	)
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
		}
		if fence == "" && trimmed == separator {
			chunks = append(chunks, current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	return append(chunks, current)
}

func fenceMarker(line string) string {
	switch {
	case strings.HasPrefix(line, "```"):
		return "```"
	case strings.HasPrefix(line, "~~~"):
		return "~~~"
	}
	return ""
}

func parseSlide(lines []string) (domain.Slide, bool) {
	var body, notes []string
	inNotes := false
	fence := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
		}
		if fence == "" && !inNotes && trimmed == notesMarker {
			inNotes = true
			continue
		}
		if inNotes {
			notes = append(notes, line)
		} else {
			body = append(body, line)
		}
	}

	text := strings.Join(body, "\n")
	var slide domain.Slide

	if m := animateRE.FindStringSubmatch(text); m != nil {
		slide.Animation = strings.ToLower(m[1])
	}
	text = animateRE.ReplaceAllString(text, "")

	var commentNotes []string
	for _, m := range notesRE.FindAllStringSubmatch(text, -1) {
		commentNotes = append(commentNotes, m[1])
	}
	text = notesRE.ReplaceAllString(text, "")

	slide.Body = strings.TrimSpace(text)
	slide.Notes = strings.TrimSpace(strings.Join(append(commentNotes, strings.Join(notes, "\n")), "\n\n"))
	slide.Title = findTitle(slide.Body)

	if slide.Body == "" && slide.Notes == "" {
		return slide, false
	}
	return slide, true
}

// findTitle returns the text of the first ATX heading outside code fences
func findTitle(body string) string {
	fence := ""
	scanner := bufio.NewScanner(bytes.NewBufferString(body))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		trimmed := strings.TrimSpace(scanner.Text())
		if marker := fenceMarker(trimmed); marker != "" {
			if fence == "" {
				fence = marker
			} else if strings.HasPrefix(trimmed, fence) {
				fence = ""
			}
			continue
		}
		if fence != "" || !strings.HasPrefix(trimmed, "#") {
			continue
		}
		heading := strings.TrimLeft(trimmed, "#")
		if heading != "" && heading[0] != ' ' && heading[0] != '\t' {
			continue // "#hashtag", not a heading
		}
		heading = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(heading), "#"))
		if heading != "" {
			return heading
		}
	}
	return ""
}
