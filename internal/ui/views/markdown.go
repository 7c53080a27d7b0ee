package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"podium/internal/domain"
)

type cacheKey struct {
	index int
	width int
}

// MarkdownRenderer turns slide bodies into terminal text with glamour.
// Output is cached per slide and width until Reset.
//
// wordWrap 0 wraps at the body width, a positive value wraps at that
// column and a negative one turns wrapping off.
type MarkdownRenderer struct {
	style     string
	wordWrap  int
	logger    *zap.Logger
	renderers map[int]*glamour.TermRenderer
	cache     map[cacheKey]string
}

// NewMarkdownRenderer builds a renderer for a glamour style name
// ("dark", "light", "notty", ...) or a path to a JSON style file.
func NewMarkdownRenderer(style string, wordWrap int, logger *zap.Logger) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarkdownRenderer{
		style:     style,
		wordWrap:  wordWrap,
		logger:    logger,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[cacheKey]string),
	}
}

// Style returns the glamour style in use
func (m *MarkdownRenderer) Style() string {
	return m.style
}

// Reset drops cached output, for example after the deck reloads
func (m *MarkdownRenderer) Reset() {
	m.cache = make(map[cacheKey]string)
}

// Render returns the slide body rendered for width columns. When glamour
// fails the raw markdown is returned so the slide still shows.
func (m *MarkdownRenderer) Render(slide domain.Slide, width int) string {
	key := cacheKey{index: slide.Index, width: width}
	if out, ok := m.cache[key]; ok {
		return out
	}

	out, err := m.render(slide.Body, width)
	if err != nil {
		m.logger.Warn("markdown render failed",
			zap.Int("slide", slide.Index),
			zap.Error(err))
		out = slide.Body
	}
	out = strings.Trim(out, "\n")
	m.cache[key] = out
	return out
}

func (m *MarkdownRenderer) render(body string, width int) (string, error) {
	r, err := m.rendererFor(width)
	if err != nil {
		return "", err
	}
	return r.Render(body)
}

func (m *MarkdownRenderer) rendererFor(width int) (*glamour.TermRenderer, error) {
	wrap := width
	switch {
	case m.wordWrap > 0:
		wrap = m.wordWrap
	case m.wordWrap < 0 || width < 0:
		wrap = 0
	}
	if r, ok := m.renderers[wrap]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(m.style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[wrap] = r
	return r, nil
}
