package domain

import "strconv"

// Slide is one addressable unit of presentation content
type Slide struct {
	Index     int
	Title     string // first heading, "" if the slide has none
	Body      string // markdown
	Notes     string // speaker notes
	Animation string // entry effect name from an animate directive
}

// DeckMeta is the optional front matter of a deck file
type DeckMeta struct {
	Title      string         `yaml:"title"`
	Author     string         `yaml:"author"`
	Date       string         `yaml:"date"`
	Theme      string         `yaml:"theme"`
	Animations map[int]string `yaml:"animations"` // slide index -> effect name
}

// Deck is a parsed presentation
type Deck struct {
	Path   string
	Meta   DeckMeta
	Slides []Slide
}

// Len returns the number of slides
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Titles returns the menu label of every slide, falling back to
// "Slide N" for slides without a heading
func (d *Deck) Titles() []string {
	titles := make([]string, 0, d.Len())
	for _, s := range d.Slides {
		titles = append(titles, s.Label())
	}
	return titles
}

// Label returns the slide title or a numbered placeholder
func (s Slide) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return "Slide " + strconv.Itoa(s.Index+1)
}
