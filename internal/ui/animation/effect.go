// Package animation maps slides to entry effects and plays them as a
// sequence of timed frames.
package animation

import (
	"fmt"
	"strings"
	"time"

	"podium/internal/domain"
)

// Effect is an entry animation variant
type Effect int

const (
	None    Effect = iota
	Stagger        // blocks appear one after another
	Pop            // whole slide fades in
	Rise           // slide settles into place from below
	Cascade        // like Stagger, faster
)

var effectNames = map[Effect]string{
	None:    "none",
	Stagger: "stagger",
	Pop:     "pop",
	Rise:    "rise",
	Cascade: "cascade",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Effect(%d)", int(e))
}

// Interval is the delay between two frames of the effect
func (e Effect) Interval() time.Duration {
	switch e {
	case Stagger, Rise:
		return 200 * time.Millisecond
	case Pop:
		return 150 * time.Millisecond
	case Cascade:
		return 100 * time.Millisecond
	}
	return 0
}

// ParseEffect resolves an effect by name. The empty string is None.
func ParseEffect(name string) (Effect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, nil
	}
	for e, n := range effectNames {
		if n == name {
			return e, nil
		}
	}
	return None, fmt.Errorf("unknown animation %q", name)
}

// Table maps slide indices to effects. Indices without an entry play None.
type Table struct {
	effects map[int]Effect
}

// NewTable returns an empty table
func NewTable() *Table {
	return &Table{effects: make(map[int]Effect)}
}

// Set assigns an effect to a slide. Setting None removes the entry.
func (t *Table) Set(index int, e Effect) {
	if e == None {
		delete(t.effects, index)
		return
	}
	t.effects[index] = e
}

// Merge applies named effects from src; later calls override earlier ones.
// Unknown names are returned as errors and skipped.
func (t *Table) Merge(src map[int]string) []error {
	var errs []error
	for index, name := range src {
		e, err := ParseEffect(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("slide %d: %w", index, err))
			continue
		}
		t.Set(index, e)
	}
	return errs
}

// Lookup returns the effect for index
func (t *Table) Lookup(index int) Effect {
	if t == nil {
		return None
	}
	return t.effects[index]
}

// Len returns the number of slides with an effect
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.effects)
}

// BuildTable assembles the table for a deck. Front matter is applied
// first, then per-slide directives, then overrides (the config file).
func BuildTable(deck *domain.Deck, overrides map[int]string) (*Table, []error) {
	t := NewTable()
	var errs []error
	if deck != nil {
		errs = append(errs, t.Merge(deck.Meta.Animations)...)
		directives := make(map[int]string)
		for _, s := range deck.Slides {
			if s.Animation != "" {
				directives[s.Index] = s.Animation
			}
		}
		errs = append(errs, t.Merge(directives)...)
	}
	errs = append(errs, t.Merge(overrides)...)
	return t, errs
}
