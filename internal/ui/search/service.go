package search

import (
	"strings"

	"go.uber.org/zap"

	"podium/internal/domain"
)

// Service finds slides containing a query and steps between them
type Service struct {
	state      *State
	logger     *zap.Logger
	matcherFn  func(string) []MatchResult
	navigateFn func(int)
}

// NewService creates a new search service
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		state:  &State{},
		logger: logger,
	}
}

// SetMatcherFunction sets the function to find matches
func (s *Service) SetMatcherFunction(fn func(string) []MatchResult) {
	s.matcherFn = fn
}

// SetNavigateFunction sets the function called with the slide index of
// the current match
func (s *Service) SetNavigateFunction(fn func(int)) {
	s.navigateFn = fn
}

// DeckMatcher returns a matcher over the titles and bodies of deck's
// slides. Matching ignores case.
func DeckMatcher(deck *domain.Deck) func(string) []MatchResult {
	return func(query string) []MatchResult {
		if deck == nil || query == "" {
			return nil
		}
		q := strings.ToLower(query)
		var results []MatchResult
		for _, slide := range deck.Slides {
			if strings.Contains(strings.ToLower(slide.Title), q) ||
				strings.Contains(strings.ToLower(slide.Body), q) {
				results = append(results, MatchResult{Index: slide.Index, Title: slide.Label()})
			}
		}
		return results
	}
}

// StartSearch runs query and jumps to the first match at or after from.
// It reports whether anything matched.
func (s *Service) StartSearch(query string, from int) bool {
	s.state.Query = query
	s.state.Matches = nil
	s.state.CurrentMatch = 0

	if query == "" || s.matcherFn == nil {
		return false
	}

	for _, result := range s.matcherFn(query) {
		s.state.Matches = append(s.state.Matches, result.Index)
	}

	s.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("matches", len(s.state.Matches)))

	if len(s.state.Matches) == 0 {
		return false
	}

	for i, m := range s.state.Matches {
		if m >= from {
			s.state.CurrentMatch = i
			break
		}
	}
	s.navigateToCurrentMatch()
	return true
}

// Refresh reruns the current query, for example after the deck reloads,
// without navigating.
func (s *Service) Refresh() {
	if s.state.Query == "" || s.matcherFn == nil {
		return
	}
	s.state.Matches = nil
	for _, result := range s.matcherFn(s.state.Query) {
		s.state.Matches = append(s.state.Matches, result.Index)
	}
	if s.state.CurrentMatch >= len(s.state.Matches) {
		s.state.CurrentMatch = 0
	}
}

// ClearSearch clears the current search
func (s *Service) ClearSearch() {
	s.state.Query = ""
	s.state.Matches = nil
	s.state.CurrentMatch = 0
}

// NavigateNext moves to the next match, wrapping at the end
func (s *Service) NavigateNext() {
	if len(s.state.Matches) == 0 {
		return
	}
	s.state.CurrentMatch = (s.state.CurrentMatch + 1) % len(s.state.Matches)
	s.navigateToCurrentMatch()
}

// NavigatePrevious moves to the previous match, wrapping at the start
func (s *Service) NavigatePrevious() {
	if len(s.state.Matches) == 0 {
		return
	}
	s.state.CurrentMatch--
	if s.state.CurrentMatch < 0 {
		s.state.CurrentMatch = len(s.state.Matches) - 1
	}
	s.navigateToCurrentMatch()
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetMatchCount returns the number of matches
func (s *Service) GetMatchCount() int {
	return len(s.state.Matches)
}

// GetCurrentMatchIndex returns the slide index of the current match, or -1
func (s *Service) GetCurrentMatchIndex() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.Matches[s.state.CurrentMatch]
}

// GetCurrentMatchPosition returns the 0-based position in the match list, or -1
func (s *Service) GetCurrentMatchPosition() int {
	if len(s.state.Matches) == 0 {
		return -1
	}
	return s.state.CurrentMatch
}

// IsMatch checks if a slide index is a search match
func (s *Service) IsMatch(index int) bool {
	for _, match := range s.state.Matches {
		if match == index {
			return true
		}
	}
	return false
}

func (s *Service) navigateToCurrentMatch() {
	if s.navigateFn == nil || len(s.state.Matches) == 0 {
		return
	}
	s.navigateFn(s.state.Matches[s.state.CurrentMatch])
}
