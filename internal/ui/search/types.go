package search

// State holds search state
type State struct {
	Query        string
	Matches      []int // Slide indices that match
	CurrentMatch int   // Position in Matches
}

// MatchResult is one slide that contains the query
type MatchResult struct {
	Index int
	Title string
}
