package catalog

import "github.com/pencuri-cli/pencuri/dom"

// Series is an opened series detail page.
type Series struct {
	URL     string    `json:"url"`
	Seasons []*Season `json:"seasons"`

	// Sources is populated only for flat series pages without seasons.
	Sources []*PlayerSource `json:"sources,omitempty"`
}

// Flat reports whether the page had no season structure.
func (s *Series) Flat() bool {
	return len(s.Seasons) == 0
}

// Season is one season container of a series page.
type Season struct {
	// Index is the 1-based display position.
	Index int    `json:"index"`
	Label string `json:"label"`
	// Page is the URL of the page the season was found on.
	Page string `json:"page"`

	// Node references the season container within the fetched page.
	Node dom.Node `json:"-"`
}

func (s *Season) String() string {
	return s.Label
}

// Episode is one episode link of a season.
type Episode struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

func (e *Episode) String() string {
	return e.Label
}
