package catalog

import "fmt"

// Kind is the best-effort classification of an entry.
type Kind string

const (
	KindMovie  Kind = "MOVIE"
	KindSeries Kind = "SERIES"
)

// Entry is one title discovered on a listing page.
type Entry struct {
	// ID is the 1-based position of the entry within its result set.
	ID     int    `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Kind   Kind   `json:"type"`
	Poster string `json:"poster,omitempty"`
}

// String renders the entry the way result lists display it.
func (e *Entry) String() string {
	return fmt.Sprintf("%d. [%s] %s", e.ID, e.Kind, e.Title)
}

// IsSeries reports whether the entry should be navigated through seasons.
func (e *Entry) IsSeries() bool {
	return e.Kind == KindSeries
}
