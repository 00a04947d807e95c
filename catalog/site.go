// Package catalog defines the domain models and interfaces for catalog discovery and source resolution.
package catalog

import (
	"context"
	"errors"
)

var (
	// ErrEmpty is returned when every extraction strategy came up empty.
	ErrEmpty = errors.New("no results")

	// ErrNoSources is returned when a page carries no playable embed.
	ErrNoSources = errors.New("no playable links found")
)

// Site defines the capabilities of a catalog site scraping engine.
type Site interface {
	// Name returns the human readable name of the site.
	Name() string

	// ID returns the unique identifier of the site.
	ID() string

	// Search lists the entries matching a free-text query.
	Search(ctx context.Context, query string) ([]*Entry, error)

	// Browse lists the entries of a genre, year or any other listing page.
	Browse(ctx context.Context, url string) ([]*Entry, error)

	// Menu returns the genre and year taxonomies of the home page.
	Menu(ctx context.Context) (*Menu, error)

	// Series opens a series detail page.
	// A page without season structure yields no seasons but its sources.
	Series(ctx context.Context, url string) (*Series, error)

	// Episodes lists the episodes of a season.
	Episodes(season *Season) ([]*Episode, error)

	// Sources resolves the playable sources of a movie or episode page.
	Sources(ctx context.Context, url string) ([]*PlayerSource, error)
}
