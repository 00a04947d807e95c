// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/log"
)

var errNoTarget = errors.New("either query or url is required")

func Run(ctx context.Context, options *Options) error {
	if options.Site == nil {
		return errors.New("site not set")
	}

	if options.Out == nil {
		options.Out = os.Stdout
	}

	var (
		entries []*catalog.Entry
		err     error
	)

	switch {
	case options.URL != "":
		entries, err = options.Site.Browse(ctx, options.URL)
	case options.Query != "":
		entries, err = options.Site.Search(ctx, options.Query)
	default:
		return errNoTarget
	}

	if err != nil && !errors.Is(err, catalog.ErrEmpty) {
		return fmt.Errorf("%s: %w", options.Site.Name(), err)
	}

	selected := entries
	if options.EntryPicker.IsPresent() {
		selected = nil
		if choice := options.EntryPicker.MustGet()(entries); choice != nil {
			selected = []*catalog.Entry{choice}
		}
	}

	out := &Output{
		Site:  options.Site.ID(),
		Query: options.Query,
		URL:   options.URL,
	}

	for _, entry := range selected {
		result, err := prepare(ctx, entry, options)
		if err != nil {
			return err
		}
		out.Result = append(out.Result, result)
	}

	if options.Json {
		return writeJson(out, options)
	}

	if len(out.Result) == 0 {
		return catalog.ErrEmpty
	}

	writePlain(out, options)
	return nil
}

// prepare resolves the picked entry. Without a picker every listed entry is
// reported as-is to keep a single page fetch per run.
func prepare(ctx context.Context, entry *catalog.Entry, options *Options) (*Result, error) {
	result := &Result{Entry: entry}
	if !options.EntryPicker.IsPresent() {
		return result, nil
	}

	if !entry.IsSeries() {
		if options.Sources {
			result.Sources = sources(ctx, entry.URL, options)
		}
		return result, nil
	}

	series, err := options.Site.Series(ctx, entry.URL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", entry.Title, err)
	}

	if series.Flat() {
		if options.Sources {
			result.Sources = series.Sources
		}
		return result, nil
	}

	seasons := series.Seasons
	if options.SeasonPicker.IsPresent() {
		seasons = options.SeasonPicker.MustGet()(seasons)
	}

	for _, season := range seasons {
		episodes, err := options.Site.Episodes(season)
		if err != nil {
			log.Warnf("failed to list episodes of %s: %v", season.Label, err)
			continue
		}

		if options.EpisodesFilter.IsPresent() {
			episodes, err = options.EpisodesFilter.MustGet()(episodes)
			if err != nil {
				return nil, err
			}
		}

		s := &Season{Season: season, Episodes: make([]*Episode, len(episodes))}
		for i, episode := range episodes {
			s.Episodes[i] = &Episode{Episode: episode}
			if options.Sources {
				s.Episodes[i].Sources = sources(ctx, episode.URL, options)
			}
		}

		result.Seasons = append(result.Seasons, s)
	}

	return result, nil
}

func sources(ctx context.Context, url string, options *Options) []*catalog.PlayerSource {
	found, err := options.Site.Sources(ctx, url)
	if err != nil {
		log.Warnf("failed to resolve sources of %s: %v", url, err)
		return nil
	}
	return found
}

// writePlain prints one URL per line: sources when resolved, else the
// deepest resolved level (episodes or entries).
func writePlain(out *Output, options *Options) {
	line := func(url string) {
		fmt.Fprintln(options.Out, url)
	}

	for _, result := range out.Result {
		if len(result.Seasons) == 0 {
			if options.Sources && len(result.Sources) > 0 {
				for _, s := range result.Sources {
					line(s.URL)
				}
				continue
			}
			line(result.Entry.URL)
			continue
		}

		for _, season := range result.Seasons {
			for _, episode := range season.Episodes {
				log.Info("Found " + episode.Episode.Label)
				if options.Sources && len(episode.Sources) > 0 {
					for _, s := range episode.Sources {
						line(s.URL)
					}
					continue
				}
				line(episode.Episode.URL)
			}
		}
	}
}
