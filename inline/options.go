package inline

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	EntryPicker    func([]*catalog.Entry) *catalog.Entry
	SeasonPicker   func([]*catalog.Season) []*catalog.Season
	EpisodesFilter func([]*catalog.Episode) ([]*catalog.Episode, error)
)

type Options struct {
	Out  io.Writer
	Site catalog.Site

	// Query runs a search. URL lists any listing page instead.
	Query string
	URL   string

	EntryPicker    mo.Option[EntryPicker]
	SeasonPicker   mo.Option[SeasonPicker]
	EpisodesFilter mo.Option[EpisodesFilter]

	// Sources resolves player sources of the picked entries.
	Sources bool
	Json    bool
}

// ParseEntryPicker builds a picker from a kind (first, last, exact, index) and its value.
// Indexes start from 1 like entry IDs and are clamped to the last entry.
func ParseEntryPicker(kind, value string) (EntryPicker, error) {
	switch kind {
	case "first":
		return func(entries []*catalog.Entry) *catalog.Entry {
			if len(entries) == 0 {
				return nil
			}
			return entries[0]
		}, nil
	case "last":
		return func(entries []*catalog.Entry) *catalog.Entry {
			if len(entries) == 0 {
				return nil
			}
			return entries[len(entries)-1]
		}, nil
	case "exact":
		if strings.TrimSpace(value) == "" {
			return nil, errors.New("exact match requires a query")
		}
		return func(entries []*catalog.Entry) *catalog.Entry {
			e, ok := lo.Find(entries, func(e *catalog.Entry) bool {
				return strings.EqualFold(e.Title, value)
			})
			if !ok {
				return nil
			}
			return e
		}, nil
	case "index":
		idx, err := strconv.ParseUint(value, 10, 16)
		if err != nil || idx == 0 {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(entries []*catalog.Entry) *catalog.Entry {
			if len(entries) == 0 {
				return nil
			}
			i := util.Min(idx, uint64(len(entries)))
			return entries[i-1]
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker type: %s", kind)
	}
}

// ParseSeasonPicker accepts "first", "last", "all" or a 1-based season number.
func ParseSeasonPicker(description string) (SeasonPicker, error) {
	switch description {
	case "first":
		return func(seasons []*catalog.Season) []*catalog.Season {
			return lo.Slice(seasons, 0, 1)
		}, nil
	case "last":
		return func(seasons []*catalog.Season) []*catalog.Season {
			return lo.Slice(seasons, len(seasons)-1, len(seasons))
		}, nil
	case "all":
		return func(seasons []*catalog.Season) []*catalog.Season {
			return seasons
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil || idx == 0 {
		return nil, fmt.Errorf("invalid season selector: %s", description)
	}

	return func(seasons []*catalog.Season) []*catalog.Season {
		if uint64(len(seasons)) < idx {
			return []*catalog.Season{}
		}
		return []*catalog.Season{seasons[idx-1]}
	}, nil
}

// ParseEpisodesFilter accepts "first", "last", "all", "N", "A-B" and "@substring@".
// Numbers are 1-based and ranges are inclusive.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			return lo.Slice(episodes, 0, 1), nil
		}, nil
	case "last":
		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			return lo.Slice(episodes, len(episodes)-1, len(episodes)), nil
		}, nil
	case "all":
		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			return episodes, nil
		}, nil
	}

	// Range: "1-5"
	if from, to, ok := strings.Cut(description, "-"); ok {
		a, err1 := strconv.ParseUint(from, 10, 16)
		b, err2 := strconv.ParseUint(to, 10, 16)
		if err1 != nil || err2 != nil || a == 0 || b == 0 {
			return nil, fmt.Errorf("invalid episode range: %s", description)
		}

		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			n := uint64(len(episodes))
			start := util.Min(a-1, n)
			end := util.Min(b, n)
			if start >= end {
				return []*catalog.Episode{}, nil
			}
			return episodes[start:end], nil
		}, nil
	}

	// Substring: "@text@"
	if len(description) >= 2 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			return lo.Filter(episodes, func(e *catalog.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Label), sub)
			}), nil
		}, nil
	}

	// Single episode: "5"
	if idx, err := strconv.ParseUint(description, 10, 16); err == nil && idx > 0 {
		return func(episodes []*catalog.Episode) ([]*catalog.Episode, error) {
			if uint64(len(episodes)) < idx {
				return []*catalog.Episode{}, nil
			}
			return []*catalog.Episode{episodes[idx-1]}, nil
		}, nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}
