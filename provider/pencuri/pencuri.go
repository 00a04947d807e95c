// Package pencuri scrapes catalog sites built on the MoviesPlus/Muvipro family of
// WordPress themes, pencurimovie being the reference deployment.
package pencuri

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/extract"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/pencuri-cli/pencuri/network"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const (
	ID   = "pencuri"
	Name = "Pencuri Movie"
)

var errSeasonContent = errors.New("season has no content")

// Fetcher is the part of the network session the site needs.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*network.Page, error)
	Resolve(ctx context.Context, url string) (string, error)
}

// Options configure a Site.
type Options struct {
	BaseURL    string
	SearchPath string
	Rules      extract.Rules

	// ResolveRedirects lists embed host markers whose links are followed to their final URL.
	ResolveRedirects []string
}

// OptionsFromConfig reads the site options from the configuration.
func OptionsFromConfig() Options {
	return Options{
		BaseURL:          viper.GetString(key.SiteBaseURL),
		SearchPath:       viper.GetString(key.SiteSearchPath),
		Rules:            extract.RulesFromConfig(),
		ResolveRedirects: viper.GetStringSlice(key.SourcesResolveRedirects),
	}
}

// Site implements catalog.Site.
type Site struct {
	fetcher Fetcher
	options Options
	menu    *catalog.Menu
}

// New creates a Site over the given session.
func New(fetcher Fetcher, options Options) *Site {
	options.BaseURL = strings.TrimRight(options.BaseURL, "/")
	if options.SearchPath == "" {
		options.SearchPath = "/?s="
	}

	return &Site{fetcher: fetcher, options: options}
}

// NewFromConfig creates a Site and its session from the configuration.
func NewFromConfig() (catalog.Site, error) {
	fetcher, err := network.NewFromConfig()
	if err != nil {
		return nil, err
	}
	return New(fetcher, OptionsFromConfig()), nil
}

func (s *Site) Name() string { return Name }
func (s *Site) ID() string   { return ID }

// SearchURL returns the listing URL of a free-text query.
func (s *Site) SearchURL(query string) string {
	return s.options.BaseURL + s.options.SearchPath + url.QueryEscape(strings.TrimSpace(query))
}

func (s *Site) Search(ctx context.Context, query string) ([]*catalog.Entry, error) {
	return s.Browse(ctx, s.SearchURL(query))
}

func (s *Site) Browse(ctx context.Context, link string) ([]*catalog.Entry, error) {
	page, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	entries := extract.Listing(page.Root, s.options.Rules)
	for _, e := range entries {
		e.URL = page.Abs(e.URL)
		e.Poster = page.Abs(e.Poster)
	}

	log.Infof("pencuri: %d entries at %s", len(entries), link)
	return entries, nil
}

// Menu returns the taxonomies of the home page. They are fetched once per session.
func (s *Site) Menu(ctx context.Context) (*catalog.Menu, error) {
	if s.menu != nil {
		return s.menu, nil
	}

	page, err := s.fetcher.Fetch(ctx, s.options.BaseURL)
	if err != nil {
		return nil, err
	}

	menu := extract.Menu(page.Root)
	menu.Genres = absMenu(page, menu.Genres)
	menu.Years = absMenu(page, menu.Years)

	log.Infof("pencuri: menu with %d genres and %d years", len(menu.Genres), len(menu.Years))
	if len(menu.Genres) > 0 || len(menu.Years) > 0 {
		s.menu = menu
	}
	return menu, nil
}

// absMenu resolves item links and drops the pairs that became equal,
// keeping the first occurrence and the sort order.
func absMenu(page *network.Page, items []*catalog.MenuItem) []*catalog.MenuItem {
	for _, item := range items {
		item.URL = page.Abs(item.URL)
	}
	return lo.UniqBy(items, func(item *catalog.MenuItem) catalog.MenuItem {
		return *item
	})
}

func (s *Site) Series(ctx context.Context, link string) (*catalog.Series, error) {
	page, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	series := &catalog.Series{URL: page.URL.String(), Seasons: extract.Seasons(page.Root)}
	for _, season := range series.Seasons {
		season.Page = series.URL
	}

	if series.Flat() {
		log.Infof("pencuri: %s has no seasons, reading its sources", link)
		series.Sources = s.sourcesOf(ctx, page)
	}

	return series, nil
}

func (s *Site) Episodes(season *catalog.Season) ([]*catalog.Episode, error) {
	if season == nil || season.Node == nil {
		return nil, errSeasonContent
	}

	base := &network.Page{}
	if u, err := url.Parse(season.Page); err == nil && season.Page != "" {
		base.URL = u
	}

	episodes := extract.Episodes(season.Node)
	for _, e := range episodes {
		e.URL = base.Abs(e.URL)
	}
	return episodes, nil
}

func (s *Site) Sources(ctx context.Context, link string) ([]*catalog.PlayerSource, error) {
	page, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	sources := s.sourcesOf(ctx, page)
	if len(sources) == 0 {
		return nil, catalog.ErrNoSources
	}
	return sources, nil
}

func (s *Site) sourcesOf(ctx context.Context, page *network.Page) []*catalog.PlayerSource {
	sources := extract.Sources(page.Root, s.options.Rules)

	for _, src := range sources {
		src.URL = page.Abs(src.URL)
		if !s.shouldResolve(src.URL) {
			continue
		}

		resolved, err := s.fetcher.Resolve(ctx, src.URL)
		if err != nil {
			log.Warnf("pencuri: could not resolve %s: %s", src.URL, err)
			continue
		}
		src.URL = resolved
	}

	return lo.UniqBy(sources, func(src *catalog.PlayerSource) string {
		return src.URL
	})
}

func (s *Site) shouldResolve(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	return lo.SomeBy(s.options.ResolveRedirects, func(marker string) bool {
		return marker != "" && strings.Contains(host, strings.ToLower(marker))
	})
}
