package mini

import (
	"fmt"
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/icon"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/pencuri-cli/pencuri/util"
)

type state int

const (
	rootState state = iota + 1
	searchState
	taxonomyState
	resultsState
	seasonsState
	episodesState
	sourcesState
	quitState
)

const (
	actionSearch = iota + 1
	actionGenres
	actionYears
	actionExit
)

func (m *mini) handleRootState() error {
	m.title(fmt.Sprintf("=== %s ===", strings.ToUpper(constant.Pencuri+" movie")))
	m.println("1. Search")
	m.println("2. Browse Genres")
	m.println("3. Browse Years")
	m.println("4. Exit")

	in, err := m.prompt.Prompt("\nAction > ")
	if err != nil {
		return err
	}

	action, err := ParseSelection(in, actionExit)
	if err != nil {
		log.Debugf("mini: root selection: %s", err)
		return nil
	}

	switch action + 1 {
	case actionSearch:
		m.newState(searchState)
	case actionGenres, actionYears:
		m.openTaxonomy(action+1 == actionGenres)
	case actionExit:
		m.state = quitState
	}

	return nil
}

func (m *mini) handleSearchState() error {
	query, err := m.prompt.Prompt("Search: ")
	if err != nil {
		return err
	}

	if query == "" {
		m.previousState()
		return nil
	}

	erase := util.PrintErasable(m.out, icon.Get(icon.Progress)+" Searching..")
	entries, err := m.site.Search(m.ctx, query)
	erase()

	m.previousState()
	m.showEntries(entries, err)
	return nil
}

func (m *mini) openTaxonomy(genres bool) {
	erase := util.PrintErasable(m.out, icon.Get(icon.Progress)+" Fetching menu..")
	menu, err := m.site.Menu(m.ctx)
	erase()

	if err != nil {
		m.report(err)
		return
	}

	m.taxonomy, m.items = "Year", menu.Years
	if genres {
		m.taxonomy, m.items = "Genre", menu.Genres
	}

	if len(m.items) == 0 {
		m.info(msgNoResults)
		return
	}

	m.newState(taxonomyState)
}

func (m *mini) handleTaxonomyState() error {
	m.println()
	m.list(stringers(m.items))

	in, err := m.prompt.Prompt(fmt.Sprintf("\n%s: ", m.taxonomy))
	if err != nil {
		return err
	}

	i, err := ParseSelection(in, len(m.items))
	if err != nil {
		log.Debugf("mini: %s selection: %s", m.taxonomy, err)
		m.previousState()
		return nil
	}

	erase := util.PrintErasable(m.out, icon.Get(icon.Progress)+" Fetching "+m.items[i].Label+"..")
	entries, err := m.site.Browse(m.ctx, m.items[i].URL)
	erase()

	m.showEntries(entries, err)
	return nil
}

// showEntries enters the results list, or reports why there is none.
func (m *mini) showEntries(entries []*catalog.Entry, err error) {
	if err != nil {
		m.report(err)
		return
	}

	if len(entries) == 0 {
		m.info(msgNoResults)
		return
	}

	m.entries = entries
	m.newState(resultsState)
}

func (m *mini) handleResultsState() error {
	m.title("--- RESULTS ---")
	for _, e := range m.entries {
		m.println(e.String())
	}

	in, err := m.prompt.Prompt("\nSelect ID: ")
	if err != nil {
		return err
	}

	i, err := ParseSelection(in, len(m.entries))
	if err != nil {
		log.Debugf("mini: result selection: %s", err)
		m.fail(msgInvalid)
		m.previousState()
		return nil
	}

	entry := m.entries[i]
	if !entry.IsSeries() {
		m.openSources(entry.URL)
		return nil
	}

	erase := util.PrintErasable(m.out, icon.Get(icon.Progress)+" Fetching Seasons..")
	series, err := m.site.Series(m.ctx, entry.URL)
	erase()

	if err != nil {
		m.report(err)
		return nil
	}

	if series.Flat() {
		m.showSources(series.Sources, nil)
		return nil
	}

	m.series = series
	m.newState(seasonsState)
	return nil
}

func (m *mini) handleSeasonsState() error {
	m.title("--- SEASONS ---")
	m.list(stringers(m.series.Seasons))

	in, err := m.prompt.Prompt("\nSelect Season: ")
	if err != nil {
		return err
	}

	i, err := ParseSelection(in, len(m.series.Seasons))
	if err != nil {
		log.Debugf("mini: season selection: %s", err)
		m.previousState()
		return nil
	}

	episodes, err := m.site.Episodes(m.series.Seasons[i])
	if err != nil {
		m.report(err)
		return nil
	}

	if len(episodes) == 0 {
		m.info("No episodes found.")
		return nil
	}

	m.episodes = episodes
	m.newState(episodesState)
	return nil
}

func (m *mini) handleEpisodesState() error {
	m.title("--- EPISODES ---")
	m.list(stringers(m.episodes))

	in, err := m.prompt.Prompt("\nSelect Episode: ")
	if err != nil {
		return err
	}

	i, err := ParseSelection(in, len(m.episodes))
	if err != nil {
		log.Debugf("mini: episode selection: %s", err)
		m.previousState()
		return nil
	}

	m.openSources(m.episodes[i].URL)
	return nil
}

func (m *mini) openSources(link string) {
	erase := util.PrintErasable(m.out, icon.Get(icon.Progress)+" Extracting Players..")
	sources, err := m.site.Sources(m.ctx, link)
	erase()

	m.showSources(sources, err)
}

func (m *mini) showSources(sources []*catalog.PlayerSource, err error) {
	if err == nil && len(sources) == 0 {
		err = catalog.ErrNoSources
	}

	if err != nil {
		m.report(err)
		return
	}

	m.sources = sources
	m.newState(sourcesState)
}

func (m *mini) handleSourcesState() error {
	m.title("--- SERVERS ---")
	for i, s := range m.sources {
		m.println(fmt.Sprintf("%d. %s : %s", i+1, s.Label, m.preview(s.URL)))
	}

	in, err := m.prompt.Prompt("\nSelect Server (Number): ")
	if err != nil {
		return err
	}

	i, err := ParseSelection(in, len(m.sources))
	if err != nil {
		log.Debugf("mini: server selection: %s", err)
		m.previousState()
		return nil
	}

	source := m.sources[i]
	m.println(icon.Get(icon.Play), "Preparing to play:", source.URL)

	if err := m.player.Play(m.ctx, source.URL); err != nil {
		log.Error(err)
		m.fail("Could not launch a player: " + err.Error())
		return nil
	}

	m.home()
	return nil
}
