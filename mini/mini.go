// Package mini implements the numbered-menu interface for catalog browsing and playback.
package mini

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/player"
	"github.com/pencuri-cli/pencuri/util"
	"github.com/spf13/viper"
)

// Options configure a session.
type Options struct {
	Site   catalog.Site
	Player player.Player

	In  io.Reader
	Out io.Writer

	// Prompter defaults to survey on a terminal and to line reading otherwise.
	Prompter Prompter
}

type mini struct {
	ctx    context.Context
	site   catalog.Site
	player player.Player
	out    io.Writer
	prompt Prompter

	previewWidth int

	state         state
	statesHistory util.Stack[state]

	taxonomy string
	items    []*catalog.MenuItem
	entries  []*catalog.Entry
	series   *catalog.Series
	episodes []*catalog.Episode
	sources  []*catalog.PlayerSource
}

func newMini(ctx context.Context, options *Options) *mini {
	m := &mini{
		ctx:          ctx,
		site:         options.Site,
		player:       options.Player,
		out:          options.Out,
		prompt:       options.Prompter,
		previewWidth: viper.GetInt(key.MiniURLPreview),
		state:        rootState,
	}

	if m.out == nil {
		m.out = os.Stdout
	}

	if m.prompt == nil {
		in := options.In
		if in == nil {
			in = os.Stdin
		}

		if util.IsTerminal(in) {
			m.prompt = Survey{}
		} else {
			m.prompt = NewLines(in, m.out)
		}
	}

	if m.previewWidth <= 0 {
		m.previewWidth = 40
	}
	if w, _, err := util.TerminalSize(); err == nil {
		m.previewWidth = util.Max(util.Min(m.previewWidth, w-20), 10)
	}

	return m
}

// previousState returns to the menu the current one was entered from.
func (m *mini) previousState() {
	if s, ok := m.statesHistory.Pop(); ok {
		m.state = s
		return
	}
	m.state = rootState
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.state = s
}

// home collapses the navigation back to the root menu.
func (m *mini) home() {
	m.statesHistory.Clear()
	m.state = rootState
}

// Run drives the session until the user exits or input ends.
// No navigation failure ends the session.
func Run(ctx context.Context, options *Options) error {
	if options.Site == nil {
		return errors.New("no catalog site")
	}
	if options.Player == nil {
		options.Player = player.New()
	}

	m := newMini(ctx, options)
	for m.state != quitState {
		err := m.handleState()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case rootState:
		return m.handleRootState()
	case searchState:
		return m.handleSearchState()
	case taxonomyState:
		return m.handleTaxonomyState()
	case resultsState:
		return m.handleResultsState()
	case seasonsState:
		return m.handleSeasonsState()
	case episodesState:
		return m.handleEpisodesState()
	case sourcesState:
		return m.handleSourcesState()
	}

	return nil
}
