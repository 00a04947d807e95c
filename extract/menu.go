package extract

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

const maxMenuLabel = 20

var (
	genrePathMarkers = []string{"/genre/"}
	yearPathMarkers  = []string{"/release-year/", "/year/"}
)

// Menu extracts the genre and year taxonomies of the home page.
func Menu(root dom.Node) *catalog.Menu {
	var genres, years []*catalog.MenuItem

	for _, a := range dom.FindAll(root, dom.And(dom.Tag("a"), dom.HasAttr("href"))) {
		label := dom.TextOf(a)
		if label == "" || utf8.RuneCountInString(label) > maxMenuLabel {
			continue
		}

		href := dom.AttrOr(a, "href", "")
		item := &catalog.MenuItem{Label: label, URL: href}

		if containsAny(href, genrePathMarkers) {
			genres = append(genres, item)
		}
		if containsAny(href, yearPathMarkers) && isDigits(label) {
			years = append(years, item)
		}
	}

	genres = dedupe(genres)
	years = dedupe(years)

	slices.SortStableFunc(genres, func(a, b *catalog.MenuItem) int {
		return strings.Compare(a.Label, b.Label)
	})
	slices.SortStableFunc(years, func(a, b *catalog.MenuItem) int {
		return yearOf(b) - yearOf(a)
	})

	return &catalog.Menu{Genres: genres, Years: years}
}

func dedupe(items []*catalog.MenuItem) []*catalog.MenuItem {
	return lo.UniqBy(items, func(m *catalog.MenuItem) catalog.MenuItem {
		return *m
	})
}

func yearOf(m *catalog.MenuItem) int {
	n, err := strconv.Atoi(m.Label)
	if err != nil {
		return 0
	}
	return n
}

func containsAny(s string, markers []string) bool {
	return lo.SomeBy(markers, func(m string) bool {
		return strings.Contains(s, m)
	})
}

func isDigits(s string) bool {
	return s != "" && lo.EveryBy([]rune(s), func(r rune) bool { return r >= '0' && r <= '9' })
}
