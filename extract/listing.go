package extract

import (
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/pencuri-cli/pencuri/log"
)

const seriesPathMarker = "/series/"

// ListingChain returns the listing strategies in priority order.
//
// A strategy counts as empty when none of its blocks yields a valid entry, so a page whose
// catalog items are all noise or malformed falls through to articles. The site itself only
// falls back when no catalog item block exists at all.
func ListingChain(rules Rules) Chain[*catalog.Entry] {
	return Chain[*catalog.Entry]{
		listingStrategy("ml-item", dom.And(dom.Tag("div"), dom.Class("ml-item")), rules),
		listingStrategy("article", dom.Tag("article"), rules),
		listingStrategy("result-item", dom.And(dom.Tag("div"), dom.Class("result-item")), rules),
	}
}

// Listing extracts the catalog entries of a search, genre or year page.
func Listing(root dom.Node, rules Rules) []*catalog.Entry {
	entries, _ := ListingChain(rules).Run(root)
	return entries
}

func listingStrategy(name string, block dom.Matcher, rules Rules) Strategy[*catalog.Entry] {
	return NewStrategy(name, func(root dom.Node) []*catalog.Entry {
		var entries []*catalog.Entry
		for _, b := range dom.FindAll(root, block) {
			entry, ok := parseEntry(b, rules)
			if !ok {
				continue
			}
			entry.ID = len(entries) + 1
			entries = append(entries, entry)
		}
		return entries
	})
}

func parseEntry(block dom.Node, rules Rules) (*catalog.Entry, bool) {
	link, ok := dom.FindFirst(block, dom.And(dom.Tag("a"), dom.Class("ml-mask")))
	if !ok {
		link, ok = dom.FindFirst(block, dom.Tag("a"))
	}
	if !ok {
		log.Tracef("listing: block without link skipped")
		return nil, false
	}

	// the untruncated title, when the theme provides it
	title := strings.TrimSpace(dom.AttrOr(link, "oldtitle", ""))
	if title == "" {
		heading, ok := dom.FindFirst(block, dom.Tag("h2"))
		if !ok {
			log.Tracef("listing: block without title skipped")
			return nil, false
		}
		title = dom.TextOf(heading)
	}

	href := strings.TrimSpace(dom.AttrOr(link, "href", ""))
	if title == "" || href == "" {
		log.Tracef("listing: block with empty title or link skipped")
		return nil, false
	}

	if rules.isNoiseTitle(title) {
		log.Debugf("listing: noise title %q dropped", title)
		return nil, false
	}

	var poster string
	if img, ok := dom.FindFirst(block, dom.Tag("img")); ok {
		poster = dom.AttrOr(img, "data-original", dom.AttrOr(img, "src", ""))
	}

	return &catalog.Entry{
		Title:  title,
		URL:    href,
		Kind:   Classify(title, href),
		Poster: poster,
	}, true
}

// Classify guesses the kind of an entry from its link path and title.
// A movie whose title contains "season" is knowingly reported as a series.
func Classify(title, href string) catalog.Kind {
	if strings.Contains(href, seriesPathMarker) || strings.Contains(strings.ToLower(title), "season") {
		return catalog.KindSeries
	}
	return catalog.KindMovie
}
