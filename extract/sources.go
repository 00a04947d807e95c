package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/pencuri-cli/pencuri/log"
	"github.com/samber/lo"
)

var tabContainer = dom.And(dom.Tag("div"), dom.IDMatches(regexp.MustCompile(`^tab\d+`)))

// SourceChain returns the source strategies in priority order.
func SourceChain(rules Rules) Chain[*catalog.PlayerSource] {
	return Chain[*catalog.PlayerSource]{
		NewStrategy("tabs", func(root dom.Node) []*catalog.PlayerSource {
			var sources []*catalog.PlayerSource
			for _, tab := range dom.FindAll(root, tabContainer) {
				frame, ok := dom.FindFirst(tab, dom.Tag("iframe"))
				if !ok {
					continue
				}

				src, ok := frameSource(frame, rules)
				if !ok {
					continue
				}

				id, _ := tab.Attr("id")
				sources = append(sources, &catalog.PlayerSource{Label: "Server " + id, URL: src})
			}
			return sources
		}),
		NewStrategy("frames", func(root dom.Node) []*catalog.PlayerSource {
			var sources []*catalog.PlayerSource
			for i, frame := range dom.FindAll(root, dom.Tag("iframe")) {
				src, ok := frameSource(frame, rules)
				if !ok {
					continue
				}

				// numbered by frame position, so excluded frames leave gaps
				sources = append(sources, &catalog.PlayerSource{Label: fmt.Sprintf("Source %d", i+1), URL: src})
			}
			return sources
		}),
	}
}

// Sources extracts the embedded player candidates of a movie or episode page.
func Sources(root dom.Node, rules Rules) []*catalog.PlayerSource {
	sources, _ := SourceChain(rules).Run(root)
	return lo.UniqBy(sources, func(s *catalog.PlayerSource) string {
		return s.URL
	})
}

func frameSource(frame dom.Node, rules Rules) (string, bool) {
	src := strings.TrimSpace(dom.AttrOr(frame, "src", dom.AttrOr(frame, "data-src", "")))
	if src == "" {
		return "", false
	}
	if rules.isNoiseSource(src) {
		log.Debugf("sources: noise frame %s excluded", src)
		return "", false
	}
	return src, true
}
