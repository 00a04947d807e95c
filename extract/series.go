package extract

import (
	"fmt"
	"strings"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/dom"
)

var seasonContainer = dom.Or(dom.Class("tvseason"), dom.Class("se-c"))

// Seasons lists the season containers of a series page in display order.
// An empty result means the page is flat and carries its sources directly.
func Seasons(root dom.Node) []*catalog.Season {
	containers := dom.FindAll(root, seasonContainer)
	seasons := make([]*catalog.Season, 0, len(containers))

	for i, c := range containers {
		seasons = append(seasons, &catalog.Season{
			Index: i + 1,
			Label: seasonLabel(c, i+1),
			Node:  c,
		})
	}
	return seasons
}

func seasonLabel(container dom.Node, index int) string {
	if strong, ok := dom.FindFirst(container, dom.Tag("strong")); ok {
		if label := dom.TextOf(strong); label != "" {
			return label
		}
	}
	if title, ok := dom.FindFirst(container, dom.Class("title")); ok {
		if label := dom.TextOf(title); label != "" {
			return label
		}
	}
	return fmt.Sprintf("Season %d", index)
}

// EpisodeChain returns the episode strategies in priority order.
func EpisodeChain() Chain[*catalog.Episode] {
	return Chain[*catalog.Episode]{
		NewStrategy("les-content", func(season dom.Node) []*catalog.Episode {
			content, ok := dom.FindFirst(season, dom.And(dom.Tag("div"), dom.Class("les-content")))
			if !ok {
				return nil
			}
			return episodesOf(dom.FindAll(content, dom.Tag("a")))
		}),
		NewStrategy("list-items", func(season dom.Node) []*catalog.Episode {
			return episodesOf(dom.FindAll(season, dom.Tag("li")))
		}),
	}
}

// Episodes lists the episodes of a season container.
func Episodes(season dom.Node) []*catalog.Episode {
	episodes, _ := EpisodeChain().Run(season)
	return episodes
}

func episodesOf(elements []dom.Node) []*catalog.Episode {
	var episodes []*catalog.Episode
	for _, el := range elements {
		href := episodeURL(el)
		if href == "" {
			continue
		}

		label := dom.TextOf(el)
		if label == "" {
			label = fmt.Sprintf("Episode %d", len(episodes)+1)
		}

		episodes = append(episodes, &catalog.Episode{
			Index: len(episodes) + 1,
			Label: label,
			URL:   href,
		})
	}
	return episodes
}

// episodeURL reads the element's own link, or the link nested one level inside it.
func episodeURL(el dom.Node) string {
	if el.Tag() == "a" {
		if href := strings.TrimSpace(dom.AttrOr(el, "href", "")); href != "" {
			return href
		}
	}
	if a, ok := dom.FindFirst(el, dom.And(dom.Tag("a"), dom.HasAttr("href"))); ok {
		return strings.TrimSpace(dom.AttrOr(a, "href", ""))
	}
	return ""
}
