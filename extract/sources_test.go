package extract

import (
	"strings"
	"testing"

	"github.com/pencuri-cli/pencuri/catalog"
	"github.com/pencuri-cli/pencuri/dom"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func frame(attrs dom.Attrs) dom.Node {
	return dom.El("iframe", attrs)
}

func sourceURLs(sources []*catalog.PlayerSource) []string {
	return lo.Map(sources, func(s *catalog.PlayerSource, _ int) string { return s.URL })
}

func TestSources(t *testing.T) {
	rules := DefaultRules()

	Convey("Given tab containers", t, func() {
		root := dom.Doc(
			dom.El("div", dom.Attrs{"id": "tab1"}, frame(dom.Attrs{"src": "https://dsvplay.com/e/1"})),
			dom.El("div", dom.Attrs{"id": "tab2"}, frame(dom.Attrs{"data-src": "https://embed.example/v/2"})),
			dom.El("div", dom.Attrs{"id": "tab3"}, frame(dom.Attrs{"src": "https://www.facebook.com/plugins/video.php"})),
			dom.El("div", dom.Attrs{"id": "tab4"}),
			dom.El("div", dom.Attrs{"id": "tabs"}, frame(dom.Attrs{"src": "https://embed.example/not-a-tab"})),
			dom.El("div", dom.Attrs{"id": "tab5"}, frame(dom.Attrs{"src": "https://ads.doubleclick.net/x"})),
			frame(dom.Attrs{"src": "https://embed.example/outside"}),
		)

		sources, strategy := SourceChain(rules).Run(root)

		Convey("Each surviving tab is labeled by its identifier", func() {
			So(strategy, ShouldEqual, "tabs")
			So(sourceURLs(sources), ShouldResemble, []string{"https://dsvplay.com/e/1", "https://embed.example/v/2"})
			So(sources[0].Label, ShouldEqual, "Server tab1")
			So(sources[1].Label, ShouldEqual, "Server tab2")
		})
	})

	Convey("Given frames outside of any tab container", t, func() {
		root := dom.Doc(
			dom.El("div", dom.Attrs{"id": "tab1"}, frame(dom.Attrs{"src": "https://FACEBOOK.com/plugin"})),
			dom.El("div", dom.Attrs{"class": "player"}, frame(dom.Attrs{"src": "https://embed.example/v/9"})),
			frame(dom.Attrs{"data-src": "https://embed.example/v/10"}),
			frame(dom.Attrs{"src": "https://embed.example/v/9"}),
		)

		sources := Sources(root, rules)

		Convey("The fallback labels them by position", func() {
			So(sourceURLs(sources), ShouldResemble, []string{"https://embed.example/v/9", "https://embed.example/v/10"})
			So(sources[0].Label, ShouldEqual, "Source 2")
			So(sources[1].Label, ShouldEqual, "Source 3")
		})
	})

	Convey("Given a single frame elsewhere on the page", t, func() {
		root := dom.Doc(dom.El("section", nil, frame(dom.Attrs{"src": "//embed.example/v/1"})))

		sources := Sources(root, rules)
		So(sources, ShouldHaveLength, 1)
		So(sources[0].Label, ShouldEqual, "Source 1")
	})

	Convey("Social media frames never appear", t, func() {
		root := dom.Doc(
			frame(dom.Attrs{"src": "https://www.facebook.com/plugins/video.php"}),
			frame(dom.Attrs{"data-src": "https://connect.facebook.net/sdk.js"}),
		)
		So(Sources(root, rules), ShouldBeEmpty)

		Convey("Even when ad blocking is off", func() {
			So(Sources(root, Rules{NoiseMarkers: []string{"facebook"}}), ShouldBeEmpty)
		})
	})

	Convey("Ad frames are kept when ad blocking is off", t, func() {
		root := dom.Doc(frame(dom.Attrs{"src": "https://ads.doubleclick.net/x"}))
		So(Sources(root, Rules{}), ShouldHaveLength, 1)
		So(Sources(root, rules), ShouldBeEmpty)
	})

	Convey("Given a parsed episode page", t, func() {
		page := `<div id="content-embed">
<div id="tab1" class="movieplay"><iframe src="https://dsvplay.com/e/abc" allowfullscreen></iframe></div>
<div id="tab2" class="movieplay"><iframe data-src="https://embed.example/v/2"></iframe></div>
</div>`

		root, err := dom.Parse(strings.NewReader(page))
		So(err, ShouldBeNil)

		sources := Sources(root, rules)
		So(sourceURLs(sources), ShouldResemble, []string{"https://dsvplay.com/e/abc", "https://embed.example/v/2"})
	})
}
