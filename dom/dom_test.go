package dom

import (
	"regexp"
	"strings"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given an HTML page", t, func() {
		page := `<!DOCTYPE html><html><head><title> Catalog </title></head><body>
<!-- banner -->
<div id="tab1" class="movieplay active"><iframe data-src="//embed.example/v/1"></iframe></div>
<a href="/genre/action/">  Action
  Movies </a>
</body></html>`

		root, err := Parse(strings.NewReader(page))
		So(err, ShouldBeNil)
		So(root.Kind(), ShouldEqual, DocumentNode)

		Convey("Elements expose their tag and attributes", func() {
			div, ok := FindFirst(root, IDMatches(regexp.MustCompile(`^tab\d+`)))
			So(ok, ShouldBeTrue)
			So(div.Tag(), ShouldEqual, "div")
			So(Class("movieplay")(div), ShouldBeTrue)
			So(Class("movie")(div), ShouldBeFalse)

			frame, ok := FindFirst(div, Tag("iframe"))
			So(ok, ShouldBeTrue)
			_, has := frame.Attr("src")
			So(has, ShouldBeFalse)
			So(AttrOr(frame, "src", AttrOr(frame, "data-src", "")), ShouldEqual, "//embed.example/v/1")
		})

		Convey("Text content is collapsed", func() {
			a, ok := FindFirst(root, Tag("a"))
			So(ok, ShouldBeTrue)
			So(TextOf(a), ShouldEqual, "Action Movies")

			title, _ := FindFirst(root, Tag("title"))
			So(TextOf(title), ShouldEqual, "Catalog")
		})

		Convey("Comments are not part of the tree", func() {
			text := TextOf(root)
			So(text, ShouldNotContainSubstring, "banner")
		})
	})
}

func TestFind(t *testing.T) {
	Convey("Given a synthetic tree", t, func() {
		root := Doc(
			El("div", Attrs{"class": "se-c"},
				El("strong", nil, Txt("Season 1")),
				El("ul", nil,
					El("li", nil, El("a", Attrs{"href": "/e1"}, Txt("Episode 1"))),
					El("li", nil, El("a", Attrs{"href": "/e2"}, Txt("Episode 2"))),
				),
			),
			El("DIV", Attrs{"CLASS": "tvseason"}, Txt("Season 2")),
		)

		Convey("FindAll preserves document order", func() {
			links := FindAll(root, Tag("a"))
			So(lo.Map(links, func(n Node, _ int) string { return AttrOr(n, "href", "") }), ShouldResemble, []string{"/e1", "/e2"})
		})

		Convey("Or matches either alternative", func() {
			seasons := FindAll(root, Or(Class("tvseason"), Class("se-c")))
			So(seasons, ShouldHaveLength, 2)
			So(seasons[1].Tag(), ShouldEqual, "div")
		})

		Convey("And requires every matcher", func() {
			So(FindAll(root, And(Tag("a"), HasAttr("href"))), ShouldHaveLength, 2)
			So(FindAll(root, And(Tag("li"), HasAttr("href"))), ShouldBeEmpty)
		})

		Convey("The root is excluded from its own search", func() {
			season := FindAll(root, Class("se-c"))[0]
			So(FindAll(season, Class("se-c")), ShouldBeEmpty)

			_, ok := FindFirst(season, Tag("strong"))
			So(ok, ShouldBeTrue)
		})

		Convey("Kinds have readable names", func() {
			So(ElementNode.String(), ShouldEqual, "element")
			So(Kind(42).String(), ShouldEqual, "unknown")
		})
	})
}
