package cmd

import (
	"testing"

	"github.com/pencuri-cli/pencuri/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilterMenu(t *testing.T) {
	Convey("Given genre items", t, func() {
		items := []*catalog.MenuItem{
			{Label: "Action", URL: "https://example.com/genre/action/"},
			{Label: "Animation", URL: "https://example.com/genre/animation/"},
			{Label: "Comedy", URL: "https://example.com/genre/comedy/"},
		}

		Convey("An empty filter keeps everything", func() {
			So(filterMenu(items, ""), ShouldHaveLength, 3)
		})

		Convey("Labels are fuzzy matched ignoring case", func() {
			got := filterMenu(items, "anm")
			So(got, ShouldHaveLength, 1)
			So(got[0].Label, ShouldEqual, "Animation")

			So(filterMenu(items, "COM"), ShouldHaveLength, 1)
		})

		Convey("No match yields nothing", func() {
			So(filterMenu(items, "horror"), ShouldBeEmpty)
		})
	})
}
