package provider

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("When getting the built-in provider", t, func() {
		Convey("By id", func() {
			p, ok := Get("PENCURI")
			So(ok, ShouldBeTrue)
			So(p.CreateSite, ShouldNotBeNil)
		})

		Convey("By name", func() {
			p, ok := Get(Default().Name)
			So(ok, ShouldBeTrue)
			So(p.String(), ShouldEqual, "Pencuri Movie")
		})
	})
}
