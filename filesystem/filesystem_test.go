package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs and keep files in memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")

			So(API().WriteFile("/tmp/pencuri/probe", []byte("ok"), 0o644), ShouldBeNil)
			exists, err := API().Exists("/tmp/pencuri/probe")
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Reset(SetOsFs)
	})
}
