package util

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "file", "files"), ShouldEqual, "1 file")
		So(Quantify(2, "file", "files"), ShouldEqual, "2 files")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestPrintErasable(t *testing.T) {
	Convey("An erasable message is overwritten with blanks", t, func() {
		var out bytes.Buffer
		erase := PrintErasable(&out, "Searching..")
		So(out.String(), ShouldEqual, "\rSearching..")

		erase()
		So(out.String(), ShouldEndWith, "\r"+strings.Repeat(" ", len("Searching.."))+"\r")
	})
}

func TestIsTerminal(t *testing.T) {
	Convey("Buffers are never terminals", t, func() {
		So(IsTerminal(&bytes.Buffer{}), ShouldBeFalse)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given files on a virtual filesystem", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/logs/old", os.ModePerm))
		lo.Must0(fs.WriteFile("/logs/scraper_debug.log", []byte("x"), 0o644))

		Convey("A file is removed", func() {
			So(Delete("/logs/scraper_debug.log"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs/scraper_debug.log")), ShouldBeFalse)
		})

		Convey("A directory is removed recursively", func() {
			So(Delete("/logs"), ShouldBeNil)
			So(lo.Must(fs.Exists("/logs/old")), ShouldBeFalse)
		})

		Convey("A missing path is an error", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Given a stack", t, func() {
		var s Stack[int]
		s.Push(1)
		s.Push(2)
		So(s.Len(), ShouldEqual, 2)

		Convey("Pop returns elements in reverse order", func() {
			item, ok := s.Pop()
			So(ok, ShouldBeTrue)
			So(item, ShouldEqual, 2)

			item, ok = s.Pop()
			So(ok, ShouldBeTrue)
			So(item, ShouldEqual, 1)

			_, ok = s.Pop()
			So(ok, ShouldBeFalse)
		})

		Convey("Clear empties it", func() {
			s.Clear()
			So(s.Len(), ShouldEqual, 0)
			_, ok := s.Pop()
			So(ok, ShouldBeFalse)
		})
	})
}
