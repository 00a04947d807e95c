package adblock

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIsAd(t *testing.T) {
	Convey("Given ad hosts", t, func() {
		Convey("Mixed case hosts are detected", func() {
			So(IsAdHost("www.GoogleAds.com"), ShouldBeTrue)
			So(IsAdHost("stats.doubleclick.net"), ShouldBeTrue)
		})

		Convey("Clean hosts are kept", func() {
			So(IsAdHost("google.com"), ShouldBeFalse)
			So(IsAdHost("example.com"), ShouldBeFalse)
			So(IsAdHost(""), ShouldBeFalse)
		})

		Convey("URLs are matched by host", func() {
			So(IsAd("https://www.GoogleAds.com/some/path"), ShouldBeTrue)
			So(IsAd("//a.popads.net/pop.js"), ShouldBeTrue)
			So(IsAd("https://google.com/search?q=doubleclick"), ShouldBeFalse)
		})

		Convey("Video hosts are never treated as ads", func() {
			So(IsAd("https://dsvplay.com/e/abc"), ShouldBeFalse)
		})
	})
}

func TestScript(t *testing.T) {
	Convey("The injected script embeds the stylesheet", t, func() {
		So(Script(), ShouldContainSubstring, "window.open")
		So(Script(), ShouldContainSubstring, ".detect-adblock")
		So(Script(), ShouldNotContainSubstring, "%s")
		So(Stylesheet(), ShouldNotContainSubstring, "\n")
	})
}
