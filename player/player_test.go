package player

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeTier struct {
	name      string
	available bool
	err       error
	launched  []string
}

func (f *fakeTier) Name() string    { return f.name }
func (f *fakeTier) Available() bool { return f.available }

func (f *fakeTier) Launch(_ context.Context, link string) error {
	f.launched = append(f.launched, link)
	return f.err
}

func TestLauncher(t *testing.T) {
	Convey("Given an enhanced and a default tier", t, func() {
		enhanced := &fakeTier{name: "enhanced", available: true}
		fallback := &fakeTier{name: "default", available: true}
		launcher := &Launcher{Tiers: []Tier{enhanced, fallback}}
		ctx := context.Background()

		Convey("The enhanced tier is preferred", func() {
			So(launcher.Play(ctx, " https://embed.example/v/1 "), ShouldBeNil)
			So(enhanced.launched, ShouldResemble, []string{"https://embed.example/v/1"})
			So(fallback.launched, ShouldBeEmpty)
		})

		Convey("An unavailable tier is skipped", func() {
			enhanced.available = false
			So(launcher.Play(ctx, "https://embed.example/v/1"), ShouldBeNil)
			So(enhanced.launched, ShouldBeEmpty)
			So(fallback.launched, ShouldHaveLength, 1)
		})

		Convey("A failing tier falls through to the next one", func() {
			enhanced.err = errors.New("crashed")
			So(launcher.Play(ctx, "https://embed.example/v/1"), ShouldBeNil)
			So(fallback.launched, ShouldHaveLength, 1)
		})

		Convey("When every tier fails the error says so", func() {
			enhanced.err = errors.New("crashed")
			fallback.err = errors.New("no handler")
			err := launcher.Play(ctx, "https://embed.example/v/1")
			So(errors.Is(err, ErrNoTier), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "no handler")
		})

		Convey("Unsafe targets never reach a tier", func() {
			for _, link := range []string{"", "-flag", "file:///etc/passwd", "https://a.example/\nb", "javascript:alert(1)"} {
				So(launcher.Play(ctx, link), ShouldNotBeNil)
			}
			So(enhanced.launched, ShouldBeEmpty)
			So(fallback.launched, ShouldBeEmpty)
		})
	})
}

func TestBrowserAvailable(t *testing.T) {
	Convey("Given an enhanced browser", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		lo.Must0(filesystem.API().MkdirAll("/ext/ublock", os.ModePerm))
		browser := &Browser{Enabled: true, Bin: os.Args[0], Extension: "/ext/ublock", GOOS: constant.Linux}

		Convey("It is available with a browser and the extension", func() {
			So(browser.Available(), ShouldBeTrue)
		})

		Convey("It is unavailable without the extension", func() {
			browser.Extension = "/ext/missing"
			So(browser.Available(), ShouldBeFalse)
		})

		Convey("It is unavailable on Android", func() {
			browser.GOOS = constant.Android
			So(browser.Available(), ShouldBeFalse)
		})

		Convey("It is unavailable when disabled", func() {
			browser.Enabled = false
			So(browser.Available(), ShouldBeFalse)
		})

		Convey("It is unavailable when the configured browser is missing", func() {
			browser.Bin = "/nonexistent/chromium"
			So(browser.Available(), ShouldBeFalse)
		})
	})
}

func TestSystem(t *testing.T) {
	Convey("The default tier is always available", t, func() {
		So(System{}.Available(), ShouldBeTrue)
		So(System{}.Name(), ShouldEqual, "default browser")
	})
}

func TestCleanProfiles(t *testing.T) {
	Convey("Given profiles left by earlier runs", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)

		fs := filesystem.API()
		live := lo.Must(newProfile("/tmp/pencuri"))
		lo.Must0(fs.WriteFile(filepath.Join(live, "SingletonLock"), nil, 0o644))
		stale := lo.Must(newProfile("/tmp/pencuri"))
		lo.Must0(fs.WriteFile(filepath.Join(stale, "Cookies"), []byte("x"), 0o644))
		lo.Must0(fs.MkdirAll("/tmp/pencuri/other", os.ModePerm))

		So(CleanProfiles("/tmp/pencuri"), ShouldBeNil)

		Convey("The profile of a running browser is kept", func() {
			So(lo.Must(fs.DirExists(live)), ShouldBeTrue)
		})

		Convey("Profiles without a lock are removed", func() {
			So(lo.Must(fs.DirExists(stale)), ShouldBeFalse)
		})

		Convey("Unrelated directories are left alone", func() {
			So(lo.Must(fs.DirExists("/tmp/pencuri/other")), ShouldBeTrue)
		})
	})

	Convey("A missing directory has nothing to clean", t, func() {
		filesystem.SetMemMapFs()
		Reset(filesystem.SetOsFs)
		So(CleanProfiles("/nowhere"), ShouldBeNil)
	})
}
