package where

import (
	"path/filepath"
	"testing"

	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config() honors the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/pencuri")
			So(Config(), ShouldEqual, "/custom/pencuri")
			So(lo.Must(filesystem.API().IsDir("/custom/pencuri")), ShouldBeTrue)
		})

		Convey("Logs() lives under the config directory", func() {
			t.Setenv(EnvConfigPath, "/custom/pencuri")
			So(Logs(), ShouldEqual, filepath.Join("/custom/pencuri", "logs"))
			So(LogFile(), ShouldEqual, filepath.Join("/custom/pencuri", "logs", constant.LogFile))
		})

		Convey("AdFilter() is not created eagerly", func() {
			t.Setenv(EnvConfigPath, "/custom/pencuri")
			path := AdFilter()
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeFalse)
			So(lo.Must(filesystem.API().IsDir(Extensions())), ShouldBeTrue)
		})

		Convey("Temp()", func() {
			So(lo.Must(filesystem.API().IsDir(Temp())), ShouldBeTrue)
		})
	})
}
