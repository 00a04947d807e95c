package log

import (
	"strings"
	"testing"

	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is enabled", t, func() {
		t.Setenv(where.EnvConfigPath, "/cfg")
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")

		Convey("Setup truncates the previous run's log", func() {
			lo.Must0(filesystem.API().WriteFile(where.LogFile(), []byte("stale run\n"), 0o644))

			So(Setup(), ShouldBeNil)
			Debugf("fetched %s", "https://example.com")

			content := string(lo.Must(filesystem.API().ReadFile(where.LogFile())))
			So(content, ShouldNotContainSubstring, "stale run")
			So(content, ShouldContainSubstring, "fetched https://example.com")
		})

		Convey("An unknown level falls back to debug", func() {
			viper.Set(key.LogsLevel, "chatty")
			So(Setup(), ShouldBeNil)
			Debug("still written")

			content := string(lo.Must(filesystem.API().ReadFile(where.LogFile())))
			So(strings.Contains(content, "still written"), ShouldBeTrue)
		})
	})

	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)
		So(enabled, ShouldBeFalse)
		So(WithFields(nil), ShouldNotBeNil)
	})
}
