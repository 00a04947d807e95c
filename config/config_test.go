package config

import (
	"testing"

	"github.com/pencuri-cli/pencuri/filesystem"
	"github.com/pencuri-cli/pencuri/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
		})

		Convey("Should expose the extraction noise defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetStringSlice(key.ExtractNoiseTitles), ShouldResemble, []string{"WEB-DL", "HD", "CAM"})
			So(viper.GetInt(key.NetworkTimeout), ShouldEqual, 15)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("network.block_ads"), ShouldEqual, "network_block_ads")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		f := Default[key.SiteBaseURL]

		Convey("Env should carry the application prefix once", func() {
			So(f.Env(), ShouldEqual, "PENCURI_SITE_BASE_URL")
		})

		Convey("typeName should follow the default value", func() {
			So(f.typeName(), ShouldEqual, "string")
			cookies := Default[key.SiteCookies]
			So(cookies.typeName(), ShouldEqual, "[]string")
		})
	})
}
