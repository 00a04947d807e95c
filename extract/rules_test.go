package extract

import (
	"testing"

	"github.com/pencuri-cli/pencuri/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRules(t *testing.T) {
	Convey("Rules are read from the configuration", t, func() {
		viper.Set(key.ExtractNoiseTitles, []string{"TS"})
		viper.Set(key.ExtractNoiseMarkers, []string{"twitter"})
		viper.Set(key.ExtractBlockAdSources, false)
		Reset(func() {
			viper.Set(key.ExtractNoiseTitles, nil)
			viper.Set(key.ExtractNoiseMarkers, nil)
			viper.Set(key.ExtractBlockAdSources, nil)
		})

		rules := RulesFromConfig()
		So(rules.isNoiseTitle("ts"), ShouldBeTrue)
		So(rules.isNoiseTitle("HD"), ShouldBeFalse)
		So(rules.isNoiseSource("https://platform.TWITTER.com/embed"), ShouldBeTrue)
		So(rules.BlockAds, ShouldBeFalse)
	})
}
