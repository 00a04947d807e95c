package extract

import (
	"strings"

	"github.com/pencuri-cli/pencuri/adblock"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/spf13/viper"
)

// Rules are the noise filters applied during extraction.
type Rules struct {
	// NoiseTitles are badge labels mistaken for titles, compared case-insensitively.
	NoiseTitles []string

	// NoiseMarkers exclude frame sources containing any of them, case-insensitively.
	NoiseMarkers []string

	// BlockAds excludes frame sources pointing to known ad hosts.
	BlockAds bool
}

// DefaultRules returns the built-in filters.
func DefaultRules() Rules {
	return Rules{
		NoiseTitles:  []string{"WEB-DL", "HD", "CAM"},
		NoiseMarkers: []string{"facebook"},
		BlockAds:     true,
	}
}

// RulesFromConfig reads the filters from the configuration.
func RulesFromConfig() Rules {
	return Rules{
		NoiseTitles:  viper.GetStringSlice(key.ExtractNoiseTitles),
		NoiseMarkers: viper.GetStringSlice(key.ExtractNoiseMarkers),
		BlockAds:     viper.GetBool(key.ExtractBlockAdSources),
	}
}

func (r Rules) isNoiseTitle(title string) bool {
	for _, noise := range r.NoiseTitles {
		if strings.EqualFold(title, noise) {
			return true
		}
	}
	return false
}

func (r Rules) isNoiseSource(src string) bool {
	lower := strings.ToLower(src)
	for _, marker := range r.NoiseMarkers {
		if marker != "" && strings.Contains(lower, strings.ToLower(marker)) {
			return true
		}
	}
	return r.BlockAds && adblock.IsAd(src)
}
