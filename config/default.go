// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/constant"
	"github.com/pencuri-cli/pencuri/key"
	"github.com/pencuri-cli/pencuri/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Pencuri + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SiteBaseURL, constant.BaseURL, "Base URL of the catalog site.\nRelative links found on pages are resolved against the page URL")
	register(key.SiteCookies, []string{"wpdiscuz_hide_bubble_hint=1"}, "Cookies sent to the catalog site, as name=value pairs.\nPaste the cf_clearance cookie here when the site shows a challenge page")
	register(key.SiteSearchPath, "/?s=", "Path and query prefix used for searches")
	register(key.NetworkTimeout, 15, "Timeout of a single page fetch, in seconds")
	register(key.NetworkInsecure, true, "Skip TLS certificate verification")
	register(key.NetworkFingerprint, false, "Use a Chrome TLS fingerprint for site requests")
	register(key.NetworkBlockAds, true, "Refuse requests to known ad and tracker hosts")
	register(key.NetworkRate, 2, "Maximum page fetches per second")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent with every request")
	register(key.ExtractNoiseTitles, []string{"WEB-DL", "HD", "CAM"}, "Listing titles that are badges, not entries (case-insensitive)")
	register(key.ExtractNoiseMarkers, []string{"facebook"}, "Substrings that mark an embedded frame as social-media noise")
	register(key.ExtractBlockAdSources, true, "Drop player sources that point to ad or tracker hosts")
	register(key.SourcesResolveRedirects, []string{"dsvplay"}, "Embed hosts whose links are followed to their final URL")
	register(key.PlayerEnhanced, true, "Prefer a browser with the ad-filter extension when available")
	register(key.PlayerBrowser, "", "Path to a Chromium-family browser.\nLooked up automatically if empty")
	register(key.PlayerExtension, "", "Directory of the unpacked ad-filter extension.\nDefaults to <config>/extensions/ublock")
	register(key.PlayerApp, "", "Application the default tier opens sources with.\nThe system URL handler is used if empty")
	register(key.MiniURLPreview, 40, "Columns of a source URL shown next to its label")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, true, "Write the debug log")
	register(key.LogsLevel, "debug", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, false, "Check for a new release when printing help")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
