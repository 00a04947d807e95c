// Package constant defines immutable application-level identifiers and network defaults.
package constant

const (
	// Pencuri is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	Pencuri = "pencuri"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// Repository is the GitHub owner/name pair queried for new releases.
	Repository = "pencuri-cli/pencuri"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

const (
	// BaseURL is the catalog site every relative path is resolved against.
	BaseURL = "https://ww93.pencurimovie.bond"

	// UserAgent is sent with every request so the site serves the desktop templates.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/142.0.0.0 Safari/537.36"

	// ChallengeMarker appears in the title of the anti-bot interstitial.
	ChallengeMarker = "Just a moment"

	// LogFile is the name of the rolling debug log, truncated on every start.
	LogFile = "scraper_debug.log"
)
