// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Site - these keys locate the site and seed its session.
const (
	SiteBaseURL    = "site.base_url"
	SiteCookies    = "site.cookies"
	SiteSearchPath = "site.search_path"
)

// Network Session - these keys tune the fetcher owned by the network package.
const (
	NetworkTimeout     = "network.timeout"
	NetworkInsecure    = "network.insecure"
	NetworkFingerprint = "network.fingerprint"
	NetworkBlockAds    = "network.block_ads"
	NetworkRate        = "network.rate"
	NetworkUserAgent   = "network.user_agent"
)

// Extraction Heuristics - these keys feed the noise filters of the extraction engine.
const (
	ExtractNoiseTitles    = "extract.noise_titles"
	ExtractNoiseMarkers   = "extract.noise_markers"
	ExtractBlockAdSources = "extract.block_ad_sources"
)

// Source Resolution.
const (
	SourcesResolveRedirects = "sources.resolve_redirects"
)

// Media Playback - these keys select and configure the launch tiers.
const (
	PlayerEnhanced  = "player.enhanced"
	PlayerBrowser   = "player.browser"
	PlayerExtension = "player.extension"
	PlayerApp       = "player.app"
)

// Minimalist (Mini) Mode.
const (
	MiniURLPreview = "mini.url_preview"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the rolling debug log.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
