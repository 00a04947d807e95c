// Package adblock recognizes ad and tracker hosts and carries the page
// hardening injected into the enhanced player.
package adblock

import (
	"net/url"
	"strings"
)

var hosts = []string{
	"googleads", "doubleclick", "analytics", "facebook.com", "connect.facebook.net",
	"googletagservices", "adservice.google", "clients1.google",

	"adsco.re", "popads", "popcash", "propellerads", "adsterra", "revenuehits",
	"mc.yandex", "creativecdn", "scorecardresearch", "quantserve", "adroll",
	"taboola", "outbrain", "zedo", "adclick", "trackclick", "adsystem",
	"histats", "statcounter", "bidgear", "exo-click", "juicyads",
	"onclasrv", "simgadgt", "windacmedia", "mgridplus", "media.net",
	"adsupply", "yldbt", "hooliganmedia", "vidcrunch", "adpushup",
	"infolinks", "kontera", "adblade", "dianomi", "myplaycity",
	"adk2", "adcash", "bidvertiser", "clicksor", "chitika",

	// video hosts such as dsvplay must never appear here
	"jads", "exoclick", "trafficjunky", "ero-advertising",
	"tsyndicate", "plugrush", "trafficfactory", "adxpansion",
	"bet365", "1xbet", "casino", "gambling",
}

// Hosts returns the markers matched against hostnames.
func Hosts() []string {
	return append([]string(nil), hosts...)
}

// IsAdHost reports whether the hostname belongs to a known ad or tracker network.
func IsAdHost(host string) bool {
	host = strings.ToLower(host)
	if host == "" {
		return false
	}

	for _, marker := range hosts {
		if strings.Contains(host, marker) {
			return true
		}
	}
	return false
}

// IsAd reports whether the URL points to a known ad or tracker host.
// Protocol-relative URLs are understood. An unparsable URL is matched as a whole.
func IsAd(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return IsAdHost(raw)
	}

	if u.Host == "" && !strings.HasPrefix(raw, "/") {
		// scheme-less "host/path"
		if parsed, err := url.Parse("//" + raw); err == nil {
			u = parsed
		}
	}

	return IsAdHost(u.Hostname())
}
