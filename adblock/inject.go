package adblock

import (
	"strconv"
	"strings"
)

const stylesheet = `
.ad-container, .ads, .advertisement, .banner-ads,
div[id^='ad-'], div[class*='ad-'], div[id*='banner'],
iframe[src*='ads'], iframe[src*='doubleclick'],
div[style*='z-index: 2147483647'],
div[style*='z-index: 9999999'],
div[style*='position: fixed'][style*='width: 100%'][style*='height: 100%'],
.jw-logo, .jw-title-primary, .jw-title-secondary,
.vjs-big-play-button[style*='z-index'],
#adb-enabled, .adb-modal, .detect-adblock,
.watermark, .branding, .social-share
{ display: none !important; opacity: 0 !important; pointer-events: none !important; height: 0 !important; width: 0 !important; }
`

const bypass = `(function() {
	window.open = function() { return null; };

	setInterval(function() {
		var links = document.getElementsByTagName('a');
		for (var i = 0; i < links.length; i++) {
			links[i].target = '_self';
		}
	}, 2000);

	document.addEventListener('DOMContentLoaded', function() {
		var frames = document.getElementsByTagName('iframe');
		for (var j = 0; j < frames.length; j++) {
			frames[j].removeAttribute('sandbox');
		}

		var style = document.createElement('style');
		style.textContent = %s;
		document.head.appendChild(style);
	});
})();`

// Stylesheet returns the CSS hiding common ad containers, overlays and anti-adblock notices.
func Stylesheet() string {
	return strings.Join(strings.Fields(stylesheet), " ")
}

// Script returns the JavaScript evaluated in every new document of the player:
// it neutralizes popups and new-tab hijacking, lifts iframe sandboxing and installs the stylesheet.
func Script() string {
	return strings.Replace(bypass, "%s", strconv.Quote(Stylesheet()), 1)
}
