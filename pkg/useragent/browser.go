package useragent

import (
	"regexp"
	"strings"
)

// Browser is a browser name and version.
type Browser struct {
	Name    string
	Version string
}

type browserRule struct {
	name     string
	keywords []string // any of
	excludes []string
	version  *regexp.Regexp
}

// browserRules are evaluated in declaration order. Chromium derivatives and
// in-app browsers advertise "chrome" and "safari" too, so they go first;
// Safari is last among the WebKit family.
var browserRules = []browserRule{
	{BrowserFacebook, []string{"fban", "fbav"}, nil, regexp.MustCompile(`fbav/([\d.]+)`)},
	{BrowserInstagram, []string{"instagram"}, nil, regexp.MustCompile(`instagram ([\d.]+)`)},
	{BrowserTikTok, []string{"bytedancewebview", "musical_ly", "tiktok"}, nil, regexp.MustCompile(`(?:musical_ly|tiktok)_?([\d.]+)`)},
	{BrowserEdge, []string{"edg/", "edge/", "edga/", "edgios/"}, nil, regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`)},
	{BrowserSamsung, []string{"samsungbrowser"}, nil, regexp.MustCompile(`samsungbrowser/([\d.]+)`)},
	{BrowserUC, []string{"ucbrowser"}, nil, regexp.MustCompile(`ucbrowser/([\d.]+)`)},
	{BrowserYandex, []string{"yabrowser", "yandexbrowser"}, nil, regexp.MustCompile(`(?:yabrowser|yandexbrowser)/([\d.]+)`)},
	{BrowserVivaldi, []string{"vivaldi"}, nil, regexp.MustCompile(`vivaldi/([\d.]+)`)},
	{BrowserBrave, []string{"brave"}, nil, regexp.MustCompile(`brave/([\d.]+)`)},
	{BrowserOpera, []string{"opr/", "opera"}, nil, regexp.MustCompile(`(?:opr|opera)[/ ]([\d.]+)`)},
	{BrowserChrome, []string{"chrome/", "crios/"}, nil, regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`)},
	{BrowserFirefox, []string{"firefox/", "fxios/"}, nil, regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`)},
	{BrowserSafari, []string{"safari"}, []string{"chrome", "android"}, regexp.MustCompile(`version/([\d.]+)`)},
	{BrowserIE, []string{"msie", "trident/"}, nil, regexp.MustCompile(`(?:msie |rv:)([\d.]+)`)},
}

// ParseBrowser identifies the browser of a lower-cased user agent.
func ParseBrowser(lowerUA string) Browser {
	for _, rule := range browserRules {
		if !containsAny(rule.keywords...)(lowerUA) {
			continue
		}
		if len(rule.excludes) > 0 && containsAny(rule.excludes...)(lowerUA) {
			continue
		}
		return Browser{Name: rule.name, Version: extractVersion(lowerUA, rule.version)}
	}
	return Browser{Name: BrowserUnknown}
}

func extractVersion(ua string, re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	m := re.FindStringSubmatch(ua)
	if len(m) < 2 {
		return ""
	}
	v := strings.TrimSuffix(m[1], ".")
	if len(v) > 20 {
		v = v[:20]
	}
	return v
}
