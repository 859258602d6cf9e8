package useragent

import "strings"

type deviceRule struct {
	deviceType string
	match      func(lowerUA string) bool
}

func containsAny(keywords ...string) func(string) bool {
	return func(s string) bool {
		for _, k := range keywords {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}

var botKeywords = []string{
	"bot", "spider", "crawler", "archiver", "slurp", "lighthouse", "facebookexternalhit",
	"monitor", "validator", "fetcher", "scraper", "headless", "preview",
}

// deviceRules are evaluated in order; the first match decides the device type.
// Apple devices are unambiguous, so they go first. Android tablets are the
// Android user agents without the "mobile" token.
var deviceRules = []deviceRule{
	{DeviceTypeTablet, containsAny("ipad")},
	{DeviceTypeMobile, containsAny("iphone", "ipod")},
	{DeviceTypeBot, containsAny(botKeywords...)},
	{DeviceTypeTV, containsAny("smart-tv", "smarttv", "android tv", "googletv", "appletv", "hbbtv", "webos", "tizen", "crkey", "roku")},
	{DeviceTypeConsole, containsAny("playstation", "xbox", "nintendo")},
	{DeviceTypeTablet, func(s string) bool {
		return strings.Contains(s, "android") && !strings.Contains(s, "mobile")
	}},
	{DeviceTypeMobile, containsAny("android")},
	{DeviceTypeTablet, containsAny("tablet", "kindle", "silk")},
	{DeviceTypeMobile, containsAny("mobile", "windows phone", "iemobile", "blackberry", "nokia", "opera mini")},
	{DeviceTypeTablet, func(s string) bool {
		return strings.Contains(s, "windows") && strings.Contains(s, "touch")
	}},
	{DeviceTypeDesktop, containsAny("windows", "macintosh", "mac os x", "linux", "x11", "cros")},
}

// ParseDeviceType classifies a lower-cased user agent into a device type.
func ParseDeviceType(lowerUA string) string {
	if lowerUA == "" {
		return DeviceTypeUnknown
	}
	for _, rule := range deviceRules {
		if rule.match(lowerUA) {
			return rule.deviceType
		}
	}
	return DeviceTypeUnknown
}
