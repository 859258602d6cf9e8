package useragent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingkit/trafficid/pkg/useragent"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	safariMacUA     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15"
	safariIPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1"
	chromeAndroidUA = "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Mobile Safari/537.36"
	androidTabletUA = "Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36"
	firefoxLinuxUA  = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:89.0) Gecko/20100101 Firefox/89.0"
	edgeUA          = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36 Edg/91.0.864.59"
	ie11UA          = "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko"
	facebookAppUA   = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 [FBAN/FBIOS;FBAV/420.0.0.32.107;FBBV/0]"
	googlebotUA     = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
	adsbotUA        = "AdsBot-Google (+http://www.google.com/adsbot.html)"
	facebookHitUA   = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
)

func TestParseOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, ua, expected string
	}{
		{"Windows", chromeWindowsUA, useragent.OSWindows},
		{"macOS", safariMacUA, useragent.OSMacOS},
		{"iOS", safariIPhoneUA, useragent.OSiOS},
		{"Android", chromeAndroidUA, useragent.OSAndroid},
		{"Linux", firefoxLinuxUA, useragent.OSLinux},
		{"Windows Phone", "Mozilla/5.0 (Windows Phone 10.0; Android 6.0.1) Edge/15.15063", useragent.OSWindowsPhone},
		{"Empty", "", useragent.OSUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, useragent.ParseOS(strings.ToLower(tc.ua)))
		})
	}
}

func TestParseBrowser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Browser
	}{
		{"Chrome", chromeWindowsUA, useragent.Browser{Name: useragent.BrowserChrome, Version: "91.0.4472.124"}},
		{"Firefox", firefoxLinuxUA, useragent.Browser{Name: useragent.BrowserFirefox, Version: "89.0"}},
		{"Safari", safariMacUA, useragent.Browser{Name: useragent.BrowserSafari, Version: "14.0.3"}},
		{"Edge", edgeUA, useragent.Browser{Name: useragent.BrowserEdge, Version: "91.0.864.59"}},
		{"IE11", ie11UA, useragent.Browser{Name: useragent.BrowserIE, Version: "11.0"}},
		{"Facebook in-app", facebookAppUA, useragent.Browser{Name: useragent.BrowserFacebook, Version: "420.0.0.32.107"}},
		{"Empty", "", useragent.Browser{Name: useragent.BrowserUnknown}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, useragent.ParseBrowser(strings.ToLower(tc.ua)))
		})
	}
}

func TestParseDeviceType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, ua, expected string
	}{
		{"desktop", chromeWindowsUA, useragent.DeviceTypeDesktop},
		{"iphone", safariIPhoneUA, useragent.DeviceTypeMobile},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 14_4 like Mac OS X) AppleWebKit/605.1.15", useragent.DeviceTypeTablet},
		{"android phone", chromeAndroidUA, useragent.DeviceTypeMobile},
		{"android tablet", androidTabletUA, useragent.DeviceTypeTablet},
		{"smart tv", "Mozilla/5.0 (SMART-TV; Linux; Tizen 6.0) AppleWebKit/537.36", useragent.DeviceTypeTV},
		{"console", "Mozilla/5.0 (PlayStation 5 3.03) AppleWebKit/605.1.15", useragent.DeviceTypeConsole},
		{"crawler", googlebotUA, useragent.DeviceTypeBot},
		{"unknown", "SomethingStrange/1.0", useragent.DeviceTypeUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, useragent.ParseDeviceType(strings.ToLower(tc.ua)))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("desktop chrome", func(t *testing.T) {
		ua, err := useragent.Parse(chromeWindowsUA)
		require.NoError(t, err)
		assert.Equal(t, useragent.Info{
			DeviceType: useragent.DeviceTypeDesktop,
			Browser:    useragent.BrowserChrome,
			OS:         useragent.OSWindows,
		}, ua.Info())
		assert.Equal(t, "91.0.4472.124", ua.BrowserVer())
		assert.True(t, ua.IsDesktop())
		assert.Equal(t, chromeWindowsUA, ua.String())
	})

	t.Run("signature bot overrides device rules", func(t *testing.T) {
		ua, err := useragent.Parse(adsbotUA)
		require.NoError(t, err)
		assert.True(t, ua.IsBot())
	})

	t.Run("empty", func(t *testing.T) {
		ua, err := useragent.Parse("   ")
		assert.ErrorIs(t, err, useragent.ErrEmptyUserAgent)
		assert.Equal(t, useragent.DeviceTypeUnknown, ua.DeviceType())
		assert.Equal(t, useragent.BrowserUnknown, ua.BrowserName())
	})

	t.Run("malformed", func(t *testing.T) {
		ua, err := useragent.Parse("SomethingStrange/1.0")
		assert.ErrorIs(t, err, useragent.ErrMalformedUserAgent)
		assert.Equal(t, useragent.OSUnknown, ua.OS())
	})

	t.Run("unknown device with known browser", func(t *testing.T) {
		_, err := useragent.Parse("Mozilla/5.0 Firefox/120.0")
		assert.ErrorIs(t, err, useragent.ErrUnknownDevice)
	})

	t.Run("parser adapter swallows informational errors", func(t *testing.T) {
		info := useragent.Parser{}.Parse("")
		assert.Equal(t, useragent.DeviceTypeUnknown, info.DeviceType)
		assert.Equal(t, useragent.OSUnknown, info.OS)
	})
}

func TestMatchBot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ua       string
		expected useragent.Bot
		found    bool
	}{
		{"googlebot", googlebotUA, useragent.Bot{Name: "Googlebot", Category: useragent.BotCategorySearch}, true},
		{"adsbot before googlebot", adsbotUA, useragent.Bot{Name: "AdsBot Google", Category: useragent.BotCategoryAds}, true},
		{"facebook link preview", facebookHitUA, useragent.Bot{Name: "Facebook External Hit", Category: useragent.BotCategorySocial}, true},
		{"case insensitive", "Mozilla/5.0 (compatible; BINGBOT/2.0)", useragent.Bot{Name: "Bingbot", Category: useragent.BotCategorySearch}, true},
		{"monitor", "Mozilla/5.0+(compatible; UptimeRobot/2.0; http://www.uptimerobot.com/)", useragent.Bot{Name: "UptimeRobot", Category: useragent.BotCategoryMonitor}, true},
		{"http library", "curl/8.4.0", useragent.Bot{Name: "curl", Category: useragent.BotCategoryLibrary}, true},
		{"python requests", "python-requests/2.31.0", useragent.Bot{Name: "Python Requests", Category: useragent.BotCategoryLibrary}, true},
		{"browser", chromeWindowsUA, useragent.Bot{}, false},
		{"generic crawler not in table", "SuperCrawler/1.0", useragent.Bot{}, false},
		{"empty", "", useragent.Bot{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bot, ok := useragent.MatchBot(tc.ua)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, bot)
		})
	}
}

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = useragent.Parse(chromeAndroidUA)
	}
}
