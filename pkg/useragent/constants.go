package useragent

// Device types
const (
	DeviceTypeBot     = "bot"
	DeviceTypeMobile  = "mobile"
	DeviceTypeTablet  = "tablet"
	DeviceTypeDesktop = "desktop"
	DeviceTypeTV      = "tv"
	DeviceTypeConsole = "console"
	DeviceTypeUnknown = "unknown"
)

// Browser names
const (
	BrowserChrome    = "chrome"
	BrowserFirefox   = "firefox"
	BrowserSafari    = "safari"
	BrowserEdge      = "edge"
	BrowserOpera     = "opera"
	BrowserIE        = "ie"
	BrowserSamsung   = "samsung"
	BrowserUC        = "uc"
	BrowserYandex    = "yandex"
	BrowserBrave     = "brave"
	BrowserVivaldi   = "vivaldi"
	BrowserFacebook  = "facebook"
	BrowserInstagram = "instagram"
	BrowserTikTok    = "tiktok"
	BrowserUnknown   = "unknown"
)

// Operating systems
const (
	OSWindows      = "windows"
	OSWindowsPhone = "windows phone"
	OSMacOS        = "macos"
	OSiOS          = "ios"
	OSAndroid      = "android"
	OSLinux        = "linux"
	OSChromeOS     = "chromeos"
	OSHarmonyOS    = "harmonyos"
	OSFireOS       = "fireos"
	OSUnknown      = "unknown"
)

// Bot categories used by the signature table.
const (
	BotCategorySearch  = "Search bot"
	BotCategoryAds     = "Ads bot"
	BotCategorySocial  = "Social Media Agent"
	BotCategoryCrawler = "Crawler"
	BotCategoryAI      = "AI Crawler"
	BotCategoryMonitor = "Site Monitor"
	BotCategoryFeed    = "Feed Fetcher"
	BotCategoryAudit   = "Validator"
	BotCategoryLibrary = "Library"
)
