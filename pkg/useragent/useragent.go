package useragent

import "strings"

// UserAgent holds the parsed parts of a user agent string.
type UserAgent struct {
	raw         string
	deviceType  string
	os          string
	browserName string
	browserVer  string
}

// Info is the device classification persisted on a traffic record.
type Info struct {
	DeviceType string `json:"device_type"`
	Browser    string `json:"browser"`
	OS         string `json:"os"`
}

func (ua UserAgent) String() string { return ua.raw }

func (ua UserAgent) DeviceType() string { return ua.deviceType }

func (ua UserAgent) OS() string { return ua.os }

func (ua UserAgent) BrowserName() string { return ua.browserName }

func (ua UserAgent) BrowserVer() string { return ua.browserVer }

func (ua UserAgent) IsBot() bool { return ua.deviceType == DeviceTypeBot }

func (ua UserAgent) IsMobile() bool { return ua.deviceType == DeviceTypeMobile }

func (ua UserAgent) IsDesktop() bool { return ua.deviceType == DeviceTypeDesktop }

func (ua UserAgent) IsTablet() bool { return ua.deviceType == DeviceTypeTablet }

// Info returns the device, browser and OS labels.
func (ua UserAgent) Info() Info {
	return Info{DeviceType: ua.deviceType, Browser: ua.browserName, OS: ua.os}
}

// Parse parses a user agent string. A non-nil error never means the result
// is unusable: it reports why some fields are "unknown".
func Parse(ua string) (UserAgent, error) {
	if strings.TrimSpace(ua) == "" {
		return UserAgent{deviceType: DeviceTypeUnknown, os: OSUnknown, browserName: BrowserUnknown}, ErrEmptyUserAgent
	}

	lower := strings.ToLower(ua)
	result := UserAgent{
		raw:        ua,
		deviceType: ParseDeviceType(lower),
		os:         ParseOS(lower),
	}
	if _, ok := MatchBot(ua); ok {
		result.deviceType = DeviceTypeBot
	}

	browser := ParseBrowser(lower)
	result.browserName, result.browserVer = browser.Name, browser.Version

	if result.deviceType == DeviceTypeUnknown {
		if result.os == OSUnknown && result.browserName == BrowserUnknown {
			return result, ErrMalformedUserAgent
		}
		return result, ErrUnknownDevice
	}
	return result, nil
}

// Parser adapts Parse to the collaborator interface used by ingestion.
type Parser struct{}

// Parse returns the device classification, ignoring informational errors.
func (Parser) Parse(ua string) Info {
	parsed, _ := Parse(ua)
	return parsed.Info()
}
