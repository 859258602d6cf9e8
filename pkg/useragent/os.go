package useragent

type osRule struct {
	os       string
	keywords []string
}

// osRules are evaluated in order. Windows Phone must precede Windows, and
// Apple mobile devices must precede macOS because iOS user agents carry
// "like Mac OS X". HarmonyOS user agents also mention Android.
var osRules = []osRule{
	{OSWindowsPhone, []string{"windows phone"}},
	{OSWindows, []string{"windows"}},
	{OSiOS, []string{"iphone", "ipad", "ipod"}},
	{OSMacOS, []string{"macintosh", "mac os x"}},
	{OSHarmonyOS, []string{"harmonyos"}},
	{OSFireOS, []string{"kindle", "silk", "kftt", "kfjwi"}},
	{OSAndroid, []string{"android"}},
	{OSChromeOS, []string{"cros", "chromeos", "chrome os"}},
	{OSLinux, []string{"linux", "ubuntu", "debian", "fedora", "x11"}},
}

// ParseOS identifies the operating system of a lower-cased user agent.
func ParseOS(lowerUA string) string {
	if lowerUA == "" {
		return OSUnknown
	}
	for _, rule := range osRules {
		if containsAny(rule.keywords...)(lowerUA) {
			return rule.os
		}
	}
	return OSUnknown
}
