// Package clickid extracts ad-network click identifiers from landing page
// query parameters.
//
// Table is the ordered list of known click parameters. When several click ids
// arrive together, the earliest row in Table wins: Google's gclid beats Meta's
// fbclid, and so on down the list.
package clickid

import "strings"

// Channel labels describe the kind of placement a click parameter belongs to.
const (
	ChannelSearch    = "search"
	ChannelSocial    = "social"
	ChannelDisplay   = "display"
	ChannelNative    = "native"
	ChannelAffiliate = "affiliate"
	ChannelEmail     = "email"
)

// Param maps a query parameter name to the ad platform that issues it.
type Param struct {
	Name     string
	Platform string
	Channel  string
}

// Click is an extracted click identifier.
type Click struct {
	ID       string `json:"click_id"`
	Platform string `json:"platform"`
	Channel  string `json:"channel"`
	Param    string `json:"param"`
}

// Table lists click parameters in priority order. Names are lower case;
// Extract expects normalized (lower-cased) query keys.
var Table = []Param{
	{"gclid", "Google Ads", ChannelSearch},
	{"gbraid", "Google Ads", ChannelSearch},
	{"wbraid", "Google Ads", ChannelSearch},
	{"dclid", "Google Display & Video 360", ChannelDisplay},
	{"msclkid", "Microsoft Ads", ChannelSearch},
	{"fbclid", "Meta Ads", ChannelSocial},
	{"ttclid", "TikTok Ads", ChannelSocial},
	{"li_fat_id", "LinkedIn Ads", ChannelSocial},
	{"twclid", "X Ads", ChannelSocial},
	{"sccid", "Snapchat Ads", ChannelSocial},
	{"epik", "Pinterest Ads", ChannelSocial},
	{"rdt_cid", "Reddit Ads", ChannelSocial},
	{"igshid", "Instagram", ChannelSocial},
	{"yclid", "Yandex Direct", ChannelSearch},
	{"qclid", "Quora Ads", ChannelSocial},
	{"obclid", "Outbrain", ChannelNative},
	{"ob_click_id", "Outbrain", ChannelNative},
	{"tblci", "Taboola", ChannelNative},
	{"vmcid", "Yahoo DSP", ChannelDisplay},
	{"irclickid", "Impact", ChannelAffiliate},
	{"cjevent", "CJ Affiliate", ChannelAffiliate},
	{"mc_eid", "Mailchimp", ChannelEmail},
	{"_kx", "Klaviyo", ChannelEmail},
}

// Extract returns the first click id present with a non-empty value.
func Extract(params map[string]string) (Click, bool) {
	return ExtractFrom(Table, params)
}

// ExtractFrom is Extract over a custom table.
func ExtractFrom(table []Param, params map[string]string) (Click, bool) {
	if len(params) == 0 {
		return Click{}, false
	}
	for _, p := range table {
		v := strings.TrimSpace(params[p.Name])
		if v == "" {
			continue
		}
		return Click{ID: v, Platform: p.Platform, Channel: p.Channel, Param: p.Name}, true
	}
	return Click{}, false
}
