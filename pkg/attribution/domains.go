package attribution

import "strings"

// DomainLabel maps a host fragment to a source label. Fragments are matched as
// substrings of the referrer host unless Exact is set, in which case the host
// must equal the fragment or be one of its subdomains. Very short hosts such
// as t.co need Exact.
type DomainLabel struct {
	Fragment string
	Label    string
	Exact    bool
}

// SearchEngines is the ordered list of search engine hosts.
var SearchEngines = []DomainLabel{
	{Fragment: "google.", Label: "google"},
	{Fragment: "bing.com", Label: "bing"},
	{Fragment: "yahoo.", Label: "yahoo"},
	{Fragment: "duckduckgo.com", Label: "duckduckgo"},
	{Fragment: "baidu.com", Label: "baidu"},
	{Fragment: "yandex.", Label: "yandex"},
	{Fragment: "ecosia.org", Label: "ecosia"},
	{Fragment: "search.brave.com", Label: "brave"},
	{Fragment: "startpage.com", Label: "startpage"},
	{Fragment: "qwant.com", Label: "qwant"},
	{Fragment: "naver.com", Label: "naver"},
	{Fragment: "seznam.cz", Label: "seznam"},
	{Fragment: "sogou.com", Label: "sogou"},
	{Fragment: "ask.com", Label: "ask"},
	{Fragment: "aol.com", Label: "aol"},
}

// SocialNetworks is the ordered list of social network hosts.
var SocialNetworks = []DomainLabel{
	{Fragment: "facebook.com", Label: "facebook"},
	{Fragment: "fb.com", Label: "facebook", Exact: true},
	{Fragment: "fb.me", Label: "facebook", Exact: true},
	{Fragment: "instagram.com", Label: "instagram"},
	{Fragment: "threads.net", Label: "threads"},
	{Fragment: "linkedin.com", Label: "linkedin"},
	{Fragment: "lnkd.in", Label: "linkedin", Exact: true},
	{Fragment: "twitter.com", Label: "twitter"},
	{Fragment: "t.co", Label: "twitter", Exact: true},
	{Fragment: "x.com", Label: "twitter", Exact: true},
	{Fragment: "reddit.com", Label: "reddit"},
	{Fragment: "pinterest.", Label: "pinterest"},
	{Fragment: "tiktok.com", Label: "tiktok"},
	{Fragment: "youtube.com", Label: "youtube"},
	{Fragment: "youtu.be", Label: "youtube", Exact: true},
	{Fragment: "snapchat.com", Label: "snapchat"},
	{Fragment: "tumblr.com", Label: "tumblr"},
	{Fragment: "quora.com", Label: "quora"},
	{Fragment: "vk.com", Label: "vk", Exact: true},
	{Fragment: "whatsapp.", Label: "whatsapp"},
	{Fragment: "t.me", Label: "telegram", Exact: true},
	{Fragment: "discord.com", Label: "discord"},
}

// Match returns the label of the first entry matching host.
func Match(table []DomainLabel, host string) (string, bool) {
	for _, d := range table {
		if d.Exact && (host == d.Fragment || strings.HasSuffix(host, "."+d.Fragment)) {
			return d.Label, true
		}
		if !d.Exact && strings.Contains(host, d.Fragment) {
			return d.Label, true
		}
	}
	return "", false
}
