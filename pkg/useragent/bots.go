package useragent

import "strings"

// Bot is a known automated client from the signature table.
type Bot struct {
	Name     string
	Category string
}

type botSignature struct {
	token string // lower-case substring
	bot   Bot
}

// botSignatures is the signature database. Specific tokens precede generic
// ones that share a prefix (adsbot-google before googlebot variants).
var botSignatures = []botSignature{
	{"adsbot-google", Bot{"AdsBot Google", BotCategoryAds}},
	{"mediapartners-google", Bot{"Google AdSense", BotCategoryAds}},
	{"google-inspectiontool", Bot{"Google Inspection Tool", BotCategorySearch}},
	{"googleother", Bot{"GoogleOther", BotCategoryCrawler}},
	{"feedfetcher-google", Bot{"Google Feedfetcher", BotCategoryFeed}},
	{"google-read-aloud", Bot{"Google Read Aloud", BotCategoryCrawler}},
	{"chrome-lighthouse", Bot{"Lighthouse", BotCategoryAudit}},
	{"googlebot", Bot{"Googlebot", BotCategorySearch}},
	{"adidxbot", Bot{"Bing Ads", BotCategoryAds}},
	{"bingpreview", Bot{"Bing Preview", BotCategorySearch}},
	{"bingbot", Bot{"Bingbot", BotCategorySearch}},
	{"yahoo! slurp", Bot{"Yahoo! Slurp", BotCategorySearch}},
	{"duckduckbot", Bot{"DuckDuckBot", BotCategorySearch}},
	{"baiduspider", Bot{"Baidu Spider", BotCategorySearch}},
	{"yandexbot", Bot{"Yandex Bot", BotCategorySearch}},
	{"sogou", Bot{"Sogou Spider", BotCategorySearch}},
	{"applebot", Bot{"Applebot", BotCategorySearch}},
	{"petalbot", Bot{"PetalBot", BotCategorySearch}},
	{"seznambot", Bot{"Seznam Bot", BotCategorySearch}},
	{"exabot", Bot{"Exabot", BotCategorySearch}},
	{"facebookexternalhit", Bot{"Facebook External Hit", BotCategorySocial}},
	{"facebookcatalog", Bot{"Facebook Catalog", BotCategorySocial}},
	{"meta-externalagent", Bot{"Meta External Agent", BotCategorySocial}},
	{"twitterbot", Bot{"Twitterbot", BotCategorySocial}},
	{"linkedinbot", Bot{"LinkedIn Bot", BotCategorySocial}},
	{"pinterestbot", Bot{"Pinterest Bot", BotCategorySocial}},
	{"slackbot", Bot{"Slackbot", BotCategorySocial}},
	{"telegrambot", Bot{"TelegramBot", BotCategorySocial}},
	{"discordbot", Bot{"Discord Bot", BotCategorySocial}},
	{"redditbot", Bot{"Reddit Bot", BotCategorySocial}},
	{"whatsapp/", Bot{"WhatsApp", BotCategorySocial}},
	{"skypeuripreview", Bot{"Skype URI Preview", BotCategorySocial}},
	{"gptbot", Bot{"GPTBot", BotCategoryAI}},
	{"chatgpt-user", Bot{"ChatGPT-User", BotCategoryAI}},
	{"claudebot", Bot{"ClaudeBot", BotCategoryAI}},
	{"perplexitybot", Bot{"PerplexityBot", BotCategoryAI}},
	{"bytespider", Bot{"Bytespider", BotCategoryAI}},
	{"ccbot", Bot{"CCBot", BotCategoryAI}},
	{"amazonbot", Bot{"Amazonbot", BotCategoryCrawler}},
	{"ahrefsbot", Bot{"AhrefsBot", BotCategoryCrawler}},
	{"semrushbot", Bot{"SemrushBot", BotCategoryCrawler}},
	{"mj12bot", Bot{"MJ12bot", BotCategoryCrawler}},
	{"dotbot", Bot{"DotBot", BotCategoryCrawler}},
	{"rogerbot", Bot{"Rogerbot", BotCategoryCrawler}},
	{"dataforseobot", Bot{"DataForSeoBot", BotCategoryCrawler}},
	{"screaming frog", Bot{"Screaming Frog SEO Spider", BotCategoryCrawler}},
	{"archive.org_bot", Bot{"Internet Archive", BotCategoryCrawler}},
	{"uptimerobot", Bot{"UptimeRobot", BotCategoryMonitor}},
	{"pingdom", Bot{"Pingdom", BotCategoryMonitor}},
	{"statuscake", Bot{"StatusCake", BotCategoryMonitor}},
	{"site24x7", Bot{"Site24x7", BotCategoryMonitor}},
	{"newrelicpinger", Bot{"New Relic Pinger", BotCategoryMonitor}},
	{"datadogsynthetics", Bot{"Datadog Synthetics", BotCategoryMonitor}},
	{"feedly", Bot{"Feedly", BotCategoryFeed}},
	{"w3c_validator", Bot{"W3C Validator", BotCategoryAudit}},
	{"curl/", Bot{"curl", BotCategoryLibrary}},
	{"wget/", Bot{"Wget", BotCategoryLibrary}},
	{"python-requests", Bot{"Python Requests", BotCategoryLibrary}},
	{"python-urllib", Bot{"Python urllib", BotCategoryLibrary}},
	{"go-http-client", Bot{"Go HTTP Client", BotCategoryLibrary}},
	{"okhttp", Bot{"OkHttp", BotCategoryLibrary}},
}

// MatchBot looks the user agent up in the signature table.
func MatchBot(ua string) (Bot, bool) {
	lower := strings.ToLower(ua)
	if lower == "" {
		return Bot{}, false
	}
	for _, sig := range botSignatures {
		if strings.Contains(lower, sig.token) {
			return sig.bot, true
		}
	}
	return Bot{}, false
}
