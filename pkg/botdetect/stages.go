package botdetect

import (
	"net/http"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/landingkit/trafficid/pkg/useragent"
)

// MissingUserAgent flags visits without a user agent.
func MissingUserAgent(userAgent string, _ http.Header) (Result, bool) {
	if userAgent != "" {
		return Result{}, false
	}
	return Result{
		IsBot:    true,
		Name:     NameMissingUserAgent,
		Category: CategoryCrawler,
		Reason:   "missing user agent",
	}, true
}

// SignatureDatabase matches the user agent against the known bot signatures.
func SignatureDatabase(userAgent string, _ http.Header) (Result, bool) {
	bot, ok := useragent.MatchBot(userAgent)
	if !ok {
		return Result{}, false
	}
	return Result{
		IsBot:    true,
		Name:     bot.Name,
		Category: bot.Category,
		Reason:   "known bot signature",
	}, true
}

// crawlerPatterns covers automation frameworks, less common HTTP clients and generic
// crawler naming conventions absent from the signature table.
var crawlerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)headlesschrome`),
	regexp.MustCompile(`(?i)phantomjs`),
	regexp.MustCompile(`(?i)selenium|webdriver`),
	regexp.MustCompile(`(?i)puppeteer|playwright`),
	regexp.MustCompile(`(?i)python-requests|python-urllib|aiohttp|httpx`),
	regexp.MustCompile(`(?i)scrapy`),
	regexp.MustCompile(`(?i)\bcurl/`),
	regexp.MustCompile(`(?i)\bwget/`),
	regexp.MustCompile(`(?i)go-http-client`),
	regexp.MustCompile(`(?i)okhttp|apache-httpclient|java/\d`),
	regexp.MustCompile(`(?i)libwww-perl|node-fetch|axios/`),
	regexp.MustCompile(`(?i)[a-z0-9\-_]*(?:bot|crawler|spider|scraper)\b`),
	regexp.MustCompile(`(?i)\b(?:crawl|archiver|indexer)\b`),
}

// CrawlerPatterns is the secondary matcher. The bot name is the matched
// fragment in title case. A cases.Caser is stateful, so one is built per match.
func CrawlerPatterns(userAgent string, _ http.Header) (Result, bool) {
	if userAgent == "" {
		return Result{}, false
	}
	for _, re := range crawlerPatterns {
		if m := re.FindString(userAgent); m != "" {
			name := strings.TrimSuffix(strings.ToLower(m), "/")
			return Result{
				IsBot:    true,
				Name:     cases.Title(language.English).String(name),
				Category: CategoryCrawler,
				Reason:   "crawler pattern match",
			}, true
		}
	}
	return Result{}, false
}

// RequiredHeaders flags visits missing any of the named headers.
func RequiredHeaders(names ...string) Stage {
	return func(_ string, headers http.Header) (Result, bool) {
		for _, name := range names {
			if strings.TrimSpace(headers.Get(name)) == "" {
				return Result{
					IsBot:    true,
					Name:     NameMissingHeader,
					Category: CategoryMissingHeader,
					Reason:   "missing " + http.CanonicalHeaderKey(name) + " header",
				}, true
			}
		}
		return Result{}, false
	}
}
