package botdetect

import (
	"net/http"
	"strings"
)

const (
	// NameMissingUserAgent is reported for visits without a user agent.
	NameMissingUserAgent = "MISSING_USER_AGENT"
	// NameMissingHeader and CategoryMissingHeader are reported when a required header is absent.
	NameMissingHeader     = "MISSING_HEADER"
	CategoryMissingHeader = "MISSING_HEADER"
	// CategoryCrawler is the category of crawler-pattern and missing user agent verdicts.
	CategoryCrawler = "Crawler"
)

// Result is the verdict for a single visit.
type Result struct {
	IsBot    bool   `json:"is_bot"`
	Name     string `json:"bot_name,omitempty"`
	Category string `json:"bot_category,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Stage inspects a visit and returns a verdict when it can decide.
type Stage func(userAgent string, headers http.Header) (Result, bool)

// Classifier runs stages in order, short-circuiting on the first verdict.
type Classifier struct {
	stages   []Stage
	disabled bool
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithDetectionDisabled forces "not a bot" for every visit when disabled is true.
func WithDetectionDisabled(disabled bool) Option {
	return func(c *Classifier) {
		c.disabled = disabled
	}
}

// WithStages replaces the default stage list.
func WithStages(stages ...Stage) Option {
	return func(c *Classifier) {
		if len(stages) > 0 {
			c.stages = stages
		}
	}
}

// DefaultStages returns the standard stage order.
func DefaultStages() []Stage {
	return []Stage{
		MissingUserAgent,
		SignatureDatabase,
		CrawlerPatterns,
		RequiredHeaders("Accept-Language", "Accept"),
	}
}

// New creates a Classifier with the default stages.
func New(opts ...Option) *Classifier {
	c := &Classifier{stages: DefaultStages()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the bot verdict for a visit. headers may be nil.
func (c *Classifier) Classify(userAgent string, headers http.Header) Result {
	if c.disabled {
		return Result{Reason: "bot detection disabled"}
	}
	if headers == nil {
		headers = http.Header{}
	}
	userAgent = strings.TrimSpace(userAgent)

	for _, stage := range c.stages {
		if res, ok := stage(userAgent, headers); ok {
			return res
		}
	}
	return Result{}
}
