package attribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingkit/trafficid/pkg/attribution"
	"github.com/landingkit/trafficid/pkg/campaign"
)

func newClassifier(t *testing.T) *attribution.Classifier {
	t.Helper()
	resolver, err := campaign.NewResolver(campaign.Definition{Code: "ABC123", Vendor: "AcmeAds"})
	require.NoError(t, err)
	return attribution.New(attribution.DefaultRules(resolver)...)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	c := newClassifier(t)
	const landing = "landing.example.com"

	tests := []struct {
		name   string
		in     attribution.Input
		medium string
		source string
		rule   string
	}{
		{
			name:   "paid campaign",
			in:     attribution.Input{Query: map[string]string{"cptype": "ABC123"}, LandingHost: landing},
			medium: "ads", source: "acmeads", rule: attribution.RulePaidCampaign,
		},
		{
			name: "paid campaign wins over referrer",
			in: attribution.Input{
				Query:       map[string]string{"cptype": "abc123"},
				Referrer:    "https://www.google.com/search?q=x",
				LandingHost: landing,
			},
			medium: "ads", source: "acmeads", rule: attribution.RulePaidCampaign,
		},
		{
			name: "unknown campaign falls through to referrer",
			in: attribution.Input{
				Query:       map[string]string{"cptype": "NOPE"},
				Referrer:    "https://www.google.com/search?q=x",
				LandingHost: landing,
			},
			medium: "organic", source: "google", rule: attribution.RuleReferrer,
		},
		{
			name:   "unknown campaign without referrer is direct",
			in:     attribution.Input{Query: map[string]string{"cptype": "NOPE"}, LandingHost: landing},
			medium: "direct", source: "direct", rule: attribution.RuleDirect,
		},
		{
			name:   "search referrer",
			in:     attribution.Input{Query: map[string]string{}, Referrer: "https://www.google.com/search?q=x", LandingHost: landing},
			medium: "organic", source: "google", rule: attribution.RuleReferrer,
		},
		{
			name:   "bing referrer",
			in:     attribution.Input{Referrer: "https://www.bing.com/search?q=shoes", LandingHost: landing},
			medium: "organic", source: "bing", rule: attribution.RuleReferrer,
		},
		{
			name:   "internal referrer",
			in:     attribution.Input{Referrer: "https://landing.example.com/other", LandingHost: landing},
			medium: "direct", source: "direct", rule: attribution.RuleReferrer,
		},
		{
			name:   "internal referrer with www",
			in:     attribution.Input{Referrer: "https://www.landing.example.com/", LandingHost: "https://landing.example.com"},
			medium: "direct", source: "direct", rule: attribution.RuleReferrer,
		},
		{
			name:   "referrer without host",
			in:     attribution.Input{Referrer: "/relative/path", LandingHost: landing},
			medium: "direct", source: "direct", rule: attribution.RuleReferrer,
		},
		{
			name:   "social referrer",
			in:     attribution.Input{Referrer: "https://m.facebook.com/story", LandingHost: landing},
			medium: "social", source: "facebook", rule: attribution.RuleReferrer,
		},
		{
			name:   "short social host",
			in:     attribution.Input{Referrer: "https://t.co/abc", LandingHost: landing},
			medium: "social", source: "twitter", rule: attribution.RuleReferrer,
		},
		{
			name:   "short host is not a substring match",
			in:     attribution.Input{Referrer: "https://www.microsoft.com/", LandingHost: landing},
			medium: "referral", source: "microsoft.com", rule: attribution.RuleReferrer,
		},
		{
			name:   "other referrer",
			in:     attribution.Input{Referrer: "https://blog.partner.io/post/1", LandingHost: landing},
			medium: "referral", source: "blog.partner.io", rule: attribution.RuleReferrer,
		},
		{
			name:   "no referrer",
			in:     attribution.Input{LandingHost: landing},
			medium: "direct", source: "direct", rule: attribution.RuleDirect,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tc.in)
			assert.Equal(t, attribution.Result{Medium: tc.medium, Source: tc.source, Rule: tc.rule}, got)
		})
	}
}

func TestClassify_VendorlessCampaign(t *testing.T) {
	t.Parallel()

	resolver, err := campaign.NewResolver(campaign.Definition{Code: "XYZ9"})
	require.NoError(t, err)
	c := attribution.New(attribution.DefaultRules(resolver)...)

	got := c.Classify(attribution.Input{Query: map[string]string{"cptype": "xyz9"}})
	assert.Equal(t, "ads", got.Medium)
	assert.Equal(t, "xyz9", got.Source)
}

func TestClassify_NilResolver(t *testing.T) {
	t.Parallel()

	c := attribution.New(attribution.DefaultRules(nil)...)
	got := c.Classify(attribution.Input{Query: map[string]string{"cptype": "ABC123"}})
	assert.Equal(t, attribution.MediumDirect, got.Medium)
}

func TestClassify_NoRules(t *testing.T) {
	t.Parallel()

	got := attribution.New().Classify(attribution.Input{Referrer: "https://google.com"})
	assert.Equal(t, attribution.Result{Medium: "direct", Source: "direct", Rule: attribution.RuleDirect}, got)
}

func TestClassify_CustomOrder(t *testing.T) {
	t.Parallel()

	tables := []attribution.DomainLabel{{Fragment: "example.net", Label: "example"}}
	c := attribution.New(
		attribution.ReferrerRule(nil, tables),
		attribution.DirectRule(),
	)
	got := c.Classify(attribution.Input{Referrer: "https://news.example.net/a"})
	assert.Equal(t, "social", got.Medium)
	assert.Equal(t, "example", got.Source)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table []attribution.DomainLabel
		host  string
		label string
		ok    bool
	}{
		{"search engine", attribution.SearchEngines, "duckduckgo.com", "duckduckgo", true},
		{"substring row", attribution.SocialNetworks, "old.reddit.com", "reddit", true},
		{"exact row", attribution.SocialNetworks, "x.com", "twitter", true},
		{"exact row subdomain", attribution.SocialNetworks, "mobile.x.com", "twitter", true},
		{"exact row mobile vk", attribution.SocialNetworks, "m.vk.com", "vk", true},
		{"exact row mobile fb", attribution.SocialNetworks, "m.fb.com", "facebook", true},
		{"exact row suffix without dot", attribution.SocialNetworks, "netflix.com", "", false},
		{"exact row embedded", attribution.SocialNetworks, "t.co.example.org", "", false},
		{"unrelated host", attribution.SocialNetworks, "dropbox.com", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			label, ok := attribution.Match(tc.table, tc.host)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.label, label)
		})
	}
}

func TestClassify_ExactSocialSubdomain(t *testing.T) {
	t.Parallel()

	got := attribution.New(attribution.DefaultRules(nil)...).Classify(attribution.Input{
		Referrer: "https://mobile.x.com/i/status/1",
	})
	assert.Equal(t, "social", got.Medium)
	assert.Equal(t, "twitter", got.Source)
}
