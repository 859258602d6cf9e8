package attribution

import (
	"strings"

	"github.com/landingkit/trafficid/pkg/campaign"
	"github.com/landingkit/trafficid/pkg/fingerprint"
)

// Rule names.
const (
	RulePaidCampaign = "paid_campaign"
	RuleReferrer     = "referrer"
	RuleDirect       = "direct"
)

// CampaignParam is the query parameter carrying the internal campaign code.
const CampaignParam = "cptype"

// CampaignResolver looks campaign codes up. *campaign.Resolver implements it.
type CampaignResolver interface {
	Resolve(code string) (campaign.Definition, error)
}

type paidCampaignRule struct {
	campaigns CampaignResolver
}

// PaidCampaignRule attributes visits carrying a configured cptype to the
// campaign vendor. A missing or unknown code does not apply.
func PaidCampaignRule(campaigns CampaignResolver) Rule {
	return paidCampaignRule{campaigns: campaigns}
}

func (paidCampaignRule) Name() string { return RulePaidCampaign }

func (r paidCampaignRule) Apply(in Input) (Result, bool) {
	if r.campaigns == nil {
		return Result{}, false
	}
	code := strings.TrimSpace(in.Query[CampaignParam])
	if code == "" {
		return Result{}, false
	}
	def, err := r.campaigns.Resolve(code)
	if err != nil {
		return Result{}, false
	}
	return Result{Medium: MediumAds, Source: def.Label()}, true
}

type referrerRule struct {
	search []DomainLabel
	social []DomainLabel
}

// ReferrerRule classifies by referrer host. It applies whenever a referrer is
// present.
func ReferrerRule(search, social []DomainLabel) Rule {
	return referrerRule{search: search, social: social}
}

func (referrerRule) Name() string { return RuleReferrer }

func (r referrerRule) Apply(in Input) (Result, bool) {
	if strings.TrimSpace(in.Referrer) == "" {
		return Result{}, false
	}
	host := fingerprint.NormalizeHost(in.Referrer)
	if host == "" || host == fingerprint.NormalizeHost(in.LandingHost) {
		return Result{Medium: MediumDirect, Source: SourceDirect}, true
	}
	if label, ok := Match(r.search, host); ok {
		return Result{Medium: MediumOrganic, Source: label}, true
	}
	if label, ok := Match(r.social, host); ok {
		return Result{Medium: MediumSocial, Source: label}, true
	}
	return Result{Medium: MediumReferral, Source: host}, true
}

type directRule struct{}

// DirectRule always applies. It belongs at the end of a cascade.
func DirectRule() Rule { return directRule{} }

func (directRule) Name() string { return RuleDirect }

func (directRule) Apply(Input) (Result, bool) {
	return Result{Medium: MediumDirect, Source: SourceDirect}, true
}
