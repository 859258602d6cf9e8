package attribution

// Mediums.
const (
	MediumAds      = "ads"
	MediumOrganic  = "organic"
	MediumSocial   = "social"
	MediumReferral = "referral"
	MediumDirect   = "direct"
)

// SourceDirect is the source reported together with MediumDirect.
const SourceDirect = "direct"

// Input carries the signals the rules look at. Query keys are expected to be
// lower case.
type Input struct {
	Referrer    string
	Query       map[string]string
	LandingHost string
}

// Result is an attribution decision. Rule names the rule that produced it.
type Result struct {
	Medium string `json:"medium"`
	Source string `json:"source"`
	Rule   string `json:"rule"`
}

// Rule is one step of the cascade. Apply reports false when the rule does not
// apply to the input, letting the next rule run.
type Rule interface {
	Name() string
	Apply(in Input) (Result, bool)
}

// Classifier runs rules in order.
type Classifier struct {
	rules []Rule
}

// New creates a classifier over rules. With no rules every input is direct.
func New(rules ...Rule) *Classifier {
	return &Classifier{rules: rules}
}

// DefaultRules returns the standard cascade using the given campaign resolver
// and the built-in search and social tables.
func DefaultRules(campaigns CampaignResolver) []Rule {
	return []Rule{
		PaidCampaignRule(campaigns),
		ReferrerRule(SearchEngines, SocialNetworks),
		DirectRule(),
	}
}

// Classify returns the result of the first applicable rule, or direct.
func (c *Classifier) Classify(in Input) Result {
	for _, r := range c.rules {
		if res, ok := r.Apply(in); ok {
			if res.Rule == "" {
				res.Rule = r.Name()
			}
			return res
		}
	}
	return Result{Medium: MediumDirect, Source: SourceDirect, Rule: RuleDirect}
}
