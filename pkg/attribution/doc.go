// Package attribution decides where a visit came from.
//
// A Classifier evaluates an ordered list of rules and returns the result of
// the first rule that applies. The default cascade is:
//
//  1. PaidCampaignRule: a configured cptype query parameter yields
//     {ads, vendor}. Unknown codes fall through.
//  2. ReferrerRule: an internal referrer yields {direct, direct}; a search
//     engine yields {organic, engine}; a social network yields
//     {social, network}; anything else yields {referral, host}.
//  3. DirectRule: {direct, direct}.
//
// Search and social detection is a plain substring match over the referrer
// host, evaluated in table order, so lookalike domains can match.
//
// Usage:
//
//	resolver, _ := campaign.NewResolver(defs...)
//	c := attribution.New(attribution.DefaultRules(resolver)...)
//	res := c.Classify(attribution.Input{
//		Referrer:    "https://www.google.com/search?q=x",
//		LandingHost: "landing.example.com",
//	})
//	// res.Medium == "organic", res.Source == "google"
package attribution
