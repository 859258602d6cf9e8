package traffic

import (
	"slices"
	"strings"
)

// Query parameters read directly into record fields.
const (
	ParamUTMSource   = "utm_source"
	ParamUTMCampaign = "utm_campaign"
	ParamUTMTerm     = "utm_term"
	ParamUTMContent  = "utm_content"
	ParamCampaign    = "cptype"
)

// NormalizeQuery lower-cases parameter keys and keeps the first value of each.
// When keys collide after lower-casing, the key that sorts first wins, so the
// result does not depend on map iteration order.
func NormalizeQuery(raw map[string][]string) map[string]string {
	out := make(map[string]string, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" || len(raw[k]) == 0 {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = strings.TrimSpace(raw[k][0])
	}
	return out
}

type utmFields struct {
	Source   string
	Campaign string
	Term     string
	Content  string
}

func extractUTM(q map[string]string) utmFields {
	return utmFields{
		Source:   q[ParamUTMSource],
		Campaign: q[ParamUTMCampaign],
		Term:     q[ParamUTMTerm],
		Content:  q[ParamUTMContent],
	}
}
