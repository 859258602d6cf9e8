// Package campaign resolves internal paid-campaign codes (cptype) to the
// vendor configured for them.
//
// Definitions come from a YAML file or an inline "CODE=Vendor,CODE2=Vendor2"
// string. Codes are matched case-insensitively. An unknown code is an expected
// outcome reported as ErrCampaignNotFound.
package campaign

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrInvalidDefinition = errors.New("invalid campaign definition")
	ErrReadDefinitions   = errors.New("failed to read campaign definitions")
)

// Definition maps a cptype code to its vendor label.
type Definition struct {
	Code   string `yaml:"cptype" json:"cptype"`
	Vendor string `yaml:"vendor" json:"vendor"`
}

// Resolver looks campaign codes up in a fixed set of definitions.
type Resolver struct {
	byCode map[string]Definition
}

// NewResolver indexes definitions by upper-cased code. A later definition for
// the same code replaces an earlier one. Definitions without a code are rejected.
func NewResolver(defs ...Definition) (*Resolver, error) {
	r := &Resolver{byCode: make(map[string]Definition, len(defs))}
	for i, d := range defs {
		code := strings.ToUpper(strings.TrimSpace(d.Code))
		if code == "" {
			return nil, fmt.Errorf("%w: entry %d has no cptype", ErrInvalidDefinition, i)
		}
		d.Code = code
		d.Vendor = strings.TrimSpace(d.Vendor)
		r.byCode[code] = d
	}
	return r, nil
}

// Resolve returns the definition for code, or ErrCampaignNotFound.
func (r *Resolver) Resolve(code string) (Definition, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || r == nil {
		return Definition{}, ErrCampaignNotFound
	}
	d, ok := r.byCode[code]
	if !ok {
		return Definition{}, ErrCampaignNotFound
	}
	return d, nil
}

// Len returns the number of configured campaigns.
func (r *Resolver) Len() int {
	if r == nil {
		return 0
	}
	return len(r.byCode)
}

// Label returns the attribution source for a resolved definition: the
// lower-cased vendor, or the lower-cased code when no vendor is configured.
func (d Definition) Label() string {
	if d.Vendor != "" {
		return strings.ToLower(d.Vendor)
	}
	return strings.ToLower(d.Code)
}

type file struct {
	Campaigns []Definition `yaml:"campaigns"`
}

// LoadFile reads definitions from a YAML file of the form:
//
//	campaigns:
//	  - cptype: ABC123
//	    vendor: AcmeAds
func LoadFile(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadDefinitions, err)
	}
	return Parse(raw)
}

// Parse decodes YAML definitions.
func Parse(raw []byte) ([]Definition, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Join(ErrReadDefinitions, err)
	}
	return f.Campaigns, nil
}

// ParseEnv decodes "CODE=Vendor" pairs separated by commas. Whitespace is
// ignored; a pair without "=" has no vendor.
func ParseEnv(s string) []Definition {
	var defs []Definition
	for pair := range strings.SplitSeq(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, vendor, _ := strings.Cut(pair, "=")
		defs = append(defs, Definition{Code: strings.TrimSpace(code), Vendor: strings.TrimSpace(vendor)})
	}
	return defs
}
