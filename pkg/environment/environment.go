package environment

import "strings"

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse maps a name or alias to an Environment. Unknown values map to
// Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production
	case "staging", "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsDevelopment() bool { return e == Development }

func (e Environment) IsStaging() bool { return e == Staging }

func (e Environment) IsProduction() bool { return e == Production }

func (e Environment) String() string { return string(e) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}
