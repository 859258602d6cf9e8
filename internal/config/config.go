// Package config holds the service configuration read from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/landingkit/trafficid/pkg/campaign"
	"github.com/landingkit/trafficid/pkg/environment"
	"github.com/landingkit/trafficid/pkg/httpserver"
	"github.com/landingkit/trafficid/pkg/pg"
	"github.com/landingkit/trafficid/pkg/redis"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env         environment.Environment `env:"APP_ENV" envDefault:"development"`
	ServiceName string                  `env:"SERVICE_NAME" envDefault:"trafficid"`

	HTTP  httpserver.Config
	DB    pg.Config
	Redis redis.Config

	RedisEnabled bool `env:"REDIS_ENABLED" envDefault:"false"` // share the geo cache across instances

	Geo Geo

	CampaignsFile string `env:"CAMPAIGNS_FILE"` // YAML list of cptype/vendor pairs
	Campaigns     string `env:"CAMPAIGNS"`      // inline CODE=Vendor pairs, comma separated

	// Unset means disabled in development and enabled elsewhere.
	BotDetectionDisabled *bool `env:"BOT_DETECTION_DISABLED"`

	InternalClients []string `env:"INTERNAL_CLIENTS" envSeparator:","`
	InternalHost    string   `env:"INTERNAL_HOST" envDefault:"internal.test"`
	OriginHeader    string   `env:"ORIGIN_HEADER" envDefault:"X-Origin-Host"`
	ClientHeader    string   `env:"CLIENT_HEADER" envDefault:"X-Client"`
	IPHeaders       []string `env:"IP_HEADERS" envSeparator:","` // trusted client IP headers, in order
}

type Geo struct {
	Endpoint       string        `env:"GEO_ENDPOINT"` // URL template with {ip}; empty disables lookups
	Token          string        `env:"GEO_TOKEN"`
	Timeout        time.Duration `env:"GEO_TIMEOUT" envDefault:"2s"`
	CacheSize      int           `env:"GEO_CACHE_SIZE" envDefault:"10000"`
	CacheTTL       time.Duration `env:"GEO_CACHE_TTL" envDefault:"24h"`
	SharedCacheTTL time.Duration `env:"GEO_SHARED_CACHE_TTL" envDefault:"168h"`
}

// Validate reports settings that would make the service misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.OriginHeader == "" {
		errs = append(errs, errors.New("ORIGIN_HEADER must not be empty"))
	}
	if c.InternalHost == "" {
		errs = append(errs, errors.New("INTERNAL_HOST must not be empty"))
	}
	if c.Geo.Timeout <= 0 {
		errs = append(errs, errors.New("GEO_TIMEOUT must be positive"))
	}
	if c.Geo.CacheSize <= 0 {
		errs = append(errs, errors.New("GEO_CACHE_SIZE must be positive"))
	}
	if c.HTTP.WriteTimeout > 0 && c.HTTP.WriteTimeout <= c.Geo.Timeout {
		errs = append(errs, fmt.Errorf("HTTP_WRITE_TIMEOUT (%s) must exceed GEO_TIMEOUT (%s)", c.HTTP.WriteTimeout, c.Geo.Timeout))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// BotDetectionOff resolves BOT_DETECTION_DISABLED against the environment.
func (c Config) BotDetectionOff() bool {
	if c.BotDetectionDisabled != nil {
		return *c.BotDetectionDisabled
	}
	return c.Env.IsDevelopment()
}

// CampaignDefinitions returns the definitions from CAMPAIGNS_FILE followed
// by the inline CAMPAIGNS entries.
func (c Config) CampaignDefinitions() ([]campaign.Definition, error) {
	var defs []campaign.Definition
	if c.CampaignsFile != "" {
		fromFile, err := campaign.LoadFile(c.CampaignsFile)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fromFile...)
	}
	return append(defs, campaign.ParseEnv(c.Campaigns)...), nil
}
