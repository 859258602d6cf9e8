package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingkit/trafficid/internal/config"
	"github.com/landingkit/trafficid/pkg/campaign"
	pkgconfig "github.com/landingkit/trafficid/pkg/config"
	"github.com/landingkit/trafficid/pkg/environment"
)

func TestLoad(t *testing.T) {
	t.Setenv("PG_CONN_URL", "postgres://localhost:5432/trafficid")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("INTERNAL_CLIENTS", "qa-bot,smoke")
	t.Setenv("GEO_TIMEOUT", "750ms")

	cfg, err := pkgconfig.Load[config.Config]()
	require.NoError(t, err)

	assert.Equal(t, environment.Production, cfg.Env)
	assert.Equal(t, "postgres://localhost:5432/trafficid", cfg.DB.ConnectionString)
	assert.Equal(t, []string{"qa-bot", "smoke"}, cfg.InternalClients)
	assert.Equal(t, 750*time.Millisecond, cfg.Geo.Timeout)
	assert.Equal(t, "X-Origin-Host", cfg.OriginHeader)
	assert.Equal(t, "internal.test", cfg.InternalHost)
	assert.False(t, cfg.BotDetectionOff(), "detection stays on outside development")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("PG_CONN_URL", "")
	require.NoError(t, os.Unsetenv("PG_CONN_URL"))

	_, err := pkgconfig.Load[config.Config]()
	assert.ErrorIs(t, err, pkgconfig.ErrParsingConfig)
}

func TestConfig_BotDetectionOff(t *testing.T) {
	t.Parallel()

	yes, no := true, false
	tests := []struct {
		name     string
		env      environment.Environment
		disabled *bool
		want     bool
	}{
		{"development default", environment.Development, nil, true},
		{"production default", environment.Production, nil, false},
		{"explicitly enabled in development", environment.Development, &no, false},
		{"explicitly disabled in staging", environment.Staging, &yes, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Config{Env: tt.env, BotDetectionDisabled: tt.disabled}
			assert.Equal(t, tt.want, cfg.BotDetectionOff())
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			OriginHeader: "X-Origin-Host",
			InternalHost: "internal.test",
			Geo:          config.Geo{Timeout: 2 * time.Second, CacheSize: 100},
		}
	}

	tests := []struct {
		name   string
		mutate func(*config.Config)
		ok     bool
	}{
		{"valid", func(*config.Config) {}, true},
		{"empty origin header", func(c *config.Config) { c.OriginHeader = "" }, false},
		{"empty internal host", func(c *config.Config) { c.InternalHost = "" }, false},
		{"zero geo timeout", func(c *config.Config) { c.Geo.Timeout = 0 }, false},
		{"zero cache size", func(c *config.Config) { c.Geo.CacheSize = 0 }, false},
		{"write timeout below geo timeout", func(c *config.Config) { c.HTTP.WriteTimeout = time.Second }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestConfig_CampaignDefinitions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "campaigns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("campaigns:\n  - cptype: ABC123\n    vendor: AcmeAds\n"), 0o600))

	cfg := config.Config{CampaignsFile: path, Campaigns: "XYZ=Zeta, QQ"}
	defs, err := cfg.CampaignDefinitions()
	require.NoError(t, err)
	assert.Equal(t, []campaign.Definition{
		{Code: "ABC123", Vendor: "AcmeAds"},
		{Code: "XYZ", Vendor: "Zeta"},
		{Code: "QQ"},
	}, defs)

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		cfg := config.Config{CampaignsFile: filepath.Join(t.TempDir(), "nope.yaml")}
		_, err := cfg.CampaignDefinitions()
		assert.ErrorIs(t, err, campaign.ErrReadDefinitions)
	})
}
