package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/landingkit/trafficid/internal/api"
	"github.com/landingkit/trafficid/internal/config"
	"github.com/landingkit/trafficid/internal/traffic"
	"github.com/landingkit/trafficid/internal/traffic/pgstore"
	"github.com/landingkit/trafficid/pkg/attribution"
	"github.com/landingkit/trafficid/pkg/botdetect"
	"github.com/landingkit/trafficid/pkg/campaign"
	pkgconfig "github.com/landingkit/trafficid/pkg/config"
	"github.com/landingkit/trafficid/pkg/fingerprint"
	"github.com/landingkit/trafficid/pkg/geo"
	"github.com/landingkit/trafficid/pkg/httpserver"
	"github.com/landingkit/trafficid/pkg/logger"
	"github.com/landingkit/trafficid/pkg/pg"
	"github.com/landingkit/trafficid/pkg/redis"
)

func main() {
	cfg, err := pkgconfig.Load[config.Config]()
	if err != nil {
		slog.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.ServiceName),
		logger.WithContextExtractors(api.RequestIDExtractor),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgstore.Migrations, pgstore.MigrationsDir, cfg.DB, log); err != nil {
		return err
	}

	checks := []httpserver.Check{pg.Healthcheck(pool)}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := traffic.NewPromMetrics(reg)
	if err != nil {
		return err
	}

	defs, err := cfg.CampaignDefinitions()
	if err != nil {
		return err
	}
	campaigns, err := campaign.NewResolver(defs...)
	if err != nil {
		return err
	}
	log.Info("campaigns loaded", slog.Int("count", campaigns.Len()))

	fingerprints := fingerprint.NewGenerator(
		fingerprint.WithInternalClient(cfg.InternalClients...),
		fingerprint.WithInternalHost(cfg.InternalHost),
	)

	opts := []traffic.Option{
		traffic.WithLogger(log),
		traffic.WithMetrics(metrics),
		traffic.WithFingerprintGenerator(fingerprints),
		traffic.WithBotClassifier(botdetect.New(botdetect.WithDetectionDisabled(cfg.BotDetectionOff()))),
		traffic.WithSourceClassifier(attribution.New(attribution.DefaultRules(campaigns)...)),
	}

	if cfg.Geo.Endpoint != "" {
		geoOpts := []geo.CachedOption{
			geo.WithTimeout(cfg.Geo.Timeout),
			geo.WithLocalCache(cfg.Geo.CacheSize, cfg.Geo.CacheTTL),
			geo.WithLogger(log),
		}
		if cfg.RedisEnabled {
			client, err := redis.Connect(ctx, cfg.Redis)
			if err != nil {
				return err
			}
			defer func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close redis client", logger.Error(err))
				}
			}()
			geoOpts = append(geoOpts, geo.WithSharedCache(geo.NewRedisCache(client, cfg.Geo.SharedCacheTTL)))
			checks = append(checks, redis.Healthcheck(client))
		}
		provider := geo.NewHTTPProvider(cfg.Geo.Endpoint, geo.WithToken(cfg.Geo.Token))
		opts = append(opts, traffic.WithLocator(geo.NewCached(provider, geoOpts...)))
	} else {
		log.Warn("GEO_ENDPOINT is not set, every visit gets the default location")
	}

	svc := traffic.NewService(pgstore.New(pool), opts...)

	handler := api.NewHandler(svc,
		api.WithLogger(log),
		api.WithOriginHeader(cfg.OriginHeader),
		api.WithClientHeader(cfg.ClientHeader),
		api.WithIPHeaders(cfg.IPHeaders...),
		api.WithFingerprintGenerator(fingerprints),
		api.WithReadinessChecks(checks...),
		api.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
	)

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, handler); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
