package traffic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/landingkit/trafficid/pkg/attribution"
	"github.com/landingkit/trafficid/pkg/botdetect"
	"github.com/landingkit/trafficid/pkg/clickid"
	"github.com/landingkit/trafficid/pkg/fingerprint"
	"github.com/landingkit/trafficid/pkg/geo"
	"github.com/landingkit/trafficid/pkg/logger"
	"github.com/landingkit/trafficid/pkg/useragent"
)

// BotClassifier decides whether a visit is automated. *botdetect.Classifier
// implements it.
type BotClassifier interface {
	Classify(userAgent string, headers http.Header) botdetect.Result
}

// DeviceParser maps a user agent to device labels. useragent.Parser implements it.
type DeviceParser interface {
	Parse(userAgent string) useragent.Info
}

// SourceClassifier produces the attribution medium and source.
// *attribution.Classifier implements it.
type SourceClassifier interface {
	Classify(in attribution.Input) attribution.Result
}

// Locator resolves an IP to a location. It returns a usable location even
// when it also returns an error. *geo.Cached implements it.
type Locator interface {
	Locate(ctx context.Context, ip string) (geo.Location, error)
}

// Service ingests visits and serves traffic records.
type Service struct {
	store        Storage
	fingerprints *fingerprint.Generator
	bots         BotClassifier
	devices      DeviceParser
	sources      SourceClassifier
	locator      Locator
	metrics      Metrics
	logger       *slog.Logger
	now          func() time.Time
	newID        func() (uuid.UUID, error)
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock replaces time.Now for event timestamps that are not set and for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator replaces uuid.NewRandom for record ids.
func WithIDGenerator(fn func() (uuid.UUID, error)) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func WithFingerprintGenerator(g *fingerprint.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.fingerprints = g
		}
	}
}

func WithBotClassifier(c BotClassifier) Option {
	return func(s *Service) {
		if c != nil {
			s.bots = c
		}
	}
}

func WithDeviceParser(p DeviceParser) Option {
	return func(s *Service) {
		if p != nil {
			s.devices = p
		}
	}
}

func WithSourceClassifier(c SourceClassifier) Option {
	return func(s *Service) {
		if c != nil {
			s.sources = c
		}
	}
}

// WithLocator sets the geolocation collaborator. Without one every record
// gets geo.DefaultLocation.
func WithLocator(l Locator) Option {
	return func(s *Service) {
		if l != nil {
			s.locator = l
		}
	}
}

// NewService creates a Service backed by store. Collaborators default to the
// standard implementations with an empty campaign list.
func NewService(store Storage, opts ...Option) *Service {
	s := &Service{
		store:        store,
		fingerprints: fingerprint.NewGenerator(),
		bots:         botdetect.New(),
		devices:      useragent.Parser{},
		sources:      attribution.New(attribution.DefaultRules(nil)...),
		metrics:      noopMetrics{},
		logger:       logger.Discard(),
		now:          time.Now,
		newID:        uuid.NewRandom,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("traffic"))
	return s
}

// Ingest records a visit. The first visit of a fingerprint creates a record
// with a visit count of one; later visits only increment the count and
// return the stored record.
func (s *Service) Ingest(ctx context.Context, ev VisitEvent) (*Record, error) {
	start := time.Now()

	at := ev.At
	if at.IsZero() {
		at = s.now()
	}
	at = at.UTC()

	host, err := s.fingerprints.ResolveHost(ev.OriginHost, ev.Client)
	if err != nil {
		s.metrics.Ingested(OutcomeRejected, time.Since(start))
		s.logger.DebugContext(ctx, "visit rejected", logger.Outcome(OutcomeRejected), logger.Error(err))
		return nil, err
	}
	fp, err := fingerprint.Generate(ev.UserAgent, ev.IP, host, at)
	if err != nil {
		return nil, s.fail(ctx, start, "", err)
	}

	_, err = s.store.GetByFingerprint(ctx, fp)
	switch {
	case err == nil:
		return s.increment(ctx, start, fp, OutcomeIncremented)
	case !errors.Is(err, ErrRecordNotFound):
		return nil, s.fail(ctx, start, fp, fmt.Errorf("lookup: %w", err))
	}

	rec, err := s.build(ctx, fp, host, at, ev)
	if err != nil {
		return nil, s.fail(ctx, start, fp, err)
	}

	created, err := s.store.Create(ctx, rec)
	switch {
	case errors.Is(err, ErrDuplicateFingerprint):
		// a concurrent first visit won the insert
		return s.increment(ctx, start, fp, OutcomeRaceRecovered)
	case err != nil:
		return nil, s.fail(ctx, start, fp, fmt.Errorf("create: %w", err))
	}

	s.metrics.Ingested(OutcomeCreated, time.Since(start))
	s.metrics.Classified(created)
	s.logger.DebugContext(ctx, "traffic record created",
		logger.Fingerprint(fp),
		logger.Outcome(OutcomeCreated),
		logger.Attribution(created.Medium, created.Source),
		slog.Bool("is_bot", created.IsBot),
	)
	return created, nil
}

// Resolve returns the record for fingerprint. Bot-classified records are
// returned together with ErrBotTraffic so callers can reject them explicitly.
func (s *Service) Resolve(ctx context.Context, fp string) (*Record, error) {
	rec, err := s.store.GetByFingerprint(ctx, strings.ToLower(strings.TrimSpace(fp)))
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("resolve traffic record: %w", err)
	}
	if rec.IsBot {
		return rec, ErrBotTraffic
	}
	return rec, nil
}

func (s *Service) increment(ctx context.Context, start time.Time, fp, outcome string) (*Record, error) {
	rec, err := s.store.IncrementVisits(ctx, fp)
	if err != nil {
		return nil, s.fail(ctx, start, fp, fmt.Errorf("increment: %w", err))
	}
	s.metrics.Ingested(outcome, time.Since(start))
	if outcome == OutcomeRaceRecovered {
		s.logger.InfoContext(ctx, "concurrent first visit resolved by increment", logger.Fingerprint(fp), logger.Outcome(outcome))
	} else {
		s.logger.DebugContext(ctx, "traffic record visited again", logger.Fingerprint(fp), logger.Outcome(outcome))
	}
	return rec, nil
}

func (s *Service) fail(ctx context.Context, start time.Time, fp string, cause error) error {
	s.metrics.Ingested(OutcomeFailed, time.Since(start))
	s.logger.ErrorContext(ctx, "traffic ingestion failed",
		logger.Fingerprint(fp),
		logger.Outcome(OutcomeFailed),
		logger.Error(cause),
	)
	return fmt.Errorf("%w: %w", ErrIngestionFailed, cause)
}

// build classifies a first visit. It performs no writes.
func (s *Service) build(ctx context.Context, fp, host string, at time.Time, ev VisitEvent) (*Record, error) {
	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("generate record id: %w", err)
	}

	rec := &Record{
		ID:          id,
		Fingerprint: fp,
		FirstSeen:   time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC),
		VisitCount:  1,
		Path:        ev.Path,
		Host:        host,
		Sub1:        ev.Sub1,
		Sub2:        ev.Sub2,
		Sub3:        ev.Sub3,
		Sub4:        ev.Sub4,
		CreatedAt:   s.now().UTC(),
	}

	if ev.IsBot != nil {
		rec.IsBot = *ev.IsBot
	} else {
		bot := s.bots.Classify(ev.UserAgent, ev.Headers)
		rec.IsBot, rec.BotName, rec.BotCategory = bot.IsBot, bot.Name, bot.Category
	}

	device := s.devices.Parse(ev.UserAgent)
	rec.DeviceType, rec.Browser, rec.OS = device.DeviceType, device.Browser, device.OS

	// A referrer pointing back at the landing host carries no attribution.
	if ref := strings.TrimSpace(ev.Referrer); ref != "" && fingerprint.NormalizeHost(ref) != host {
		rec.Referrer = ref
	}

	query := NormalizeQuery(ev.Query)
	rec.QueryParams = query

	utm := extractUTM(query)
	rec.CampaignName, rec.Term, rec.Content = utm.Campaign, utm.Term, utm.Content
	rec.CampaignID = query[ParamCampaign]

	if click, ok := clickid.Extract(query); ok {
		rec.ClickID, rec.Platform, rec.Channel = click.ID, click.Platform, click.Channel
	}

	source := s.sources.Classify(attribution.Input{
		Referrer:    rec.Referrer,
		Query:       query,
		LandingHost: host,
	})
	rec.Medium, rec.Source = source.Medium, source.Source
	if utm.Source != "" {
		rec.Source = utm.Source
	}

	loc := s.locate(ctx, ev.IP)
	rec.Country, rec.Region, rec.City, rec.Postal = loc.Country, loc.Region, loc.City, loc.Postal

	return rec, nil
}

func (s *Service) locate(ctx context.Context, ip string) geo.Location {
	if s.locator == nil {
		return geo.DefaultLocation
	}
	loc, err := s.locator.Locate(ctx, ip)
	if err != nil {
		s.metrics.GeoFallback()
		s.logger.DebugContext(ctx, "geolocation fell back to default", logger.Error(err))
		if loc.IsZero() {
			loc = geo.DefaultLocation
		}
	}
	return loc
}
