package traffic

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Ingestion outcomes.
const (
	OutcomeCreated       = "created"
	OutcomeIncremented   = "incremented"
	OutcomeRaceRecovered = "race_recovered"
	OutcomeRejected      = "rejected"
	OutcomeFailed        = "failed"
)

// Metrics receives ingestion events.
type Metrics interface {
	Ingested(outcome string, took time.Duration)
	Classified(rec *Record)
	GeoFallback()
}

type noopMetrics struct{}

func (noopMetrics) Ingested(string, time.Duration) {}
func (noopMetrics) Classified(*Record)             {}
func (noopMetrics) GeoFallback()                   {}

// PromMetrics exports ingestion metrics to Prometheus.
type PromMetrics struct {
	ingests     *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	mediums     *prometheus.CounterVec
	bots        *prometheus.CounterVec
	geoFallback prometheus.Counter
}

// NewPromMetrics creates the collectors and registers them with reg.
func NewPromMetrics(reg prometheus.Registerer) (*PromMetrics, error) {
	m := &PromMetrics{
		ingests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trafficid_ingest_total",
			Help: "Visit ingestions by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trafficid_ingest_duration_seconds",
			Help:    "Visit ingestion latency by outcome.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
		mediums: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trafficid_records_by_medium_total",
			Help: "Created traffic records by attribution medium.",
		}, []string{"medium"}),
		bots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "trafficid_bot_records_total",
			Help: "Created bot-classified traffic records by bot category.",
		}, []string{"category"}),
		geoFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "trafficid_geo_fallback_total",
			Help: "Geolocation lookups that fell back to the default location.",
		}),
	}

	for _, c := range []prometheus.Collector{m.ingests, m.duration, m.mediums, m.bots, m.geoFallback} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PromMetrics) Ingested(outcome string, took time.Duration) {
	m.ingests.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(took.Seconds())
}

func (m *PromMetrics) Classified(rec *Record) {
	m.mediums.WithLabelValues(rec.Medium).Inc()
	if rec.IsBot {
		category := rec.BotCategory
		if category == "" {
			category = "unspecified"
		}
		m.bots.WithLabelValues(category).Inc()
	}
}

func (m *PromMetrics) GeoFallback() {
	m.geoFallback.Inc()
}
