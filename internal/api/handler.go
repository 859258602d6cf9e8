package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/landingkit/trafficid/internal/traffic"
	"github.com/landingkit/trafficid/pkg/clientip"
	"github.com/landingkit/trafficid/pkg/fingerprint"
	"github.com/landingkit/trafficid/pkg/httpserver"
	"github.com/landingkit/trafficid/pkg/logger"
)

const maxBodyBytes = 64 << 10

var fingerprintPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Visits is the traffic service as seen by the HTTP layer.
type Visits interface {
	Ingest(ctx context.Context, ev traffic.VisitEvent) (*traffic.Record, error)
	Resolve(ctx context.Context, fingerprint string) (*traffic.Record, error)
}

type Handler struct {
	visits Visits
	router chi.Router
	log    *slog.Logger

	originHeader string
	clientHeader string
	ips          *clientip.Resolver
	fingerprints *fingerprint.Generator
	ready        []httpserver.Check
	metrics      http.Handler
}

type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithOriginHeader names the header carrying the landing page host.
func WithOriginHeader(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.originHeader = name
		}
	}
}

// WithClientHeader names the header carrying the caller identifier checked
// against the internal client whitelist.
func WithClientHeader(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.clientHeader = name
		}
	}
}

// WithIPHeaders sets the trusted client IP header chain.
func WithIPHeaders(headers ...string) Option {
	return func(h *Handler) { h.ips = clientip.NewResolver(headers...) }
}

// WithFingerprintGenerator sets the generator used for /v1/visits/current.
// It must match the one the traffic service uses.
func WithFingerprintGenerator(g *fingerprint.Generator) Option {
	return func(h *Handler) {
		if g != nil {
			h.fingerprints = g
		}
	}
}

// WithReadinessChecks adds dependency checks to /readyz.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(h *Handler) { h.ready = append(h.ready, checks...) }
}

// WithMetricsHandler mounts m on /metrics.
func WithMetricsHandler(m http.Handler) Option {
	return func(h *Handler) { h.metrics = m }
}

func NewHandler(visits Visits, opts ...Option) *Handler {
	h := &Handler{
		visits:       visits,
		log:          logger.Discard(),
		originHeader: fingerprint.DefaultOriginHeader,
		clientHeader: fingerprint.DefaultClientHeader,
		ips:          clientip.NewResolver(),
		fingerprints: fingerprint.NewGenerator(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	h.routes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(h.ips.Middleware)
	r.Use(h.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(h.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(h.log, h.ready...))
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Route("/v1/visits", func(r chi.Router) {
		r.Post("/", h.createVisit)
		r.With(fingerprint.Middleware(h.fingerprints, h.originHeader, h.clientHeader)).Get("/current", h.currentVisit)
		r.Get("/{fingerprint}", h.getVisit)
	})

	h.router = r
}

func (h *Handler) createVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.log.WarnContext(r.Context(), "invalid visit request", logger.Error(err))
		writeError(w, http.StatusBadRequest, "validation_error", "malformed JSON body")
		return
	}

	ev := req.event(r, clientip.FromContext(r.Context()), h.originHeader, h.clientHeader)
	rec, err := h.visits.Ingest(r.Context(), ev)
	switch {
	case errors.Is(err, traffic.ErrMissingOrigin):
		writeError(w, http.StatusBadRequest, "missing_origin", "origin host is required")
		return
	case err != nil:
		// the service has already logged the cause
		writeError(w, http.StatusInternalServerError, "internal_error", "visit could not be recorded")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) getVisit(w http.ResponseWriter, r *http.Request) {
	fp := chi.URLParam(r, "fingerprint")
	if !fingerprintPattern.MatchString(fp) {
		writeError(w, http.StatusBadRequest, "invalid_fingerprint", "fingerprint must be 64 lowercase hex characters")
		return
	}
	h.resolve(w, r, fp)
}

func (h *Handler) currentVisit(w http.ResponseWriter, r *http.Request) {
	fp, ok := fingerprint.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing_origin", "origin host is required")
		return
	}
	h.resolve(w, r, fp)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, fp string) {
	rec, err := h.visits.Resolve(r.Context(), fp)
	switch {
	case errors.Is(err, traffic.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "not_found", "no traffic record for fingerprint")
	case errors.Is(err, traffic.ErrBotTraffic):
		writeError(w, http.StatusForbidden, "bot_traffic", "traffic record is classified as bot")
	case err != nil:
		h.log.ErrorContext(r.Context(), "failed to resolve traffic record", logger.Fingerprint(fp), logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "")
	default:
		writeJSON(w, http.StatusOK, rec)
	}
}

func (h *Handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// RequestIDExtractor adds the chi request id to log records.
func RequestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	id := middleware.GetReqID(ctx)
	return logger.RequestID(id), id != ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
