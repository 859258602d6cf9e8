package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/landingkit/trafficid/internal/traffic"
)

// VisitRequest is the body of POST /v1/visits. Fields left empty fall back
// to the corresponding properties of the HTTP request itself.
type VisitRequest struct {
	UserAgent  string            `json:"user_agent"`
	IP         string            `json:"ip"`
	OriginHost string            `json:"origin_host"`
	Path       string            `json:"path"`
	Referrer   string            `json:"referrer"`
	Query      string            `json:"query"` // raw query string of the landing URL
	Sub1       string            `json:"s1"`
	Sub2       string            `json:"s2"`
	Sub3       string            `json:"s3"`
	Sub4       string            `json:"s4"`
	IsBot      *bool             `json:"is_bot"`
	Headers    map[string]string `json:"headers"` // visitor request headers, used for bot detection
	Timestamp  int64             `json:"timestamp"` // unix seconds; zero means now
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (v VisitRequest) event(r *http.Request, ip, originHeader, clientHeader string) traffic.VisitEvent {
	ev := traffic.VisitEvent{
		UserAgent:  first(v.UserAgent, r.UserAgent()),
		IP:         first(v.IP, ip),
		OriginHost: first(v.OriginHost, r.Header.Get(originHeader)),
		Client:     r.Header.Get(clientHeader),
		Path:       v.Path,
		Referrer:   first(v.Referrer, r.Referer()),
		Sub1:       v.Sub1,
		Sub2:       v.Sub2,
		Sub3:       v.Sub3,
		Sub4:       v.Sub4,
		IsBot:      v.IsBot,
		Headers:    r.Header,
	}

	// malformed pairs are dropped, the rest is kept
	ev.Query, _ = url.ParseQuery(strings.TrimPrefix(v.Query, "?"))
	if len(v.Headers) > 0 {
		ev.Headers = make(http.Header, len(v.Headers))
		for k, val := range v.Headers {
			ev.Headers.Set(k, val)
		}
	}
	if v.Timestamp > 0 {
		ev.At = time.Unix(v.Timestamp, 0)
	}
	return ev
}

func first(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
