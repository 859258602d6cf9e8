package clientip

import (
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// DefaultHeaders is the header chain used by GetIP.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"True-Client-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts a client IP from a request using an ordered header chain.
type Resolver struct {
	headers []string
}

// NewResolver builds a Resolver. With no headers, DefaultHeaders is used.
func NewResolver(headers ...string) *Resolver {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	canonical := make([]string, 0, len(headers))
	for _, h := range headers {
		if h = strings.TrimSpace(h); h != "" {
			canonical = append(canonical, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return &Resolver{headers: canonical}
}

var defaultResolver = NewResolver()

// GetIP returns the client IP of the request using the default header chain.
func GetIP(r *http.Request) string {
	return defaultResolver.GetIP(r)
}

// GetIP returns the first valid IP from the header chain, falling back to
// RemoteAddr. Returns an empty string when nothing parses.
func (rs *Resolver) GetIP(r *http.Request) string {
	for _, h := range rs.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// X-Forwarded-For and friends may carry a proxy chain.
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
