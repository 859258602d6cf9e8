package fingerprint

import (
	"net/http"
	"time"

	"github.com/landingkit/trafficid/pkg/clientip"
)

// DefaultOriginHeader carries the landing page host.
const DefaultOriginHeader = "X-Origin-Host"

// DefaultClientHeader carries the caller's client identifier.
const DefaultClientHeader = "X-Client"

// Middleware stores the visitor fingerprint of each request in its context.
// The origin host is read from originHeader and the client identifier from
// clientHeader; empty names fall back to DefaultOriginHeader and
// DefaultClientHeader. The client IP set by clientip.Middleware is preferred
// over resolving it again. Requests whose origin cannot be resolved pass
// through without a fingerprint.
func Middleware(g *Generator, originHeader, clientHeader string) func(http.Handler) http.Handler {
	if originHeader == "" {
		originHeader = DefaultOriginHeader
	}
	if clientHeader == "" {
		clientHeader = DefaultClientHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.FromContext(r.Context())
			if ip == "" {
				ip = clientip.GetIP(r)
			}
			fp, err := g.Generate(r.UserAgent(), ip, r.Header.Get(originHeader), r.Header.Get(clientHeader), time.Now())
			if err == nil {
				r = r.WithContext(WithContext(r.Context(), fp))
			}
			next.ServeHTTP(w, r)
		})
	}
}
