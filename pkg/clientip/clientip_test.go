package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/landingkit/trafficid/pkg/clientip"
)

func newRequest(headers map[string]string, remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/visits", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "CF-Connecting-IP wins",
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.195",
				"True-Client-IP":   "198.51.100.178",
				"X-Forwarded-For":  "192.0.2.1",
			},
			remoteAddr: "172.16.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name: "True-Client-IP before X-Forwarded-For",
			headers: map[string]string{
				"True-Client-IP":  "198.51.100.178",
				"X-Forwarded-For": "192.0.2.1",
			},
			remoteAddr: "172.16.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "first valid X-Forwarded-For entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 192.0.2.7, 10.0.0.1"},
			remoteAddr: "172.16.0.1:54321",
			expected:   "192.0.2.7",
		},
		{
			name:       "invalid headers fall through to RemoteAddr",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "X-Real-IP": "999.1.1.1"},
			remoteAddr: "172.16.0.1:54321",
			expected:   "172.16.0.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.10",
			expected:   "192.0.2.10",
		},
		{
			name:       "nothing parses",
			remoteAddr: "unknown",
			expected:   "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, clientip.GetIP(newRequest(tc.headers, tc.remoteAddr)))
		})
	}
}

func TestResolverCustomChain(t *testing.T) {
	t.Parallel()

	rs := clientip.NewResolver("fastly-client-ip")
	req := newRequest(map[string]string{
		"Fastly-Client-IP": "198.51.100.9",
		"CF-Connecting-IP": "203.0.113.195",
	}, "10.0.0.1:1234")

	assert.Equal(t, "198.51.100.9", rs.GetIP(req))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var captured string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = clientip.FromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), newRequest(map[string]string{"X-Real-IP": "192.0.2.44"}, "10.0.0.1:1234"))
	assert.Equal(t, "192.0.2.44", captured)
}
