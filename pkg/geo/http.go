package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// IPPlaceholder is replaced by the looked-up address in the endpoint template.
const IPPlaceholder = "{ip}"

// HTTPProvider queries a JSON geolocation endpoint. The response must carry
// country, region, city and postal fields, which is the ipinfo.io shape.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
	headers  http.Header
}

// HTTPOption configures an HTTPProvider.
type HTTPOption func(*HTTPProvider)

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(p *HTTPProvider) {
		if c != nil {
			p.client = c
		}
	}
}

// WithToken sends a bearer token with each request.
func WithToken(token string) HTTPOption {
	return func(p *HTTPProvider) {
		if token != "" {
			p.headers.Set("Authorization", "Bearer "+token)
		}
	}
}

// NewHTTPProvider creates a provider for an endpoint template containing
// IPPlaceholder, e.g. "https://ipinfo.io/{ip}/json".
func NewHTTPProvider(endpoint string, opts ...HTTPOption) *HTTPProvider {
	p := &HTTPProvider{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		headers: http.Header{"Accept": []string{"application/json"}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lookup requests the location of ip. Non-public addresses are rejected
// without a request.
func (p *HTTPProvider) Lookup(ctx context.Context, ip string) (Location, error) {
	addr, err := ParsePublicIP(ip)
	if err != nil {
		return Location{}, err
	}

	target := strings.ReplaceAll(p.endpoint, IPPlaceholder, url.PathEscape(addr.String()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	for k, v := range p.headers {
		req.Header[k] = v
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return Location{}, fmt.Errorf("%w: unexpected status %d", ErrLookupFailed, resp.StatusCode)
	}

	var loc Location
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&loc); err != nil {
		return Location{}, fmt.Errorf("%w: decode response: %w", ErrLookupFailed, err)
	}
	if loc.IsZero() {
		return Location{}, fmt.Errorf("%w: empty response", ErrLookupFailed)
	}
	return loc, nil
}
