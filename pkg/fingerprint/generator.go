package fingerprint

import (
	"strings"
	"time"
)

// Generator produces primary fingerprints and resolves the origin host for
// whitelisted internal clients.
type Generator struct {
	internalClients map[string]struct{}
	internalHost    string
}

// Option configures a Generator.
type Option func(*Generator)

// WithInternalClient whitelists client identifiers allowed to omit the origin host.
// Matching is case-insensitive. Empty names are ignored.
func WithInternalClient(names ...string) Option {
	return func(g *Generator) {
		for _, name := range names {
			name = strings.ToLower(strings.TrimSpace(name))
			if name != "" {
				g.internalClients[name] = struct{}{}
			}
		}
	}
}

// WithInternalHost overrides the literal host assigned to internal clients.
func WithInternalHost(host string) Option {
	return func(g *Generator) {
		if h := NormalizeHost(host); h != "" {
			g.internalHost = h
		}
	}
}

// NewGenerator creates a Generator. Without options no client is whitelisted.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		internalClients: make(map[string]struct{}),
		internalHost:    DefaultInternalHost,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// IsInternalClient reports whether the client identifier is whitelisted.
func (g *Generator) IsInternalClient(client string) bool {
	_, ok := g.internalClients[strings.ToLower(strings.TrimSpace(client))]
	return ok
}

// ResolveHost returns the normalized origin host. Whitelisted internal clients
// without an origin get the internal literal host; anyone else gets ErrMissingOrigin.
func (g *Generator) ResolveHost(originHost, client string) (string, error) {
	if host := NormalizeHost(originHost); host != "" {
		return host, nil
	}
	if g.IsInternalClient(client) {
		return g.internalHost, nil
	}
	return "", ErrMissingOrigin
}

// Generate resolves the origin host and returns the primary fingerprint.
func (g *Generator) Generate(userAgent, ip, originHost, client string, day time.Time) (string, error) {
	host, err := g.ResolveHost(originHost, client)
	if err != nil {
		return "", err
	}
	return Generate(userAgent, ip, host, day)
}
