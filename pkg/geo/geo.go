package geo

import (
	"context"
	"net/netip"
	"strings"
)

// Location is the geolocation snapshot stored with a traffic record.
type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
	Postal  string `json:"postal"`
}

// Unknown is the value used for every field of DefaultLocation.
const Unknown = "Unknown"

// DefaultLocation is returned when a lookup fails or times out.
var DefaultLocation = Location{Country: Unknown, Region: Unknown, City: Unknown, Postal: Unknown}

// IsZero reports whether no field is set.
func (l Location) IsZero() bool {
	return l == Location{}
}

// Provider looks an IP address up.
type Provider interface {
	Lookup(ctx context.Context, ip string) (Location, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, ip string) (Location, error)

func (f ProviderFunc) Lookup(ctx context.Context, ip string) (Location, error) {
	return f(ctx, ip)
}

// ParsePublicIP parses ip and rejects private, loopback, link-local and
// unspecified addresses, which no provider can locate.
func ParsePublicIP(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return netip.Addr{}, ErrInvalidIP
	}
	addr = addr.Unmap()
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() || addr.IsUnspecified() || addr.IsMulticast() {
		return addr, ErrNonPublicIP
	}
	return addr, nil
}
