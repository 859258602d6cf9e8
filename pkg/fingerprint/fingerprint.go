package fingerprint

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"regexp"
	"strings"
	"time"
)

const (
	// DayLayout is the calendar-day component of the primary fingerprint.
	DayLayout = "2006-01-02"

	// DefaultInternalHost is the literal host assigned to whitelisted internal clients.
	DefaultInternalHost = "internal.test"

	// DefaultWindow is the bucket size used by Temporal when none is given.
	DefaultWindow = 5 * time.Minute
)

var versionPattern = regexp.MustCompile(`\d+(\.\d+)*`)

// Generate returns the per-day visitor fingerprint: 64 lowercase hex characters.
// The day is taken in UTC.
func Generate(userAgent, ip, originHost string, day time.Time) (string, error) {
	host := NormalizeHost(originHost)
	if host == "" {
		return "", ErrMissingOrigin
	}
	return hash(userAgent, ip, host, day.UTC().Format(DayLayout)), nil
}

// Simple returns a coarse 32-character identity with no day component.
// Version numbers in the user agent are masked and the IP is truncated to its
// network prefix, so minor browser upgrades and DHCP churn map to one value.
func Simple(userAgent, ip, originHost string) string {
	ua := versionPattern.ReplaceAllString(strings.ToLower(userAgent), "x")
	sum := md5.Sum([]byte(strings.Join([]string{ua, truncateIP(ip), NormalizeHost(originHost)}, "|")))
	return hex.EncodeToString(sum[:])
}

// Temporal returns a fingerprint bucketed into fixed windows of the given size.
// Two visits inside the same window share the value. Windows shorter than a
// minute fall back to DefaultWindow; windows of an hour or more floor to the hour.
func Temporal(userAgent, ip, originHost string, at time.Time, window time.Duration) string {
	if window < time.Minute {
		window = DefaultWindow
	}

	at = at.UTC()
	minute := 0
	if window < time.Hour {
		step := int(window / time.Minute)
		minute = (at.Minute() / step) * step
	}
	bucket := time.Date(at.Year(), at.Month(), at.Day(), at.Hour(), minute, 0, 0, time.UTC)

	return hash(userAgent, ip, NormalizeHost(originHost), bucket.Format("2006-01-02T15:04"))
}

// NormalizeHost reduces a host, origin or URL to a bare lowercase host:
// scheme, path, query and fragment are stripped along with a leading "www.".
func NormalizeHost(raw string) string {
	host := strings.ToLower(strings.TrimSpace(raw))
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	host = strings.TrimPrefix(host, "www.")
	return strings.TrimSuffix(host, ".")
}

func hash(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// truncateIP keeps the /24 of an IPv4 address or the /48 of an IPv6 address.
// Unparseable input is returned unchanged.
func truncateIP(raw string) string {
	ip := net.ParseIP(strings.TrimSpace(raw))
	if ip == nil {
		return raw
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return ip.Mask(net.CIDRMask(48, 128)).String()
}
