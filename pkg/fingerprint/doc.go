// Package fingerprint derives deterministic visitor identities for landing-page traffic.
//
// The primary identity is a per-visitor-per-day hash: SHA-256 over
// "userAgent|ip|host|yyyy-mm-dd", hex-encoded to 64 lowercase characters.
// The same (user agent, IP, origin host, UTC calendar day) always yields the
// same value, and the value rotates at midnight UTC. It is used as the unique
// key of a traffic record.
//
// Two auxiliary identities are also provided:
//
//   - Simple – a coarser MD5 hash over a version-masked user agent, an IP
//     truncated to its /24 (IPv4) or /48 (IPv6) prefix and the host, with no
//     day component. Useful for cross-day heuristics.
//   - Temporal – a SHA-256 hash bucketed into fixed time windows (five minutes
//     by default) for short-lived duplicate suppression.
//
// Neither auxiliary hash is suitable as a record key.
//
// # Origin host
//
// The origin host is mandatory. Generate returns ErrMissingOrigin when the
// normalized host is empty. A Generator can whitelist internal test clients:
// such clients may omit the origin and are mapped to a fixed literal host.
//
//	gen := fingerprint.NewGenerator(fingerprint.WithInternalClient("qa-suite"))
//	fp, err := gen.Generate(ua, ip, "", "qa-suite", time.Now())
//
// # Middleware
//
// Middleware computes the fingerprint of an incoming request and stores it in
// the request context, retrievable with FromContext.
package fingerprint
