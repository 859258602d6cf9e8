// Package traffic turns landing-page visit events into deduplicated traffic
// records.
//
// Service.Ingest computes the visitor fingerprint and either increments the
// visit count of the existing record or classifies the visit (bot detection,
// device parsing, click id, paid campaign, referrer cascade, geolocation) and
// persists a new record with a visit count of one. Attribution is captured on
// the first visit and never rewritten.
//
// Uniqueness is enforced by the Storage implementation, not by the service:
// when two first visits race, the losing Create returns
// ErrDuplicateFingerprint and the service falls back to IncrementVisits.
//
// Service.Resolve is the read path for consumers that create dependent
// records; it rejects bot-classified records with ErrBotTraffic.
package traffic
