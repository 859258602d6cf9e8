// Package api is the HTTP boundary of the traffic service.
//
//	POST /v1/visits                 record a landing-page visit
//	GET  /v1/visits/current         the calling visitor's record for today
//	GET  /v1/visits/{fingerprint}   a record by fingerprint (403 for bots)
//	GET  /healthz, /readyz          probes
//	GET  /metrics                   Prometheus exposition, when configured
package api
