// Package clientip resolves the visitor's IP address for an incoming visit
// submission when the service runs behind CDNs and reverse proxies.
//
// Headers are examined in a declared order and the first valid address wins.
// The default chain is:
//
//  1. CF-Connecting-IP – Cloudflare
//  2. True-Client-IP   – Akamai / Cloudflare Enterprise
//  3. X-Forwarded-For  – first valid entry of the comma-separated list
//  4. X-Real-IP        – Nginx
//  5. RemoteAddr       – TCP peer, always the last resort
//
// A Resolver with a different chain can be built with NewResolver. GetIP uses
// the default chain. Middleware stores the resolved address in the request
// context for later retrieval via FromContext.
//
// Only trust these headers when the proxies in front of the service overwrite
// them; otherwise a client can spoof its address.
package clientip
