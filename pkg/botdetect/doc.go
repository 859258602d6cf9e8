// Package botdetect decides whether a visit came from a bot or crawler.
//
// Classification runs an ordered list of stages and stops at the first stage
// that reaches a verdict:
//
//  1. MissingUserAgent – an empty user agent is a crawler.
//  2. SignatureDatabase – the useragent signature table (name and category).
//  3. CrawlerPatterns – an independent list of crawler, automation and HTTP
//     library patterns, consulted only when the signature table has no match.
//  4. RequiredHeaders – real browsers always send Accept and Accept-Language.
//
// A visit that passes every stage is not a bot.
//
// WithDetectionDisabled forces every visit to be classified as human. It is a
// switch for local development and test traffic, not a security control, and
// is injected from configuration rather than read from the environment.
package botdetect
