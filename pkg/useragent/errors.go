package useragent

import "errors"

// Parse errors. Each is returned alongside a usable, partially filled UserAgent.
var (
	ErrEmptyUserAgent     = errors.New("useragent: empty string")
	ErrMalformedUserAgent = errors.New("useragent: no recognizable product tokens")
	ErrUnknownDevice      = errors.New("useragent: device type not recognized")
)
