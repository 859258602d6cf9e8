package geo

import "errors"

var (
	ErrInvalidIP     = errors.New("geo: invalid ip address")
	ErrNonPublicIP   = errors.New("geo: ip address is not publicly routable")
	ErrLookupFailed  = errors.New("geo: lookup failed")
	ErrLookupTimeout = errors.New("geo: lookup timed out")
	ErrCacheFailure  = errors.New("geo: cache failure")
)
