package fingerprint

import "errors"

// ErrMissingOrigin is returned when a visit carries no origin host and the
// caller is not a whitelisted internal client.
var ErrMissingOrigin = errors.New("missing origin host")
