package traffic

import (
	"errors"

	"github.com/landingkit/trafficid/pkg/fingerprint"
)

var (
	// ErrMissingOrigin is returned when a visit has no origin host and the
	// client is not whitelisted.
	ErrMissingOrigin = fingerprint.ErrMissingOrigin

	ErrIngestionFailed      = errors.New("traffic ingestion failed")
	ErrDuplicateFingerprint = errors.New("traffic record with this fingerprint already exists")
	ErrRecordNotFound       = errors.New("traffic record not found")
	ErrBotTraffic           = errors.New("traffic record is classified as bot")
)
