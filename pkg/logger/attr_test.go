package logger_test

import (
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/landingkit/trafficid/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	attr := logger.RequestID("abc")
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestFingerprint(t *testing.T) {
	t.Parallel()

	fp := strings.Repeat("ab", 32)
	attr := logger.Fingerprint(fp)
	assert.Equal(t, "fingerprint", attr.Key)
	assert.Equal(t, fp[:12], attr.Value.String())

	assert.Equal(t, "short", logger.Fingerprint("short").Value.String())
}

func TestAttribution(t *testing.T) {
	t.Parallel()

	attr := logger.Attribution("organic", "google")
	require.Equal(t, "attribution", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "organic", g[0].Value.String())
	assert.Equal(t, "google", g[1].Value.String())
}

func TestScalarAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ingest", logger.Component("ingest").Value.String())
	assert.Equal(t, "created", logger.Outcome("created").Value.String())
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
}
