package fingerprint

import "context"

type ctxKey struct{}

// WithContext returns a copy of ctx carrying fp.
func WithContext(ctx context.Context, fp string) context.Context {
	return context.WithValue(ctx, ctxKey{}, fp)
}

// FromContext returns the fingerprint stored by WithContext or Middleware.
func FromContext(ctx context.Context) (string, bool) {
	fp, ok := ctx.Value(ctxKey{}).(string)
	return fp, ok && fp != ""
}
