package clientip

import "net/http"

// Middleware stores the client IP resolved with the default chain in the request context.
func Middleware(next http.Handler) http.Handler {
	return defaultResolver.Middleware(next)
}

// Middleware stores the client IP resolved by rs in the request context.
func (rs *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), rs.GetIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
