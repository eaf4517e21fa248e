package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws with the first one outermost: Chain(a, b)(h) is
// a(b(h)). Nil entries are skipped, so optional middleware such as a
// disabled rate limit can be passed as nil.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				h = mws[i](h)
			}
		}
		return h
	}
}

// Wrap builds a per-route handler: fn behind Chain(mws...).
func Wrap(fn http.HandlerFunc, mws ...Middleware) http.Handler {
	return Chain(mws...)(fn)
}
