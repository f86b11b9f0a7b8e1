package router

import (
	"context"
	"net/http"
)

// Compose wraps handler with the chain in root-to-leaf order: chain[0]
// executes outermost.
func Compose(chain []Middleware, handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(chain) - 1; i >= 0; i-- {
		wrapped = chain[i](wrapped)
	}
	return wrapped
}

// Chain merges multiple middleware into one, preserving order.
func Chain(mw ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		return Compose(mw, next)
	}
}

type routePatternKey struct{}

// WithRoutePattern returns a copy of ctx carrying the matched route
// pattern. Adapters set this before running a route's chain so that
// instrumentation middleware can label by pattern instead of raw path.
func WithRoutePattern(ctx context.Context, pattern string) context.Context {
	return context.WithValue(ctx, routePatternKey{}, pattern)
}

// RoutePattern returns the matched route pattern from ctx, or "".
func RoutePattern(ctx context.Context) string {
	p, _ := ctx.Value(routePatternKey{}).(string)
	return p
}
