// Package serve mounts a resolved route table onto a chi router.
//
// The route table is the source of truth: serve only translates
// patterns into chi's syntax, registers the composed handler chains,
// and exposes path parameters through Params. Precedence, conflict
// detection, and middleware resolution all happen at build time in
// pkg/router.
package serve

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/routewind-dev/routewind/pkg/router"
)

type paramsKey struct{}

// Options configure the mounted router.
type Options struct {
	// NotFound handles requests matching no route.
	NotFound http.Handler

	// MethodNotAllowed handles requests matching a pattern with a
	// different method.
	MethodNotAllowed http.Handler

	// Use is applied around every route, outside the per-route chains.
	Use []router.Middleware
}

// Mount registers every resolved route on a fresh chi router.
func Mount(routes []router.ResolvedRoute, opts *Options) chi.Router {
	mux := chi.NewRouter()
	if opts != nil {
		if opts.NotFound != nil {
			mux.NotFound(opts.NotFound.ServeHTTP)
		}
		if opts.MethodNotAllowed != nil {
			mux.MethodNotAllowed(opts.MethodNotAllowed.ServeHTTP)
		}
		for _, mw := range opts.Use {
			mux.Use(mw)
		}
	}

	for _, rt := range routes {
		h := withPattern(rt.Pattern, router.Compose(rt.Chain, withParams(rt, rt.Handler)))
		mux.Method(rt.Method, chiPattern(rt.Pattern), h)
	}
	return mux
}

// Handler is Mount with default options.
func Handler(routes []router.ResolvedRoute) http.Handler {
	return Mount(routes, nil)
}

// Params returns the path parameters extracted for the matched route.
// Returns nil for handlers not mounted through this package.
func Params(r *http.Request) map[string]string {
	p, _ := r.Context().Value(paramsKey{}).(map[string]string)
	return p
}

// Param returns one path parameter, or "" if absent.
func Param(r *http.Request, name string) string {
	return Params(r)[name]
}

// withPattern tags the request context with the matched pattern so
// instrumentation middleware inside the chain can label by route.
func withPattern(pattern string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := router.WithRoutePattern(r.Context(), pattern)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withParams copies chi's URL parameters into a map keyed by the
// route's declared names before invoking the handler.
func withParams(rt router.ResolvedRoute, next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	if len(rt.Params) == 0 {
		return next
	}
	catchAll := strings.Contains(rt.Pattern, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(rt.Params))
		for i, name := range rt.Params {
			if catchAll && i == len(rt.Params)-1 {
				rest := chi.URLParam(r, "*")
				if rest == "" {
					// The table requires at least one component
					// after a catch-all prefix.
					http.NotFound(w, r)
					return
				}
				params[name] = rest
				continue
			}
			params[name] = chi.URLParam(r, name)
		}
		ctx := context.WithValue(r.Context(), paramsKey{}, params)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// chiPattern converts table notation to chi's placeholder syntax:
// /users/:id becomes /users/{id}, /docs/*slug becomes /docs/*.
func chiPattern(pattern string) string {
	if pattern == "/" {
		return "/"
	}
	parts := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	for i, p := range parts {
		switch {
		case strings.HasPrefix(p, ":"):
			parts[i] = "{" + p[1:] + "}"
		case strings.HasPrefix(p, "*"):
			parts[i] = "*"
		}
	}
	return "/" + strings.Join(parts, "/")
}
