// Package middleware provides ready-made instrumentation middleware
// compatible with the router's Middleware type.
//
// Both middlewares label by resolved route pattern when mounted through
// pkg/serve, falling back to the raw request path otherwise. Register
// them in a scope's MiddlewareSpec or in serve.Options.Use:
//
//	serve.Mount(routes, &serve.Options{
//	    Use: []router.Middleware{
//	        middleware.Prometheus(),
//	        middleware.OpenTelemetry(),
//	    },
//	})
package middleware
