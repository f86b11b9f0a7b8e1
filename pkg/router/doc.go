// Package router resolves a tree of file-convention route declarations
// into an ordered, conflict-free HTTP dispatch table.
//
// The router provides:
//   - Declaration-name parsing (<name>.<method>.<ext> convention)
//   - Scope tree construction mirroring the directory hierarchy
//   - Hierarchical middleware resolution (overlay and override modes)
//   - Conflict detection across static, dynamic and catch-all segments
//   - Deterministic assembly of the final route table
//
// # File Structure Convention
//
// Routes are declared by files under a root directory:
//
//	routes/
//	├── index.get.go           → GET /
//	├── _middleware.go         → middleware for all routes
//	├── posts/
//	│   └── [...slug].get.go   → GET /posts/*slug
//	└── api/
//	    ├── _middleware.go     → middleware for /api/*
//	    ├── users.get.go       → GET /api/users
//	    └── users/
//	        └── [id].get.go    → GET /api/users/:id
//
// # Parameters
//
// Dynamic path segments are declared with brackets:
//
//	[id].get.go       → :id (matches one path component)
//	[...slug].get.go  → *slug (matches all trailing components)
//
// # Middleware
//
// A _middleware declaration attaches a MiddlewareSpec to its enclosing
// scope. In overlay mode (the default) the scope's middleware stacks on
// top of everything inherited from ancestor scopes; in override mode it
// replaces the inherited chain entirely. Chains apply root-outermost.
//
// # Usage
//
//	src := router.NewDirSource(os.DirFS("routes"), registry)
//	routes, err := router.Build(src)
//	if err != nil {
//	    var be *router.BuildError
//	    if errors.As(err, &be) {
//	        // be.Diagnostics lists every conflict from the failing stage
//	    }
//	}
//
//	table := router.NewTable(routes)
//	rt, params, ok := table.Match("GET", "/api/users/123")
//
// The pipeline runs once, synchronously; the emitted table is immutable
// and safe for unlimited concurrent readers.
package router
