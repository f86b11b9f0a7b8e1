package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// tagMiddleware records its tag when the request passes through it.
func tagMiddleware(tag string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, tag)
			next.ServeHTTP(w, r)
		})
	}
}

// runChain composes the chain over a terminal handler and returns the
// order the request passed through, terminal handler included.
func runChain(t *testing.T, chain []Middleware, trace *[]string) []string {
	t.Helper()
	*trace = nil
	h := Compose(chain, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*trace = append(*trace, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	return *trace
}

func chainFor(t *testing.T, routes []ResolvedRoute, pattern string) []Middleware {
	t.Helper()
	for _, r := range routes {
		if r.Pattern == pattern {
			return r.Chain
		}
	}
	t.Fatalf("no route with pattern %q", pattern)
	return nil
}

func TestOverlayAppendsToInheritedChain(t *testing.T) {
	var trace []string

	m := &Manifest{}
	m.Middleware("", MiddlewareSpec{Middlewares: []Middleware{tagMiddleware("A", &trace)}})
	m.Middleware("api", MiddlewareSpec{Mode: ModeOverlay, Middlewares: []Middleware{tagMiddleware("B", &trace)}})
	m.Route("index.get.go", nil)
	m.Route("api/users.get.go", nil)

	routes, err := Build(m)
	if err != nil {
		t.Fatal(err)
	}

	got := runChain(t, chainFor(t, routes, "/api/users"), &trace)
	want := []string{"A", "B", "handler"}
	if !equalStrings(got, want) {
		t.Errorf("leaf chain order = %v, want %v", got, want)
	}

	got = runChain(t, chainFor(t, routes, "/"), &trace)
	if !equalStrings(got, []string{"A", "handler"}) {
		t.Errorf("root chain order = %v, want [A handler]", got)
	}
}

func TestOverrideReplacesInheritedChain(t *testing.T) {
	var trace []string

	m := &Manifest{}
	m.Middleware("", MiddlewareSpec{Middlewares: []Middleware{tagMiddleware("A", &trace)}})
	m.Middleware("api", MiddlewareSpec{Middlewares: []Middleware{tagMiddleware("B", &trace)}})
	m.Middleware("api/public", MiddlewareSpec{
		Mode:        ModeOverride,
		Middlewares: []Middleware{tagMiddleware("C", &trace)},
	})
	m.Route("api/users.get.go", nil)
	m.Route("api/public/health.get.go", nil)

	routes, err := Build(m)
	if err != nil {
		t.Fatal(err)
	}

	got := runChain(t, chainFor(t, routes, "/api/public/health"), &trace)
	if !equalStrings(got, []string{"C", "handler"}) {
		t.Errorf("override chain = %v, want [C handler]", got)
	}

	got = runChain(t, chainFor(t, routes, "/api/users"), &trace)
	if !equalStrings(got, []string{"A", "B", "handler"}) {
		t.Errorf("sibling chain = %v, want [A B handler]; override must not leak to siblings", got)
	}
}

func TestScopeWithoutSpecPassesChainThrough(t *testing.T) {
	var trace []string

	m := &Manifest{}
	m.Middleware("", MiddlewareSpec{Middlewares: []Middleware{tagMiddleware("A", &trace)}})
	m.Route("api/v1/users.get.go", nil)

	routes, err := Build(m)
	if err != nil {
		t.Fatal(err)
	}

	got := runChain(t, chainFor(t, routes, "/api/v1/users"), &trace)
	if !equalStrings(got, []string{"A", "handler"}) {
		t.Errorf("pass-through chain = %v, want [A handler]", got)
	}
}

func TestDescendantMiddlewareDoesNotAffectAncestors(t *testing.T) {
	var trace []string

	m := &Manifest{}
	m.Middleware("api", MiddlewareSpec{Middlewares: []Middleware{tagMiddleware("B", &trace)}})
	m.Route("index.get.go", nil)
	m.Route("api/users.get.go", nil)

	routes, err := Build(m)
	if err != nil {
		t.Fatal(err)
	}

	if got := runChain(t, chainFor(t, routes, "/"), &trace); !equalStrings(got, []string{"handler"}) {
		t.Errorf("root chain = %v, want [handler]", got)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
