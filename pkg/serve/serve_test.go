package serve

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/routewind-dev/routewind/pkg/router"
)

func echoParam(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(Param(r, name)))
	})
}

func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
}

func mustBuild(t *testing.T, m *router.Manifest) []router.ResolvedRoute {
	t.Helper()
	routes, err := router.Build(m)
	if err != nil {
		t.Fatal(err)
	}
	return routes
}

func TestMountDispatch(t *testing.T) {
	m := &router.Manifest{}
	m.Route("index.get.go", textHandler("home"))
	m.Route("users/[id].get.go", echoParam("id"))
	m.Route("users/[id].delete.go", textHandler("deleted"))
	m.Route("docs/[...slug].get.go", echoParam("slug"))

	h := Handler(mustBuild(t, m))

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{"GET", "/", http.StatusOK, "home"},
		{"GET", "/users/42", http.StatusOK, "42"},
		{"DELETE", "/users/42", http.StatusOK, "deleted"},
		{"GET", "/docs/guides/install", http.StatusOK, "guides/install"},
		{"POST", "/users/42", http.StatusMethodNotAllowed, ""},
		{"GET", "/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != tt.status {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, tt.status)
		}
		if tt.body != "" && rec.Body.String() != tt.body {
			t.Errorf("%s %s: body = %q, want %q", tt.method, tt.path, rec.Body.String(), tt.body)
		}
	}
}

func TestMountRunsResolvedChains(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	m := &router.Manifest{}
	m.Route("api/users.get.go", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	m.Middleware("", router.MiddlewareSpec{Middlewares: []router.Middleware{tag("root")}})
	m.Middleware("api", router.MiddlewareSpec{Middlewares: []router.Middleware{tag("api")}})

	h := Handler(mustBuild(t, m))

	req := httptest.NewRequest("GET", "/api/users", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	want := []string{"root", "api", "handler"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestMountOptions(t *testing.T) {
	var sawOuter bool
	outer := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawOuter = true
			next.ServeHTTP(w, r)
		})
	}

	m := &router.Manifest{}
	m.Route("index.get.go", textHandler("home"))

	h := Mount(mustBuild(t, m), &Options{
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
		Use: []router.Middleware{outer},
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if !sawOuter {
		t.Error("Use middleware did not run")
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/nope", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("custom NotFound status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestMountCatchAllRequiresComponent(t *testing.T) {
	m := &router.Manifest{}
	m.Route("docs/[...slug].get.go", echoParam("slug"))

	h := Handler(mustBuild(t, m))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/docs/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /docs/ status = %d, want 404", rec.Code)
	}
}

func TestMountExposesRoutePattern(t *testing.T) {
	var got string
	m := &router.Manifest{}
	m.Route("users/[id].get.go", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = router.RoutePattern(r.Context())
	}))

	h := Handler(mustBuild(t, m))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/users/7", nil))

	if got != "/users/:id" {
		t.Errorf("route pattern = %q, want /users/:id", got)
	}
}

func TestChiPattern(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "/"},
		{"/users", "/users"},
		{"/users/:id", "/users/{id}"},
		{"/users/:id/posts/:postId", "/users/{id}/posts/{postId}"},
		{"/docs/*slug", "/docs/*"},
	}
	for _, tt := range tests {
		if got := chiPattern(tt.in); got != tt.want {
			t.Errorf("chiPattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParamsOutsideMount(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if Params(req) != nil {
		t.Error("Params on an unmounted request should be nil")
	}
}
