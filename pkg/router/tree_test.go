package router

import "testing"

func mustParseAll(t *testing.T, decls []Declaration) []parsedDecl {
	t.Helper()
	o := defaultOptions()
	parsed, diags := parseAll(decls, &o)
	if len(diags) > 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	return parsed
}

func TestBuildTreeAttachesRoutesAndMiddleware(t *testing.T) {
	parsed := mustParseAll(t, []Declaration{
		{Name: "index.get.go"},
		{Name: "_middleware.go", Middleware: &MiddlewareSpec{}},
		{Dir: "api", Name: "users.get.go"},
		{Dir: "api/users", Name: "[id].get.go"},
	})

	root, diags := buildTree(parsed)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if len(root.routes) != 1 {
		t.Errorf("root routes = %d, want 1", len(root.routes))
	}
	if root.mw == nil {
		t.Error("root middleware missing")
	}

	api := root.children["api"]
	if api == nil {
		t.Fatal("api scope missing")
	}
	if len(api.routes) != 1 || api.routes[0].Segment != "users" {
		t.Errorf("api scope routes wrong: %+v", api.routes)
	}
	users := api.children["users"]
	if users == nil || len(users.routes) != 1 || !users.routes[0].IsDynamic {
		t.Error("api/users scope missing its dynamic route")
	}
}

func TestBuildTreeDuplicateMiddleware(t *testing.T) {
	parsed := mustParseAll(t, []Declaration{
		{Dir: "api", Name: "users.get.go"},
		{Dir: "api", Name: "_middleware.go", Middleware: &MiddlewareSpec{}},
		{Dir: "api", Name: "_middleware.go", Middleware: &MiddlewareSpec{Mode: ModeOverride}},
	})

	_, diags := buildTree(parsed)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(diags))
	}
	d := diags[0]
	if d.Kind != ErrDuplicateMiddleware {
		t.Errorf("kind = %s, want %s", d.Kind, ErrDuplicateMiddleware)
	}
	if d.Path != "/api" {
		t.Errorf("path = %q, want /api", d.Path)
	}
	if len(d.Files) != 2 {
		t.Errorf("files = %v, want both declarations", d.Files)
	}
}

func TestBuildTreePrunesRoutelessSubtrees(t *testing.T) {
	parsed := mustParseAll(t, []Declaration{
		{Name: "index.get.go"},
		// Middleware-only directory: no route-bearing descendants.
		{Dir: "drafts", Name: "_middleware.go", Middleware: &MiddlewareSpec{}},
		{Dir: "api", Name: "health.get.go"},
	})

	root, diags := buildTree(parsed)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if _, ok := root.children["drafts"]; ok {
		t.Error("routeless scope drafts survived pruning")
	}
	if _, ok := root.children["api"]; !ok {
		t.Error("route-bearing scope api was pruned")
	}
}
