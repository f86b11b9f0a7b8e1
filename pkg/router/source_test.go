package router

import (
	"net/http"
	"testing"
	"testing/fstest"
)

func TestDirSourceDeclarations(t *testing.T) {
	fsys := fstest.MapFS{
		"index.get.go":            {Data: []byte("-")},
		"_middleware.go":          {Data: []byte("-")},
		"api/users.get.go":        {Data: []byte("-")},
		"api/users/[id].get.go":   {Data: []byte("-")},
		"api/_middleware.go":      {Data: []byte("-")},
		"posts/[...slug].get.go":  {Data: []byte("-")},
		"README.md":               {Data: []byte("-")},
		".hidden.get.go":          {Data: []byte("-")},
		"_helpers.go":             {Data: []byte("-")},
		"_vendor/skipped.get.go":  {Data: []byte("-")},
		".cache/skipped.get.go":   {Data: []byte("-")},
		"api/users/notes.junk":    {Data: []byte("-")},
		"api/users/index.post.go": {Data: []byte("-")},
	}

	reg := &HandlerRegistry{
		Routes: map[string]http.Handler{
			"api/users/[id].get.go": okHandler(),
		},
		Middleware: map[string]MiddlewareSpec{
			"api": {Mode: ModeOverride},
		},
	}

	src := NewDirSource(fsys, reg)
	decls, err := src.Declarations()
	if err != nil {
		t.Fatal(err)
	}

	got := make([]string, 0, len(decls))
	for _, d := range decls {
		got = append(got, declPath(d.Dir, d.Name))
	}
	// fs.WalkDir order: lexical, directories interleaved with files.
	want := []string{
		"_middleware.go",
		"api/_middleware.go",
		"api/users/[id].get.go",
		"api/users/index.post.go",
		"api/users.get.go",
		"index.get.go",
		"posts/[...slug].get.go",
	}
	if !equalStrings(got, want) {
		t.Fatalf("declarations = %v, want %v", got, want)
	}

	for _, d := range decls {
		switch declPath(d.Dir, d.Name) {
		case "api/users/[id].get.go":
			if d.Handler == nil {
				t.Error("registry handler not attached")
			}
		case "api/_middleware.go":
			if d.Middleware == nil || d.Middleware.Mode != ModeOverride {
				t.Error("registry middleware spec not attached")
			}
		case "_middleware.go":
			if d.Middleware != nil {
				t.Error("unregistered middleware must stay nil")
			}
		}
	}
}

func TestDirSourceBuildEndToEnd(t *testing.T) {
	fsys := fstest.MapFS{
		"index.get.go":           {Data: []byte("-")},
		"users/[id].get.go":      {Data: []byte("-")},
		"posts/[...slug].get.go": {Data: []byte("-")},
	}

	routes, err := Build(NewDirSource(fsys, nil))
	if err != nil {
		t.Fatal(err)
	}

	patterns := make(map[string]bool)
	for _, r := range routes {
		patterns[r.Method+" "+r.Pattern] = true
	}
	for _, want := range []string{"GET /", "GET /users/:id", "GET /posts/*slug"} {
		if !patterns[want] {
			t.Errorf("missing route %q in %v", want, patterns)
		}
	}
}

func TestManifestSortsDeclarations(t *testing.T) {
	m := &Manifest{}
	m.Route("zeta.get.go", nil)
	m.Route("alpha.get.go", nil)
	m.Route("api/users.get.go", nil)

	decls, err := m.Declarations()
	if err != nil {
		t.Fatal(err)
	}
	got := make([]string, 0, len(decls))
	for _, d := range decls {
		got = append(got, declPath(d.Dir, d.Name))
	}
	want := []string{"alpha.get.go", "zeta.get.go", "api/users.get.go"}
	if !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}
