package router

import (
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
)

// Declaration is one declared route or middleware entry: a name and its
// position in the hierarchy, plus the opaque payload the core passes
// through untouched.
type Declaration struct {
	// Dir is the slash-separated directory position relative to the
	// root. Empty for the root directory itself.
	Dir string

	// Name is the declaration file name, e.g. "[id].get.go".
	Name string

	// Handler is the opaque handler reference for route declarations.
	Handler http.Handler

	// Middleware is the spec carried by middleware declarations.
	Middleware *MiddlewareSpec
}

// Source supplies an ordered collection of declarations to the build
// pipeline. The core never inspects declaration contents beyond names.
type Source interface {
	Declarations() ([]Declaration, error)
}

// Manifest is an explicit, registration-based Source.
// The zero value is ready to use.
type Manifest struct {
	decls []Declaration
}

// Add appends a raw declaration.
func (m *Manifest) Add(d Declaration) {
	m.decls = append(m.decls, d)
}

// Route registers a route declaration by its full declaration path,
// e.g. "api/users/[id].get.go".
func (m *Manifest) Route(declPath string, h http.Handler) {
	dir, name := splitDeclPath(declPath)
	m.decls = append(m.decls, Declaration{Dir: dir, Name: name, Handler: h})
}

// Middleware registers a middleware declaration for the given directory.
// The declaration name is synthesized from the default marker for
// diagnostics and ordering only; the attached spec classifies the
// declaration, so builds configured with a different marker or
// extension accept it unchanged.
func (m *Manifest) Middleware(dir string, spec MiddlewareSpec) {
	m.decls = append(m.decls, Declaration{
		Dir:        strings.Trim(dir, "/"),
		Name:       DefaultMiddlewareMarker + DefaultExtension,
		Middleware: &spec,
	})
}

// Declarations returns the registered declarations sorted
// lexicographically by position for reproducible builds.
func (m *Manifest) Declarations() ([]Declaration, error) {
	out := make([]Declaration, len(m.decls))
	copy(out, m.decls)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Dir != out[j].Dir {
			return out[i].Dir < out[j].Dir
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// HandlerRegistry maps declaration paths to their payloads for
// filesystem-driven sources, which see names only.
type HandlerRegistry struct {
	// Routes is keyed by declaration path relative to the root,
	// e.g. "api/users/[id].get.go".
	Routes map[string]http.Handler

	// Middleware is keyed by directory position ("" for root).
	Middleware map[string]MiddlewareSpec
}

// DirSource walks a directory tree and yields one declaration per
// qualifying file. Walk order is lexicographic, so repeated runs over
// an unchanged tree produce identical declaration sequences.
type DirSource struct {
	fsys     fs.FS
	registry *HandlerRegistry
	opts     options
}

// NewDirSource creates a Source over fsys. The registry may be nil when
// only the route table shape is needed, e.g. for listing.
func NewDirSource(fsys fs.FS, registry *HandlerRegistry, opts ...Option) *DirSource {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &DirSource{fsys: fsys, registry: registry, opts: o}
}

// Declarations walks the tree. Dotfiles and underscore-prefixed entries
// other than the middleware marker are infrastructure, not declarations,
// and are skipped; so are files without the configured extension.
func (s *DirSource) Declarations() ([]Declaration, error) {
	var decls []Declaration

	marker := s.opts.marker + s.opts.ext
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if p != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return fs.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, s.opts.ext) {
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if strings.HasPrefix(name, "_") && name != marker {
			return nil
		}

		dir := path.Dir(p)
		if dir == "." {
			dir = ""
		}

		decl := Declaration{Dir: dir, Name: name}
		if s.registry != nil {
			if name == marker {
				if spec, ok := s.registry.Middleware[dir]; ok {
					decl.Middleware = &spec
				}
			} else {
				decl.Handler = s.registry.Routes[p]
			}
		}

		decls = append(decls, decl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decls, nil
}

// splitDeclPath splits "api/users/[id].get.go" into directory and name.
func splitDeclPath(p string) (dir, name string) {
	p = strings.Trim(p, "/")
	idx := strings.LastIndex(p, "/")
	if idx < 0 {
		return "", p
	}
	return p[:idx], p[idx+1:]
}
