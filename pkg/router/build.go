package router

import "strings"

// Default parsing configuration. Each can be changed per build via
// options without altering the core algorithms.
const (
	DefaultExtension        = ".go"
	DefaultMiddlewareMarker = "_middleware"
	DefaultIndexName        = "index"
)

// options holds the recognized parsing configuration.
type options struct {
	ext     string
	marker  string
	index   string
	aliases map[string]string
}

func defaultOptions() options {
	return options{
		ext:    DefaultExtension,
		marker: DefaultMiddlewareMarker,
		index:  DefaultIndexName,
	}
}

// Option configures a build.
type Option func(*options)

// WithExtension sets the declaration file extension, including the dot.
func WithExtension(ext string) Option {
	return func(o *options) { o.ext = ext }
}

// WithMiddlewareMarker sets the reserved middleware declaration name.
func WithMiddlewareMarker(name string) Option {
	return func(o *options) { o.marker = name }
}

// WithIndexName sets the reserved name mapping to the scope's own path.
func WithIndexName(name string) Option {
	return func(o *options) { o.index = name }
}

// WithMethodAliases registers extra method tokens. Keys are matched
// case-insensitively; values must be canonical HTTP verbs.
func WithMethodAliases(aliases map[string]string) Option {
	return func(o *options) {
		if o.aliases == nil {
			o.aliases = make(map[string]string, len(aliases))
		}
		for k, v := range aliases {
			o.aliases[strings.ToLower(k)] = strings.ToUpper(v)
		}
	}
}

// Build runs the resolution pipeline once, synchronously:
// parse, tree construction, middleware resolution, conflict checking,
// assembly. Stages are strictly linear; the first failing stage aborts
// the build after collecting every diagnostic it can see, and no
// partial table is ever produced.
func Build(src Source, opts ...Option) ([]ResolvedRoute, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	decls, err := src.Declarations()
	if err != nil {
		return nil, err
	}

	parsed, diags := parseAll(decls, &o)
	if len(diags) > 0 {
		return nil, &BuildError{Diagnostics: diags}
	}

	root, diags := buildTree(parsed)
	if len(diags) > 0 {
		return nil, &BuildError{Diagnostics: diags}
	}

	resolveMiddleware(root)
	flat := flatten(root)

	if diags := checkConflicts(flat); len(diags) > 0 {
		return nil, &BuildError{Diagnostics: diags}
	}

	return assemble(flat), nil
}
