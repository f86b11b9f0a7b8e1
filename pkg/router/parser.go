package router

import (
	"fmt"
	"regexp"
	"strings"
)

// methodSet is the fixed HTTP verb set recognized by the parser.
// Configured aliases map additional tokens onto these verbs.
var methodSet = map[string]bool{
	"GET":     true,
	"POST":    true,
	"PUT":     true,
	"PATCH":   true,
	"DELETE":  true,
	"HEAD":    true,
	"OPTIONS": true,
}

var (
	paramNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	literalRe   = regexp.MustCompile(`^[A-Za-z0-9_.~-]+$`)
)

// parsedDecl is the parser's output for one declaration: either a route
// descriptor or a middleware spec, plus the parsed directory segments.
type parsedDecl struct {
	dirNames []string
	dirSegs  []segment
	route    *RouteDescriptor
	mw       *MiddlewareSpec
	source   string
}

// parseAll turns the ordered declaration list into parsed descriptors,
// collecting every parse diagnostic before the stage reports failure.
func parseAll(decls []Declaration, o *options) ([]parsedDecl, []Diagnostic) {
	var parsed []parsedDecl
	var diags []Diagnostic

	for _, d := range decls {
		p, diag := parseDeclaration(d, o)
		if diag != nil {
			diags = append(diags, *diag)
			continue
		}
		parsed = append(parsed, p)
	}

	return parsed, diags
}

// parseDeclaration parses one declaration name together with its
// directory position.
func parseDeclaration(d Declaration, o *options) (parsedDecl, *Diagnostic) {
	source := declPath(d.Dir, d.Name)

	p := parsedDecl{source: source}
	if d.Dir != "" {
		p.dirNames = strings.Split(d.Dir, "/")
		for _, name := range p.dirNames {
			seg, err := parseSegment(name)
			if err != nil {
				return p, &Diagnostic{
					Kind:    ErrInvalidFileName,
					Path:    source,
					Message: fmt.Sprintf("invalid directory name %q: %v", name, err),
					Files:   []string{source},
				}
			}
			p.dirSegs = append(p.dirSegs, seg)
		}
	}

	// A declaration carrying a spec is middleware by construction.
	// Manifests synthesize their names, so classification cannot depend
	// on the configured marker or extension.
	if d.Middleware != nil {
		p.mw = d.Middleware
		return p, nil
	}

	stem, ok := strings.CutSuffix(d.Name, o.ext)
	if !ok || stem == "" {
		return p, &Diagnostic{
			Kind:    ErrInvalidFileName,
			Path:    source,
			Message: fmt.Sprintf("declaration %q does not end in %q", d.Name, o.ext),
			Files:   []string{source},
		}
	}

	// Middleware marker: no method suffix, yields the scope's spec.
	if stem == o.marker {
		spec := d.Middleware
		if spec == nil {
			spec = &MiddlewareSpec{}
		}
		p.mw = spec
		return p, nil
	}

	base, method, diag := splitMethod(stem, source, o)
	if diag != nil {
		return p, diag
	}

	rd := &RouteDescriptor{
		Method:  method,
		Source:  source,
		Handler: d.Handler,
	}

	if base != o.index {
		seg, err := parseSegment(base)
		if err != nil {
			return p, &Diagnostic{
				Kind:    ErrInvalidFileName,
				Path:    source,
				Message: fmt.Sprintf("invalid declaration name %q: %v", d.Name, err),
				Files:   []string{source},
			}
		}
		rd.Segment = base
		rd.seg = seg
		rd.IsDynamic = seg.kind == segDynamic
		rd.IsCatchAll = seg.kind == segCatchAll
		rd.Param = seg.param
	}

	p.route = rd
	return p, nil
}

// splitMethod separates the route name from its method token.
// The token after the last dot must map case-insensitively onto the
// verb set or a configured alias. A bare index declaration defaults to
// GET; any other name without a method suffix is invalid.
func splitMethod(stem, source string, o *options) (base, method string, diag *Diagnostic) {
	idx := strings.LastIndex(stem, ".")
	if idx < 0 {
		if stem == o.index {
			return stem, "GET", nil
		}
		return "", "", &Diagnostic{
			Kind:    ErrInvalidFileName,
			Path:    source,
			Message: fmt.Sprintf("declaration %q has no method suffix", stem),
			Files:   []string{source},
		}
	}

	base, token := stem[:idx], stem[idx+1:]
	if base == "" || token == "" {
		return "", "", &Diagnostic{
			Kind:    ErrInvalidFileName,
			Path:    source,
			Message: fmt.Sprintf("declaration %q has an empty name or method token", stem),
			Files:   []string{source},
		}
	}

	upper := strings.ToUpper(token)
	if methodSet[upper] {
		return base, upper, nil
	}
	if canonical, ok := o.aliases[strings.ToLower(token)]; ok {
		return base, canonical, nil
	}

	return "", "", &Diagnostic{
		Kind:    ErrUnknownMethod,
		Path:    source,
		Message: fmt.Sprintf("unknown HTTP method %q", token),
		Files:   []string{source},
	}
}

// parseSegment parses one path segment name: [...name] is a catch-all,
// [name] a dynamic segment, anything else a static literal.
func parseSegment(name string) (segment, error) {
	if strings.HasPrefix(name, "[") {
		if !strings.HasSuffix(name, "]") {
			return segment{}, fmt.Errorf("unterminated bracket segment")
		}
		inner := name[1 : len(name)-1]
		kind := segDynamic
		if rest, ok := strings.CutPrefix(inner, "..."); ok {
			kind = segCatchAll
			inner = rest
		}
		if !paramNameRe.MatchString(inner) {
			return segment{}, fmt.Errorf("invalid parameter name %q", inner)
		}
		return segment{param: inner, kind: kind}, nil
	}

	if !literalRe.MatchString(name) {
		return segment{}, fmt.Errorf("invalid segment %q", name)
	}
	return segment{literal: name, kind: segStatic}, nil
}

// declPath joins a directory position and declaration name for
// diagnostics.
func declPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
