package router

import (
	"fmt"
	"sort"
	"strings"
)

// checkConflicts validates precedence and ambiguity across all routes.
// Every diagnostic available in this stage is collected before the
// pipeline aborts, so one pass surfaces every conflict.
func checkConflicts(routes []pendingRoute) []Diagnostic {
	var diags []Diagnostic
	diags = append(diags, checkDuplicates(routes)...)
	diags = append(diags, checkCatchAlls(routes)...)
	diags = append(diags, checkParamNames(routes)...)
	return diags
}

// shapeKey normalizes a route to its segment-kind sequence: parameter
// names do not distinguish routes for dispatch purposes.
func shapeKey(segs []segment) string {
	if len(segs) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, s := range segs {
		sb.WriteByte('/')
		switch s.kind {
		case segDynamic:
			sb.WriteByte(':')
		case segCatchAll:
			sb.WriteByte('*')
		default:
			sb.WriteString(s.literal)
		}
	}
	return sb.String()
}

// checkDuplicates reports routes whose shape and method collide.
func checkDuplicates(routes []pendingRoute) []Diagnostic {
	byKey := make(map[string][]pendingRoute)
	var order []string
	for _, r := range routes {
		key := r.method + " " + shapeKey(r.segs)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], r)
	}
	sort.Strings(order)

	var diags []Diagnostic
	for _, key := range order {
		group := byKey[key]
		if len(group) <= 1 {
			continue
		}
		files := make([]string, len(group))
		for i, r := range group {
			files[i] = r.desc.Source
		}
		sort.Strings(files)
		diags = append(diags, Diagnostic{
			Kind:    ErrDuplicateRoute,
			Path:    group[0].pattern,
			Message: fmt.Sprintf("duplicate route %s %s", group[0].method, shapeKey(group[0].segs)),
			Files:   files,
		})
	}
	return diags
}

// checkCatchAlls enforces two rules. A catch-all is valid only as the
// final segment of its path. And a catch-all closes its directory
// position for its method: no other same-method route may occupy that
// position, whether a static or dynamic sibling or a deeper descendant.
// Either implicit precedence order could silently shadow a route, so
// coexistence is rejected outright.
func checkCatchAlls(routes []pendingRoute) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]bool)

	for _, r := range routes {
		for i, s := range r.segs {
			if s.kind == segCatchAll && i != len(r.segs)-1 {
				diags = append(diags, Diagnostic{
					Kind:    ErrPathConflict,
					Path:    r.pattern,
					Message: fmt.Sprintf("catch-all segment *%s must be the final path segment", s.param),
					Files:   []string{r.desc.Source},
				})
				break
			}
		}
	}

	for _, r := range routes {
		last := len(r.segs) - 1
		if last < 0 || r.segs[last].kind != segCatchAll {
			continue
		}
		prefix := shapeKey(r.segs[:last])

		for _, other := range routes {
			if other.desc == r.desc || other.method != r.method {
				continue
			}
			// Occupying the closed position means having any segment at
			// the catch-all's depth under the same prefix. A second
			// catch-all there is already a duplicate-route case.
			if len(other.segs) <= last || shapeKey(other.segs[:last]) != prefix {
				continue
			}
			if other.segs[last].kind == segCatchAll {
				continue
			}
			pair := r.desc.Source + "\x00" + other.desc.Source
			if seen[pair] {
				continue
			}
			seen[pair] = true
			diags = append(diags, Diagnostic{
				Kind: ErrPathConflict,
				Path: r.pattern,
				Message: fmt.Sprintf("catch-all %s conflicts with %s for method %s",
					r.pattern, other.pattern, r.method),
				Files: []string{r.desc.Source, other.desc.Source},
			})
		}
	}

	return diags
}

// checkParamNames rejects reuse of a parameter name within one path.
func checkParamNames(routes []pendingRoute) []Diagnostic {
	var diags []Diagnostic
	for _, r := range routes {
		seen := make(map[string]bool)
		for _, s := range r.segs {
			if s.kind == segStatic {
				continue
			}
			if seen[s.param] {
				diags = append(diags, Diagnostic{
					Kind:    ErrAmbiguousParam,
					Path:    r.pattern,
					Message: fmt.Sprintf("parameter name %q bound more than once in %s", s.param, r.pattern),
					Files:   []string{r.desc.Source},
				})
				break
			}
			seen[s.param] = true
		}
	}
	return diags
}
