package router

import "net/http"

// Mode controls how a scope's middleware relates to the chain inherited
// from its ancestors.
type Mode int

const (
	// ModeOverlay appends the scope's middleware to the inherited chain.
	// This is the default.
	ModeOverlay Mode = iota

	// ModeOverride discards the inherited chain and substitutes the
	// scope's own middleware.
	ModeOverride
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeOverride {
		return "override"
	}
	return "overlay"
}

// Middleware wraps an http.Handler. Transforms nearer the root of the
// scope tree wrap outermost.
type Middleware func(http.Handler) http.Handler

// MiddlewareSpec is the middleware declaration of one scope.
// At most one spec may be declared per directory.
type MiddlewareSpec struct {
	// Mode selects overlay or override composition.
	Mode Mode

	// Middlewares are applied in declaration order.
	Middlewares []Middleware
}

// segmentKind classifies one path segment.
type segmentKind int

const (
	segStatic segmentKind = iota
	segDynamic
	segCatchAll
)

// segment is one parsed path segment.
type segment struct {
	literal string // static text, empty for dynamic/catch-all
	param   string // bound name for dynamic/catch-all
	kind    segmentKind
}

// pattern renders the segment in route-table notation.
func (s segment) pattern() string {
	switch s.kind {
	case segDynamic:
		return ":" + s.param
	case segCatchAll:
		return "*" + s.param
	default:
		return s.literal
	}
}

// RouteDescriptor is one parsed route declaration.
type RouteDescriptor struct {
	// Segment is the path segment contributed by the declaration name.
	// Empty for index declarations, which map to the enclosing scope.
	Segment string

	// IsDynamic reports a [name] segment.
	IsDynamic bool

	// IsCatchAll reports a [...name] segment.
	IsCatchAll bool

	// Param is the bound parameter name for dynamic and catch-all
	// segments.
	Param string

	// Method is the canonical HTTP verb.
	Method string

	// Source is the declaration location, used in diagnostics.
	Source string

	// Handler is the opaque handler reference. The resolution pipeline
	// never inspects or invokes it.
	Handler http.Handler

	seg segment
}

// ResolvedRoute is one entry of the final dispatch table. Created once
// by the assembler and immutable thereafter.
type ResolvedRoute struct {
	// Pattern is the full path pattern, e.g. "/users/:id".
	Pattern string

	// Method is the canonical HTTP verb.
	Method string

	// Params are the parameter names in path order.
	Params []string

	// Chain is the effective middleware chain, root to leaf.
	Chain []Middleware

	// Handler is the opaque handler reference passed through from the
	// declaration.
	Handler http.Handler

	// Source is the declaring file, kept for diagnostics.
	Source string

	segs []segment
}

// RouteSummary describes one table entry for diagnostic output.
type RouteSummary struct {
	Method   string
	Pattern  string
	ChainLen int
	Source   string
}
