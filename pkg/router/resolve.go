package router

// resolveMiddleware computes the effective middleware chain for every
// scope with a single root-to-leaf fold. At each scope:
//
//   - no spec: the inherited chain passes through unchanged
//   - overlay: the scope's middleware appends to the inherited chain
//   - override: the inherited chain is discarded entirely, including
//     the root's, and replaced by the scope's own middleware
//
// Only ancestors influence a scope's chain, never siblings or
// descendants. Chains apply in root-to-leaf order when composed, so
// transforms nearer the root wrap outermost.
func resolveMiddleware(root *ScopeNode) {
	fold(root, nil)
}

func fold(n *ScopeNode, inherited []Middleware) {
	chain := inherited
	if n.mw != nil {
		switch n.mw.Mode {
		case ModeOverride:
			chain = n.mw.Middlewares
		default:
			// Copy-on-extend keeps sibling scopes from sharing backing
			// arrays through append.
			merged := make([]Middleware, 0, len(inherited)+len(n.mw.Middlewares))
			merged = append(merged, inherited...)
			merged = append(merged, n.mw.Middlewares...)
			chain = merged
		}
	}
	n.chain = chain

	for _, name := range n.childNames() {
		fold(n.children[name], chain)
	}
}

// pendingRoute is a flattened route candidate: full segment path plus
// the effective chain of its owning scope. Conflict checking and
// assembly operate on this form.
type pendingRoute struct {
	segs    []segment
	method  string
	chain   []Middleware
	desc    *RouteDescriptor
	pattern string
}

// flatten walks the resolved tree root-to-leaf and concatenates each
// route's directory segments with its own. Walk order is deterministic.
func flatten(root *ScopeNode) []pendingRoute {
	var out []pendingRoute
	var walk func(n *ScopeNode, prefix []segment)
	walk = func(n *ScopeNode, prefix []segment) {
		for _, rd := range n.routes {
			segs := make([]segment, 0, len(prefix)+1)
			segs = append(segs, prefix...)
			if rd.Segment != "" {
				segs = append(segs, rd.seg)
			}
			out = append(out, pendingRoute{
				segs:    segs,
				method:  rd.Method,
				chain:   n.chain,
				desc:    rd,
				pattern: renderPattern(segs),
			})
		}
		for _, name := range n.childNames() {
			c := n.children[name]
			walk(c, append(prefix[:len(prefix):len(prefix)], c.seg))
		}
	}
	walk(root, nil)
	return out
}

// renderPattern renders the full path pattern for a segment sequence.
func renderPattern(segs []segment) string {
	if len(segs) == 0 {
		return "/"
	}
	p := ""
	for _, s := range segs {
		p += "/" + s.pattern()
	}
	return p
}
