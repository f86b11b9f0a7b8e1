package router

import (
	"strings"

	"github.com/routewind-dev/routewind/pkg/routepath"
)

// Table is the runtime matcher over an assembled route table. It is
// immutable once built and safe to share across any number of
// concurrently serving goroutines; matching is a pure read path.
type Table struct {
	root *matchNode
}

// matchNode is one node of the dispatch tree. Static children are kept
// separate from the single dynamic and catch-all children so lookup
// precedence needs no sorting at match time.
type matchNode struct {
	children      map[string]*matchNode
	paramChild    *matchNode
	catchAllChild *matchNode

	// routes maps methods to the table entry ending at this node.
	routes map[string]*ResolvedRoute
}

func newMatchNode() *matchNode {
	return &matchNode{}
}

func (n *matchNode) static(literal string) *matchNode {
	if n.children == nil {
		n.children = make(map[string]*matchNode)
	}
	if c, ok := n.children[literal]; ok {
		return c
	}
	c := newMatchNode()
	n.children[literal] = c
	return c
}

// NewTable indexes an assembled route table for matching. The input
// slice is not retained; conflict-free assembly guarantees each
// (shape, method) pair occupies one node slot.
func NewTable(routes []ResolvedRoute) *Table {
	t := &Table{root: newMatchNode()}
	for i := range routes {
		r := routes[i]
		node := t.root
		for _, s := range r.segs {
			switch s.kind {
			case segDynamic:
				if node.paramChild == nil {
					node.paramChild = newMatchNode()
				}
				node = node.paramChild
			case segCatchAll:
				if node.catchAllChild == nil {
					node.catchAllChild = newMatchNode()
				}
				node = node.catchAllChild
			default:
				node = node.static(s.literal)
			}
		}
		if node.routes == nil {
			node.routes = make(map[string]*ResolvedRoute)
		}
		node.routes[r.Method] = &r
	}
	return t
}

// Match finds the table entry for a method and request path, returning
// the extracted parameter values. Static segments win over dynamic,
// dynamic over catch-all, evaluated left to right with backtracking.
func (t *Table) Match(method, path string) (*ResolvedRoute, map[string]string, bool) {
	return t.lookup(method, splitPath(path))
}

// MatchURL canonicalizes a raw request path before matching: trailing
// slashes and dot segments are normalized and percent escapes decoded
// per segment. Malformed or hostile paths (backslashes, NUL bytes,
// encoded slashes, .. escaping the root) match nothing.
func (t *Table) MatchURL(method, rawPath string) (*ResolvedRoute, map[string]string, bool) {
	canon, err := routepath.CanonicalizePath(rawPath)
	if err != nil {
		return nil, nil, false
	}
	segments, err := routepath.DecodePathSegments(canon.Path)
	if err != nil {
		return nil, nil, false
	}
	return t.lookup(method, segments)
}

// lookup matches and binds parameters. Values are captured positionally
// during descent and keyed afterwards by the matched route's own
// parameter names, so sibling routes sharing a dynamic position may
// bind different names at it.
func (t *Table) lookup(method string, segments []string) (*ResolvedRoute, map[string]string, bool) {
	var captured []string
	route := t.root.match(method, segments, &captured)
	if route == nil {
		return nil, nil, false
	}
	params := make(map[string]string, len(route.Params))
	for i, name := range route.Params {
		params[name] = captured[i]
	}
	return route, params, true
}

func (n *matchNode) match(method string, segments []string, captured *[]string) *ResolvedRoute {
	if len(segments) == 0 {
		if n.routes != nil {
			return n.routes[method]
		}
		return nil
	}

	head, rest := segments[0], segments[1:]

	if c, ok := n.children[head]; ok {
		if r := c.match(method, rest, captured); r != nil {
			return r
		}
	}

	if n.paramChild != nil {
		*captured = append(*captured, head)
		if r := n.paramChild.match(method, rest, captured); r != nil {
			return r
		}
		*captured = (*captured)[:len(*captured)-1]
	}

	if n.catchAllChild != nil && n.catchAllChild.routes != nil {
		if r := n.catchAllChild.routes[method]; r != nil {
			*captured = append(*captured, strings.Join(segments, "/"))
			return r
		}
	}

	return nil
}

// splitPath splits a request path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
