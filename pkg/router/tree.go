package router

import (
	"fmt"
	"sort"
)

// ScopeNode is one directory of the declaration hierarchy. It owns the
// routes declared at this level, at most one middleware spec, and its
// child scopes. The whole tree lives for a single build pass.
type ScopeNode struct {
	name     string // raw directory name, "" at the root
	seg      segment
	routes   []*RouteDescriptor
	mw       *MiddlewareSpec
	mwSource string
	children map[string]*ScopeNode

	// chain is the effective middleware chain, filled by the resolver.
	chain []Middleware
}

// newScopeNode creates an empty scope for the given directory name.
func newScopeNode(name string, seg segment) *ScopeNode {
	return &ScopeNode{name: name, seg: seg}
}

// child returns the scope for a subdirectory, creating it on first use.
func (n *ScopeNode) child(name string, seg segment) *ScopeNode {
	if n.children == nil {
		n.children = make(map[string]*ScopeNode)
	}
	if c, ok := n.children[name]; ok {
		return c
	}
	c := newScopeNode(name, seg)
	n.children[name] = c
	return c
}

// childNames returns the child directory names in sorted order so every
// walk over the tree is deterministic.
func (n *ScopeNode) childNames() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hasRoutes reports whether the subtree rooted here declares any route.
func (n *ScopeNode) hasRoutes() bool {
	if len(n.routes) > 0 {
		return true
	}
	for _, c := range n.children {
		if c.hasRoutes() {
			return true
		}
	}
	return false
}

// buildTree assembles the scope tree from parsed declarations.
// A second middleware declaration for the same directory is an error;
// the stage collects every such duplicate before failing.
func buildTree(parsed []parsedDecl) (*ScopeNode, []Diagnostic) {
	root := newScopeNode("", segment{})
	var diags []Diagnostic

	for _, p := range parsed {
		node := root
		for i, name := range p.dirNames {
			node = node.child(name, p.dirSegs[i])
		}

		switch {
		case p.mw != nil:
			if node.mw != nil {
				diags = append(diags, Diagnostic{
					Kind:    ErrDuplicateMiddleware,
					Path:    scopePath(p.dirNames),
					Message: fmt.Sprintf("scope %s declares middleware twice", scopePath(p.dirNames)),
					Files:   []string{node.mwSource, p.source},
				})
				continue
			}
			node.mw = p.mw
			node.mwSource = p.source
		case p.route != nil:
			node.routes = append(node.routes, p.route)
		}
	}

	if len(diags) > 0 {
		return nil, diags
	}

	prune(root)
	return root, nil
}

// prune drops subtrees with no route-bearing descendants. Their absence
// is legal, never an error.
func prune(n *ScopeNode) {
	for name, c := range n.children {
		prune(c)
		if !c.hasRoutes() {
			delete(n.children, name)
		}
	}
}

// scopePath renders a directory position for diagnostics.
func scopePath(dirNames []string) string {
	if len(dirNames) == 0 {
		return "/"
	}
	p := ""
	for _, name := range dirNames {
		p += "/" + name
	}
	return p
}
