package router

import (
	"fmt"
	"sort"
	"strings"
)

// assemble emits the final ordered route table. Assembly is pure:
// identical input trees yield byte-identical ordering.
//
// The emitted order encodes dispatch precedence so a first-match
// dispatcher needs no further logic: comparing segment by segment from
// the left, static sorts before dynamic and dynamic before catch-all.
func assemble(routes []pendingRoute) []ResolvedRoute {
	sorted := make([]pendingRoute, len(routes))
	copy(sorted, routes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return lessPrecedence(sorted[i], sorted[j])
	})

	out := make([]ResolvedRoute, 0, len(sorted))
	for _, r := range sorted {
		var params []string
		for _, s := range r.segs {
			if s.kind != segStatic {
				params = append(params, s.param)
			}
		}
		chain := make([]Middleware, len(r.chain))
		copy(chain, r.chain)
		segs := make([]segment, len(r.segs))
		copy(segs, r.segs)
		out = append(out, ResolvedRoute{
			Pattern: r.pattern,
			Method:  r.method,
			Params:  params,
			Chain:   chain,
			Handler: r.desc.Handler,
			Source:  r.desc.Source,
			segs:    segs,
		})
	}
	return out
}

// lessPrecedence orders routes for first-match dispatch, with full
// deterministic tie-breaking.
func lessPrecedence(a, b pendingRoute) bool {
	n := len(a.segs)
	if len(b.segs) < n {
		n = len(b.segs)
	}
	for i := 0; i < n; i++ {
		sa, sb := a.segs[i], b.segs[i]
		if sa.kind != sb.kind {
			return sa.kind < sb.kind
		}
		if sa.kind == segStatic && sa.literal != sb.literal {
			return sa.literal < sb.literal
		}
	}
	if len(a.segs) != len(b.segs) {
		return len(a.segs) < len(b.segs)
	}
	if a.pattern != b.pattern {
		return a.pattern < b.pattern
	}
	return a.method < b.method
}

// Summarize produces the per-route diagnostic summary for a table.
func Summarize(routes []ResolvedRoute) []RouteSummary {
	out := make([]RouteSummary, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteSummary{
			Method:   r.Method,
			Pattern:  r.Pattern,
			ChainLen: len(r.Chain),
			Source:   r.Source,
		})
	}
	return out
}

// FormatSummaries renders summaries as aligned text lines.
func FormatSummaries(summaries []RouteSummary) string {
	var sb strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&sb, "  %-7s %-40s mw=%d\n", s.Method, s.Pattern, s.ChainLen)
	}
	return sb.String()
}
