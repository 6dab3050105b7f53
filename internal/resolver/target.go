package resolver

import (
	"github.com/declgraph/declorder/internal/decltree"
	"github.com/declgraph/declorder/internal/depgraph"
)

// Target is one root demand handed to the resolver: "emit this declaration
// at (at least) this completeness".
type Target struct {
	Decl  decltree.Declaration
	State depgraph.State
}

// EmitFunc is invoked once for every declaration/state pair the resolver
// decides needs writing out, in the order it decides to write them. ctx
// carries the run's diagnostic identity and the reason the emit was
// requested, for emitters that want to log or annotate their output.
// Returning an error aborts the run with a diagnostics.EmitError wrapping it.
type EmitFunc func(ctx *ResolverContext, target Target, state depgraph.State) error

// removeDuplicates keeps the first Target seen for each declaration ID,
// dropping later duplicates outright rather than merging their states — the
// target list is a caller-owned set of demands, and a caller that lists the
// same declaration twice with different states has already made a decision
// between them by ordering.
func removeDuplicates(targets []Target) []Target {
	seen := make(map[depgraph.DeclID]bool, len(targets))
	out := make([]Target, 0, len(targets))
	for _, t := range targets {
		if t.Decl == nil || seen[t.Decl.ID()] {
			continue
		}
		seen[t.Decl.ID()] = true
		out = append(out, t)
	}
	return out
}
