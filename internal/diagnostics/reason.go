// Package diagnostics implements the immutable reason chain the resolver
// builds as it recurses, the typed errors it raises, and a small
// run-summary value for tooling.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/declgraph/declorder/internal/depgraph"
)

// Reason is one frame of the resolver's call stack: which declaration it
// was resolving, at what state, why, and (via Next) what asked for it.
// It is an immutable head-linked list — each recursive resolve() call
// builds a new head pointing at its caller's frame, never mutating an
// existing one.
type Reason struct {
	DeclID depgraph.DeclID
	Name   string
	State  depgraph.State
	Kind   depgraph.ReasonKind
	Next   *Reason
}

// NewReason builds a new head frame on top of next.
func NewReason(id depgraph.DeclID, name string, s depgraph.State, kind depgraph.ReasonKind, next *Reason) *Reason {
	return &Reason{DeclID: id, Name: name, State: s, Kind: kind, Next: next}
}

// Chain returns the frames from head to root, head first.
func (r *Reason) Chain() []*Reason {
	var frames []*Reason
	for f := r; f != nil; f = f.Next {
		frames = append(frames, f)
	}
	return frames
}

// Contains reports whether id appears anywhere in the chain in a frame whose
// state is at or above the given state. It is not the resolver's cycle test
// (that one fires when a new demand is at or above a pending state, and
// uses an O(1) pending-state map, see internal/resolver); Contains only
// walks the named chain, for diagnostics and tests that want to describe a
// chain without the resolver's internal state.
func (r *Reason) Contains(id depgraph.DeclID, s depgraph.State) bool {
	for f := r; f != nil; f = f.Next {
		if f.DeclID == id && f.State >= s {
			return true
		}
	}
	return false
}

// String renders the chain as "root -> ... -> head", one arrow per frame,
// each annotated with its state and reason kind — the format
// cmd/declorderdump prints for a cycle's Reason.
func (r *Reason) String() string {
	frames := r.Chain()
	// Chain() is head-first; print root-first for readability.
	parts := make([]string, len(frames))
	for i, f := range frames {
		parts[len(frames)-1-i] = fmt.Sprintf("%s@%s(%s)", f.Name, f.State, f.Kind)
	}
	return strings.Join(parts, " -> ")
}
