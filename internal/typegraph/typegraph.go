// Package typegraph implements the interned type graph: a DAG of type terms
// shared by structural equality (hash-consing), each answering what it
// depends on at a given completeness and what it transitively references.
package typegraph

import "github.com/declgraph/declorder/internal/depgraph"

// Type is the interface every type variant implements: a stable
// fingerprint, dependency demands at a given reason, and the transitive set
// of referenced types.
type Type interface {
	// Key is the structural fingerprint used by the interning Registry.
	// Two types with Key() a == Key() b are the same object after
	// interning.
	Key() string

	// GetDependencies returns the declarations this type demands, given the
	// attribution (state/declaration/reasonKind) it is evaluated under.
	GetDependencies(dep depgraph.Dependency) depgraph.Dependencies

	// ReferencedTypes returns a flattened, non-deduplicated enumeration of
	// every sub-type reachable from this one.
	ReferencedTypes() []Type
}

// DeclRef is the minimal view typegraph needs of a declaration: enough to
// key a Declared type's Dependencies entry. internal/decltree.Declaration
// satisfies this structurally; typegraph never imports decltree, which is
// what keeps typegraph <-> decltree from forming an import cycle (decltree
// needs full Type values for its Variable/Function/Class fields, so the
// dependency must run the other way).
type DeclRef interface {
	ID() depgraph.DeclID
}

// Qualifier enumerates the four pointer/reference qualifiers a Qualified
// type can carry.
type Qualifier int

const (
	Pointer Qualifier = iota
	Reference
	ConstPointer
	ConstReference
)

func (q Qualifier) String() string {
	switch q {
	case Pointer:
		return "Pointer"
	case Reference:
		return "Reference"
	case ConstPointer:
		return "ConstPointer"
	case ConstReference:
		return "ConstReference"
	default:
		return "Unknown"
	}
}

// All four qualifiers are pointer-like, with no separate "value" qualifier:
// a Qualified type's pointee is always demanded at Partial. The
// "value requires Complete" half comes from the absence of a Qualified
// wrapper — a bare Declared type used directly as a field's type has no
// qualifier to soften the demand, so it simply inherits whichever state it
// is asked for (see Declared.GetDependencies).
