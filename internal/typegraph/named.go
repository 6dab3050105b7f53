package typegraph

import "github.com/declgraph/declorder/internal/depgraph"

// Named is a terminal type referred to only by its textual name — a
// built-in or otherwise opaque type the resolver never needs to emit
// (e.g. "int", "void", "bool"). It has no dependencies of its own.
type Named struct {
	Name string
}

func (n Named) Key() string { return "N" + n.Name + ";" }

func (n Named) GetDependencies(depgraph.Dependency) depgraph.Dependencies {
	return depgraph.NewDependencies()
}

func (n Named) ReferencedTypes() []Type { return []Type{n} }

// Generic is a type parameter reference (e.g. "_T0", "_Args"). Like Named,
// it carries no dependencies: a type parameter is satisfied at the
// instantiation site, not by anything the resolver needs to linearize.
type Generic struct {
	Name string
}

func (g Generic) Key() string { return "G" + g.Name + ";" }

func (g Generic) GetDependencies(depgraph.Dependency) depgraph.Dependencies {
	return depgraph.NewDependencies()
}

func (g Generic) ReferencedTypes() []Type { return []Type{g} }

// Literal is a free textual token used where the target language expects
// an expression rather than a type — array bounds, non-type template
// arguments, and the variadic ellipsis ("..."). Literal carries no
// dependencies; its only other behavior (IsAlwaysTrue, via Compound) is
// documented on Compound.
type Literal struct {
	Token string
}

func (l Literal) Key() string { return "L" + l.Token + ";" }

func (l Literal) GetDependencies(depgraph.Dependency) depgraph.Dependencies {
	return depgraph.NewDependencies()
}

func (l Literal) ReferencedTypes() []Type { return []Type{l} }

// isEllipsis reports whether l is the "always-true" ellipsis literal used
// by variadic constraints.
func (l Literal) isEllipsis() bool { return l.Token == "..." }
