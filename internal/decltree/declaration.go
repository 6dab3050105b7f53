// Package decltree implements the declaration tree: a tree of named
// entities (namespaces, classes, functions, variables, type aliases) with
// parent/child links, each exposing its direct dependencies at a given
// completeness, its maximum achievable completeness, and its children.
package decltree

import "github.com/declgraph/declorder/internal/depgraph"

// Declaration is the interface every declaration kind implements.
type Declaration interface {
	// ID is the stable integer identity assigned by the Arena that owns
	// this declaration.
	ID() depgraph.DeclID

	Name() string

	// Parent returns the enclosing declaration, or nil at the top level.
	Parent() Declaration

	// Children returns nested declarations that must be resolved whenever
	// this one reaches Complete.
	Children() []Declaration

	// MaxState is the highest completeness this kind can reach.
	MaxState() depgraph.State

	// GetDependencies returns the demands this declaration places on other
	// declarations in order to be mentioned at state s.
	GetDependencies(s depgraph.State) depgraph.Dependencies

	// IsResolved reports whether this declaration has already reached at
	// least state s.
	IsResolved(s depgraph.State) bool

	// SetState monotonically advances the resolved state. Advancing to a
	// state lower than the current one is a no-op, never a regression.
	SetState(s depgraph.State)

	// State returns the highest state reached so far, or Partial with
	// IsResolved(Partial) == false if nothing has been emitted yet.
	State() depgraph.State

	Flags() Flags
}

// base is embedded by every concrete declaration kind. It owns identity,
// tree links, flags, and the monotone resolution bookkeeping so each kind
// only needs to implement MaxState and GetDependencies.
type base struct {
	id       depgraph.DeclID
	name     string
	parent   Declaration
	children []Declaration
	flags    Flags
	resolved bool
	state    depgraph.State
}

func (b *base) ID() depgraph.DeclID      { return b.id }
func (b *base) Name() string             { return b.name }
func (b *base) Parent() Declaration      { return b.parent }
func (b *base) Children() []Declaration  { return b.children }
func (b *base) Flags() Flags             { return b.flags }
func (b *base) State() depgraph.State    { return b.state }

func (b *base) IsResolved(s depgraph.State) bool {
	return b.resolved && b.state >= s
}

func (b *base) SetState(s depgraph.State) {
	if !b.resolved || s > b.state {
		b.state = s
		b.resolved = true
	}
}

// addChild appends child to this declaration's children. The Arena's
// per-kind constructors call this and set the child's own parent field
// directly (same package); it is not part of the Declaration interface
// because callers outside the tree-building phase should not be able to
// mutate the tree after the resolver starts walking it.
func (b *base) addChild(child Declaration) {
	b.children = append(b.children, child)
}
