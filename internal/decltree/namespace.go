package decltree

import "github.com/declgraph/declorder/internal/depgraph"

// Namespace is a purely organizational container. It places no type
// demands of its own; its only role is to hold Children that the
// resolver's containment-promotion rule resolves alongside it.
type Namespace struct {
	base
}

func (n *Namespace) MaxState() depgraph.State { return depgraph.Complete }

func (n *Namespace) GetDependencies(depgraph.State) depgraph.Dependencies {
	return depgraph.NewDependencies()
}
