package decltree

import (
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/typegraph"
)

// TypeAlias demands its aliased type at the alias's own target state:
// Partial at Partial, Complete at Complete, tagged TypeAliasType.
type TypeAlias struct {
	base
	Aliased typegraph.Type
}

func (t *TypeAlias) MaxState() depgraph.State { return depgraph.Complete }

func (t *TypeAlias) GetDependencies(s depgraph.State) depgraph.Dependencies {
	if t.Aliased == nil {
		return depgraph.NewDependencies()
	}
	return t.Aliased.GetDependencies(depgraph.Dependency{
		State:        s,
		ReasonDeclID: t.id,
		Kind:         depgraph.TypeAliasType,
	})
}
