package decltree

import (
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/typegraph"
)

// Variable maxes out at Partial: a variable declaration is always "just a
// declaration". Its sole dependency is its own type, demanded at Partial
// and tagged VariableType: resolving v@Partial for `T* v` emits `T@Partial`
// first. Flags such as Extern are whatever the constructor was given; they
// are kept for the emitter and do not affect dependencies.
type Variable struct {
	base
	Type typegraph.Type
}

func (v *Variable) MaxState() depgraph.State { return depgraph.Partial }

func (v *Variable) GetDependencies(depgraph.State) depgraph.Dependencies {
	if v.Type == nil {
		return depgraph.NewDependencies()
	}
	return v.Type.GetDependencies(depgraph.Dependency{
		State:        depgraph.Partial,
		ReasonDeclID: v.id,
		Kind:         depgraph.VariableType,
	})
}
