package decltree

import (
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/typegraph"
)

// Function maxes out at Partial — like Variable, only its signature is
// modeled; bodies are out of scope (no semantic checking, the writer owns
// textual emission). Its dependencies are each parameter type's declaration
// and the return type's declaration, both demanded at Partial, plus — when
// Flags().Has(Template) — its Constraints, tagged Constraint.
type Function struct {
	base
	ReturnType  typegraph.Type
	Params      []typegraph.Type
	Constraints []typegraph.Type
}

func (f *Function) MaxState() depgraph.State { return depgraph.Partial }

func (f *Function) GetDependencies(depgraph.State) depgraph.Dependencies {
	deps := depgraph.NewDependencies()
	if f.ReturnType != nil {
		deps.Merge(f.ReturnType.GetDependencies(depgraph.Dependency{
			State:        depgraph.Partial,
			ReasonDeclID: f.id,
			Kind:         depgraph.ReturnType,
		}))
	}
	for _, p := range f.Params {
		if p == nil {
			continue
		}
		deps.Merge(p.GetDependencies(depgraph.Dependency{
			State:        depgraph.Partial,
			ReasonDeclID: f.id,
			Kind:         depgraph.ParameterType,
		}))
	}
	if f.Flags().Has(Template) {
		for _, c := range f.Constraints {
			if c == nil {
				continue
			}
			deps.Merge(c.GetDependencies(depgraph.Dependency{
				State:        depgraph.Partial,
				ReasonDeclID: f.id,
				Kind:         depgraph.Constraint,
			}))
		}
	}
	return deps
}
