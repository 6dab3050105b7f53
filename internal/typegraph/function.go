package typegraph

import (
	"strings"

	"github.com/declgraph/declorder/internal/depgraph"
)

// Function is a function type: a return type plus parameter types. Function
// declarations carry pointers/signatures, not bodies, so both return and
// parameter types are demanded at Partial regardless of the caller's own
// requested state.
type Function struct {
	Return Type
	Params []Type
}

func (f Function) Key() string {
	var b strings.Builder
	b.WriteByte('f')
	b.WriteString(f.Return.Key())
	for _, p := range f.Params {
		b.WriteString(p.Key())
	}
	b.WriteByte(';')
	return b.String()
}

func (f Function) GetDependencies(dep depgraph.Dependency) depgraph.Dependencies {
	deps := depgraph.NewDependencies()
	partial := dep.WithState(depgraph.Partial)
	deps.Merge(f.Return.GetDependencies(partial))
	for _, p := range f.Params {
		deps.Merge(p.GetDependencies(partial))
	}
	return deps
}

func (f Function) ReferencedTypes() []Type {
	refs := []Type{f}
	refs = append(refs, f.Return.ReferencedTypes()...)
	for _, p := range f.Params {
		refs = append(refs, p.ReferencedTypes()...)
	}
	return refs
}
