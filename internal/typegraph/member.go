package typegraph

import "github.com/declgraph/declorder/internal/depgraph"

// Member is "inner of X" — a nested-type reference such as
// `typename C::iterator`. A Member type demands its outer at Complete: you
// cannot name a member type of something the compiler has only
// forward-declared.
type Member struct {
	Inner Type
	Field string
}

func (m Member) Key() string {
	return "Y" + m.Inner.Key() + m.Field + ";"
}

func (m Member) GetDependencies(dep depgraph.Dependency) depgraph.Dependencies {
	return m.Inner.GetDependencies(dep.WithState(depgraph.Complete))
}

func (m Member) ReferencedTypes() []Type {
	return append([]Type{m}, m.Inner.ReferencedTypes()...)
}
