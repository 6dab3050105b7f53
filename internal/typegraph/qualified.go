package typegraph

import "github.com/declgraph/declorder/internal/depgraph"

// Qualified wraps an inner type with a pointer/reference qualifier. All
// four qualifiers are pointer-like: the pointee is only ever demanded at
// Partial, since a declaration naming `T*` or `T&` carries a pointer/sig,
// not T's body.
type Qualified struct {
	Inner     Type
	Qualifier Qualifier
}

// qualifierLetter is the single-character tag used in a Qualified type's
// key, following the same "tag + child keys" shape every other variant
// uses for its Key().
func qualifierLetter(q Qualifier) byte {
	switch q {
	case Pointer:
		return 'P'
	case Reference:
		return 'R'
	case ConstPointer:
		return 'p'
	case ConstReference:
		return 'r'
	default:
		return '?'
	}
}

func (q Qualified) Key() string {
	return "Q" + string(qualifierLetter(q.Qualifier)) + q.Inner.Key()
}

func (q Qualified) GetDependencies(dep depgraph.Dependency) depgraph.Dependencies {
	return q.Inner.GetDependencies(dep.WithState(depgraph.Partial))
}

func (q Qualified) ReferencedTypes() []Type {
	return append([]Type{q}, q.Inner.ReferencedTypes()...)
}
