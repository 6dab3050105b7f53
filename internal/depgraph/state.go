// Package depgraph holds the small value types shared by the type graph and
// the declaration tree: the two-valued completeness order, the reason a
// dependency was demanded, and the max-merge map that aggregates demands.
package depgraph

// State is the completeness of a declaration at a use site.
//
// Partial means the name and kind are visible (a forward declaration
// suffices); Complete means the body/members are visible. The zero value
// is Partial, so an unresolved declaration's default state compares as the
// weakest one.
type State int

const (
	Partial State = iota
	Complete
)

func (s State) String() string {
	if s == Complete {
		return "Complete"
	}
	return "Partial"
}

// Max returns the stronger of the two states.
func (s State) Max(other State) State {
	if other > s {
		return other
	}
	return s
}

// ReasonKind names why one declaration demands another.
type ReasonKind int

const (
	Root ReasonKind = iota
	BaseClass
	VariableType
	ReturnType
	ParameterType
	TypeAliasType
	Constraint
	Inner
	Member
)

func (k ReasonKind) String() string {
	switch k {
	case Root:
		return "Root"
	case BaseClass:
		return "BaseClass"
	case VariableType:
		return "VariableType"
	case ReturnType:
		return "ReturnType"
	case ParameterType:
		return "ParameterType"
	case TypeAliasType:
		return "TypeAliasType"
	case Constraint:
		return "Constraint"
	case Inner:
		return "Inner"
	case Member:
		return "Member"
	default:
		return "Unknown"
	}
}
