package typegraph

import (
	"sort"
	"strings"

	"github.com/declgraph/declorder/internal/depgraph"
)

// CompoundKind distinguishes the two boolean connectives a Compound
// expression can carry.
type CompoundKind int

const (
	And CompoundKind = iota
	Or
)

func (k CompoundKind) String() string {
	if k == Or {
		return "Or"
	}
	return "And"
}

// Compound is a logical-AND / logical-OR expression over boolean-valued
// type expressions, used as a template constraint. Its dependencies are the
// flat union of its children's.
type Compound struct {
	Kind     CompoundKind
	Children []Type
}

func (c Compound) Key() string {
	var b strings.Builder
	if c.Kind == Or {
		b.WriteByte('|')
	} else {
		b.WriteByte('&')
	}
	for _, ch := range c.Children {
		b.WriteString(ch.Key())
	}
	b.WriteByte(';')
	return b.String()
}

func (c Compound) GetDependencies(dep depgraph.Dependency) depgraph.Dependencies {
	deps := depgraph.NewDependencies()
	for _, ch := range c.Children {
		deps.Merge(ch.GetDependencies(dep))
	}
	return deps
}

func (c Compound) ReferencedTypes() []Type {
	refs := []Type{c}
	for _, ch := range c.Children {
		refs = append(refs, ch.ReferencedTypes()...)
	}
	return refs
}

// IsAlwaysTrue folds the algebraic identities a boolean constraint
// expression must satisfy: an empty And is always-true, an empty Or is
// always-false, and a Literal ellipsis child ("...") is treated as
// always-true. The fold is recursive through nested Compounds of either
// kind.
func (c Compound) IsAlwaysTrue() bool {
	switch c.Kind {
	case And:
		for _, ch := range c.Children {
			if !childIsAlwaysTrue(ch) {
				return false
			}
		}
		return true
	case Or:
		if len(c.Children) == 0 {
			return false
		}
		for _, ch := range c.Children {
			if childIsAlwaysTrue(ch) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func childIsAlwaysTrue(t Type) bool {
	switch v := t.(type) {
	case Compound:
		return v.IsAlwaysTrue()
	case Literal:
		return v.isEllipsis()
	default:
		return false
	}
}

// Combine flattens same-kind nesting: an And containing And children (or an
// Or containing Or children) is rewritten so those grandchildren become
// direct children. Compound has no String or write method of its own;
// parenthesization, including leaving a single child unwrapped, is left to
// the external writer.
func Combine(kind CompoundKind, parts ...Type) Compound {
	flat := make([]Type, 0, len(parts))
	for _, p := range parts {
		if sub, ok := p.(Compound); ok && sub.Kind == kind {
			flat = append(flat, sub.Children...)
			continue
		}
		flat = append(flat, p)
	}
	return Compound{Kind: kind, Children: flat}
}

// SortedKeys returns the children's Key() values sorted — used by tests
// that need a deterministic view of an unordered Compound construction.
func (c Compound) SortedKeys() []string {
	keys := make([]string, len(c.Children))
	for i, ch := range c.Children {
		keys[i] = ch.Key()
	}
	sort.Strings(keys)
	return keys
}
