package fixture

import (
	"fmt"

	"github.com/declgraph/declorder/internal/typegraph"
)

// TypeSpec is the YAML shape of a typegraph.Type: exactly one of its
// leaf/wrapper fields is set, one per typegraph.Type variant. A fixture
// author writes the same tree a front end would build with the constructor
// functions, just spelled as YAML instead of Go calls.
type TypeSpec struct {
	Named   string `yaml:"named,omitempty"`
	Ref     string `yaml:"ref,omitempty"`     // Declared(<name of another declaration>)
	Generic string `yaml:"generic,omitempty"` // unresolved template parameter name
	Literal string `yaml:"literal,omitempty"` // e.g. "...", a numeric literal token

	Qualifier string    `yaml:"qualifier,omitempty"` // pointer|reference|const_pointer|const_reference
	Of        *TypeSpec `yaml:"of,omitempty"`        // inner type of qualifier/member
	Field     string    `yaml:"field,omitempty"`     // member field name, paired with Of

	Return *TypeSpec   `yaml:"return,omitempty"`
	Params []*TypeSpec `yaml:"params,omitempty"`

	CompoundKind string      `yaml:"compound,omitempty"` // and|or
	Children     []*TypeSpec `yaml:"children,omitempty"`
}

var qualifierByName = map[string]typegraph.Qualifier{
	"pointer":         typegraph.Pointer,
	"reference":       typegraph.Reference,
	"const_pointer":   typegraph.ConstPointer,
	"const_reference": typegraph.ConstReference,
}

var compoundKindByName = map[string]typegraph.CompoundKind{
	"and": typegraph.And,
	"or":  typegraph.Or,
}

// resolve turns a TypeSpec into a typegraph.Type, looking up Ref names in
// byName (every declaration Build has created so far; which names that
// includes depends on the pass — see build.go). reg interns the result the
// way a real front end would.
func (t *TypeSpec) resolve(reg *typegraph.Registry, byName map[string]typegraph.DeclRef) (typegraph.Type, error) {
	if t == nil {
		return nil, nil
	}

	switch {
	case t.Named != "":
		return reg.Intern(typegraph.Named{Name: t.Named}), nil

	case t.Ref != "":
		decl, ok := byName[t.Ref]
		if !ok {
			return nil, fmt.Errorf("fixture: type references unknown declaration %q", t.Ref)
		}
		return reg.Intern(typegraph.Declared{Decl: decl}), nil

	case t.Generic != "":
		return reg.Intern(typegraph.Generic{Name: t.Generic}), nil

	case t.Literal != "":
		return reg.Intern(typegraph.Literal{Token: t.Literal}), nil

	case t.Qualifier != "":
		q, ok := qualifierByName[t.Qualifier]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown qualifier %q", t.Qualifier)
		}
		inner, err := t.Of.resolve(reg, byName)
		if err != nil {
			return nil, err
		}
		return reg.Intern(typegraph.Qualified{Inner: inner, Qualifier: q}), nil

	case t.Field != "":
		inner, err := t.Of.resolve(reg, byName)
		if err != nil {
			return nil, err
		}
		return reg.Intern(typegraph.Member{Inner: inner, Field: t.Field}), nil

	case t.Return != nil || len(t.Params) > 0:
		ret, err := t.Return.resolve(reg, byName)
		if err != nil {
			return nil, err
		}
		params := make([]typegraph.Type, len(t.Params))
		for i, p := range t.Params {
			pt, err := p.resolve(reg, byName)
			if err != nil {
				return nil, err
			}
			params[i] = pt
		}
		return reg.Intern(typegraph.Function{Return: ret, Params: params}), nil

	case t.CompoundKind != "":
		kind, ok := compoundKindByName[t.CompoundKind]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown compound kind %q", t.CompoundKind)
		}
		children := make([]typegraph.Type, len(t.Children))
		for i, c := range t.Children {
			ct, err := c.resolve(reg, byName)
			if err != nil {
				return nil, err
			}
			children[i] = ct
		}
		return reg.Intern(typegraph.Compound{Kind: kind, Children: children}), nil

	default:
		return nil, fmt.Errorf("fixture: empty type spec")
	}
}

// resolveAll resolves a slice of TypeSpecs, short-circuiting on the first
// error.
func resolveAll(specs []*TypeSpec, reg *typegraph.Registry, byName map[string]typegraph.DeclRef) ([]typegraph.Type, error) {
	out := make([]typegraph.Type, len(specs))
	for i, s := range specs {
		t, err := s.resolve(reg, byName)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
