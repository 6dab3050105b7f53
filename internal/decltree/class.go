package decltree

import (
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/typegraph"
)

// Visibility is the member access specifier passed to AddMember. It carries
// no resolution meaning of its own — the writer decides how to render it —
// but declarations keep it because emit implementations need it alongside
// the member's type and name.
type Visibility int

const (
	Public Visibility = iota
	Protected
	Private
)

// Member is one field or method signature of a Class.
type Member struct {
	Name       string
	Type       typegraph.Type
	Visibility Visibility
}

// Class maxes out at Complete: unlike Variable/Function, a class has a
// genuine forward-declared form (Partial: name+kind only) distinct from its
// full definition (Complete: bases + members laid out).
type Class struct {
	base
	Bases       []typegraph.Type
	Members     []Member
	Constraints []typegraph.Type
}

func (c *Class) MaxState() depgraph.State { return depgraph.Complete }

// AddBase appends a base class type.
func (c *Class) AddBase(t typegraph.Type) { c.Bases = append(c.Bases, t) }

// AddMember appends a member with the given visibility.
func (c *Class) AddMember(name string, t typegraph.Type, vis Visibility) {
	c.Members = append(c.Members, Member{Name: name, Type: t, Visibility: vis})
}

// GetDependencies implements the Class rule: at Partial, a class needs
// nothing else (a forward declaration is self-contained). At Complete,
// base classes are demanded at Complete (tagged BaseClass) and each
// member's type computes its own dependencies as if asked for Complete — a
// Qualified member type softens that down to Partial on its own, exactly as
// it would for any other consumer of the type graph.
func (c *Class) GetDependencies(s depgraph.State) depgraph.Dependencies {
	deps := depgraph.NewDependencies()
	if s != depgraph.Complete {
		return deps
	}

	for _, b := range c.Bases {
		if b == nil {
			continue
		}
		deps.Merge(b.GetDependencies(depgraph.Dependency{
			State:        depgraph.Complete,
			ReasonDeclID: c.id,
			Kind:         depgraph.BaseClass,
		}))
	}

	for _, m := range c.Members {
		if m.Type == nil {
			continue
		}
		deps.Merge(m.Type.GetDependencies(depgraph.Dependency{
			State:        depgraph.Complete,
			ReasonDeclID: c.id,
			Kind:         depgraph.Member,
		}))
	}

	if c.Flags().Has(Template) {
		for _, con := range c.Constraints {
			if con == nil {
				continue
			}
			deps.Merge(con.GetDependencies(depgraph.Dependency{
				State:        depgraph.Complete,
				ReasonDeclID: c.id,
				Kind:         depgraph.Constraint,
			}))
		}
	}

	return deps
}
