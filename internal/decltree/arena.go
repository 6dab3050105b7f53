package decltree

import (
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/typegraph"
)

// Arena owns every declaration built during one front-end run and hands out
// their stable integer identities. Dependencies maps are keyed by DeclID,
// and the resolver turns a DeclID back into its Declaration through the
// Arena's Lookup. Parent links and Declared types hold the Declaration
// value itself, so a cycle (A's member type points to B, B's points back
// to A) is an ordinary cycle of Go references.
type Arena struct {
	next  depgraph.DeclID
	decls map[depgraph.DeclID]Declaration
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{decls: make(map[depgraph.DeclID]Declaration)}
}

func (a *Arena) nextID() depgraph.DeclID {
	id := a.next
	a.next++
	return id
}

// Lookup returns the declaration registered under id, if any.
func (a *Arena) Lookup(id depgraph.DeclID) (Declaration, bool) {
	d, ok := a.decls[id]
	return d, ok
}

func (a *Arena) register(d Declaration) {
	a.decls[d.ID()] = d
}

// NewNamespace creates a Namespace declaration under parent (nil for a
// top-level namespace) and registers it in the arena.
func (a *Arena) NewNamespace(name string, parent Declaration) *Namespace {
	ns := &Namespace{base: base{id: a.nextID(), name: name, parent: parent}}
	a.register(ns)
	addChildIfTracked(parent, ns)
	return ns
}

// NewVariable creates a Variable declaration of type t under parent.
func (a *Arena) NewVariable(name string, t typegraph.Type, parent Declaration, flags Flags) *Variable {
	v := &Variable{base: base{id: a.nextID(), name: name, parent: parent, flags: flags}, Type: t}
	a.register(v)
	addChildIfTracked(parent, v)
	return v
}

// NewFunction creates a Function declaration under parent.
func (a *Arena) NewFunction(name string, returnType typegraph.Type, params []typegraph.Type, parent Declaration, flags Flags) *Function {
	f := &Function{
		base:       base{id: a.nextID(), name: name, parent: parent, flags: flags},
		ReturnType: returnType,
		Params:     params,
	}
	a.register(f)
	addChildIfTracked(parent, f)
	return f
}

// NewClass creates a Class declaration under parent.
func (a *Arena) NewClass(name string, parent Declaration, flags Flags) *Class {
	c := &Class{base: base{id: a.nextID(), name: name, parent: parent, flags: flags}}
	a.register(c)
	addChildIfTracked(parent, c)
	return c
}

// NewTypeAlias creates a TypeAlias declaration aliasing t under parent.
func (a *Arena) NewTypeAlias(name string, t typegraph.Type, parent Declaration) *TypeAlias {
	ta := &TypeAlias{base: base{id: a.nextID(), name: name, parent: parent}, Aliased: t}
	a.register(ta)
	addChildIfTracked(parent, ta)
	return ta
}

// childAdder is satisfied by every concrete kind through its embedded
// *base, whose addChild method is unexported but promoted.
type childAdder interface {
	addChild(Declaration)
}

// addChildIfTracked records child under parent's children slice. parent is
// typed as the Declaration interface (any concrete kind), so this dispatches
// through the embedded base rather than a type switch over all five
// concrete types.
func addChildIfTracked(parent Declaration, child Declaration) {
	if parent == nil {
		return
	}
	if adder, ok := parent.(childAdder); ok {
		adder.addChild(child)
	}
}
