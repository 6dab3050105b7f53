package typegraph

import (
	"strconv"

	"github.com/declgraph/declorder/internal/depgraph"
)

// Declared reifies "which declaration does this name point to". For any
// Declared type t with declaration d, t.GetDependencies(r) is exactly
// {(d, r)} — Declared has no other job.
type Declared struct {
	Decl DeclRef
}

// keyForDeclID formats the "D<id>" fingerprint used for declared types.
func keyForDeclID(id depgraph.DeclID) string {
	return "D" + strconv.FormatInt(int64(id), 10)
}

func (d Declared) Key() string {
	return keyForDeclID(d.Decl.ID())
}

func (d Declared) GetDependencies(dep depgraph.Dependency) depgraph.Dependencies {
	deps := depgraph.NewDependencies()
	deps.Add(d.Decl.ID(), dep)
	return deps
}

func (d Declared) ReferencedTypes() []Type { return []Type{d} }
