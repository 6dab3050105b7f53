package depgraph

import "sort"

// DeclID is the stable integer identity of a declaration, assigned once by
// the arena that owns it (see internal/decltree). Dependencies maps are
// keyed by DeclID, and the resolver looks a DeclID up through the arena to
// get the declaration back.
type DeclID int64

// Dependency is a triple: the completeness demanded, the declaration on
// whose behalf the demand is made, and why. A Dependency value doubles as
// the parameter threaded through Type.GetDependencies as the reason for
// the recursion — recursing into a sub-type only ever changes the State
// field (via WithState), never ReasonDeclID or Kind.
type Dependency struct {
	State        State
	ReasonDeclID DeclID
	Kind         ReasonKind
}

// WithState returns a copy of d with its State replaced. Used when a type
// constructor demands a different completeness of its children than it was
// itself asked for (e.g. a pointer only needs its pointee at Partial).
func (d Dependency) WithState(s State) Dependency {
	d.State = s
	return d
}

// Dependencies maps a demanded declaration to the strongest Dependency
// recorded against it. Insertion follows a max-merge rule: if a
// declaration is already present, the surviving entry is whichever has the
// higher State.
type Dependencies map[DeclID]Dependency

// NewDependencies returns an empty Dependencies map.
func NewDependencies() Dependencies {
	return make(Dependencies)
}

// Add inserts (id, dep), keeping the existing entry if it already demands a
// state >= dep.State.
func (ds Dependencies) Add(id DeclID, dep Dependency) {
	if existing, ok := ds[id]; ok {
		if existing.State >= dep.State {
			return
		}
	}
	ds[id] = dep
}

// Merge folds other into ds in place, applying the max-merge rule per entry.
func (ds Dependencies) Merge(other Dependencies) {
	for id, dep := range other {
		ds.Add(id, dep)
	}
}

// IDs returns the keys of ds sorted for deterministic iteration. Sibling
// order among independent declarations is otherwise unspecified, so
// callers that need a stable order for tests or logs use this instead of
// ranging over the map directly.
func (ds Dependencies) IDs() []DeclID {
	ids := make([]DeclID, 0, len(ds))
	for id := range ds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
