package fixture

import (
	"fmt"

	"github.com/declgraph/declorder/internal/decltree"
	"github.com/declgraph/declorder/internal/depgraph"
	"github.com/declgraph/declorder/internal/resolver"
	"github.com/declgraph/declorder/internal/typegraph"
)

// Result is everything Build produces: the arena owning every declaration
// (also a resolver.DeclLookup), the resolved root targets, and a name index
// for callers (tests, cmd/declorderdump) that want to inspect a specific
// declaration afterward.
type Result struct {
	Arena   *decltree.Arena
	Targets []resolver.Target
	ByName  map[string]decltree.Declaration
}

var flagByName = map[string]decltree.Flags{
	"extern":   decltree.Extern,
	"static":   decltree.Static,
	"template": decltree.Template,
	"exported": decltree.Exported,
}

var visibilityByName = map[string]decltree.Visibility{
	"public":    decltree.Public,
	"protected": decltree.Protected,
	"private":   decltree.Private,
}

var stateByName = map[string]depgraph.State{
	"partial":  depgraph.Partial,
	"complete": depgraph.Complete,
}

func parseFlags(names []string) (decltree.Flags, error) {
	var f decltree.Flags
	for _, n := range names {
		v, ok := flagByName[n]
		if !ok {
			return 0, fmt.Errorf("fixture: unknown flag %q", n)
		}
		f = f.With(v)
	}
	return f, nil
}

func parseVisibility(name string) (decltree.Visibility, error) {
	if name == "" {
		return decltree.Public, nil
	}
	v, ok := visibilityByName[name]
	if !ok {
		return 0, fmt.Errorf("fixture: unknown visibility %q", name)
	}
	return v, nil
}

func parseState(name string) (depgraph.State, error) {
	v, ok := stateByName[name]
	if !ok {
		return 0, fmt.Errorf("fixture: unknown state %q", name)
	}
	return v, nil
}

// Build constructs the declaration tree and target list a Document
// describes.
//
// Building happens in three passes so declarations can reference each
// other regardless of YAML order, including mutual pointer cycles between
// two classes:
//
//  1. every namespace and class is created (no type-bearing fields yet, so
//     no forward-reference problem).
//  2. every variable, function, and type alias is created, with their
//     type-bearing fields resolved against the names known so far (phase 1
//     plus earlier phase-2 entries).
//  3. every class's bases, members, and constraints are filled in, which
//     may now reference anything built in phases 1 or 2.
//
// A variable/function/typealias that needs to reference another
// variable/function/typealias defined later in the document is the one
// pattern this does not support — fixtures needing that should reorder
// their declarations, the same way a human author would in the target
// language.
func Build(doc *Document) (*Result, error) {
	arena := decltree.NewArena()
	reg := typegraph.NewRegistry()
	byName := make(map[string]decltree.Declaration, len(doc.Declarations))
	refByName := make(map[string]typegraph.DeclRef, len(doc.Declarations))

	resolveParent := func(declName, name string) (decltree.Declaration, error) {
		if name == "" {
			return nil, nil
		}
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("fixture: declaration %q: unknown parent %q", declName, name)
		}
		return p, nil
	}

	// Phase 1: namespaces and classes.
	for _, spec := range doc.Declarations {
		if spec.Kind != "namespace" && spec.Kind != "class" {
			continue
		}
		parent, err := resolveParent(spec.Name, spec.Parent)
		if err != nil {
			return nil, err
		}
		flags, err := parseFlags(spec.Flags)
		if err != nil {
			return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
		}

		var d decltree.Declaration
		switch spec.Kind {
		case "namespace":
			d = arena.NewNamespace(spec.Name, parent)
		case "class":
			d = arena.NewClass(spec.Name, parent, flags)
		}
		byName[spec.Name] = d
		refByName[spec.Name] = d
	}

	// Phase 2: variables, functions, type aliases.
	for _, spec := range doc.Declarations {
		if spec.Kind != "variable" && spec.Kind != "function" && spec.Kind != "typealias" {
			continue
		}
		parent, err := resolveParent(spec.Name, spec.Parent)
		if err != nil {
			return nil, err
		}
		flags, err := parseFlags(spec.Flags)
		if err != nil {
			return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
		}

		var d decltree.Declaration
		switch spec.Kind {
		case "variable":
			t, err := spec.Type.resolve(reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
			}
			d = arena.NewVariable(spec.Name, t, parent, flags)

		case "function":
			ret, err := spec.Return.resolve(reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
			}
			params, err := resolveAll(spec.Params, reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
			}
			f := arena.NewFunction(spec.Name, ret, params, parent, flags)
			if len(spec.Constraints) > 0 {
				cons, err := resolveAll(spec.Constraints, reg, refByName)
				if err != nil {
					return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
				}
				f.Constraints = cons
			}
			d = f

		case "typealias":
			t, err := spec.Aliased.resolve(reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
			}
			d = arena.NewTypeAlias(spec.Name, t, parent)
		}
		byName[spec.Name] = d
		refByName[spec.Name] = d
	}

	// Phase 3: class bodies.
	for _, spec := range doc.Declarations {
		if spec.Kind != "class" {
			continue
		}
		c, ok := byName[spec.Name].(*decltree.Class)
		if !ok {
			return nil, fmt.Errorf("fixture: declaration %q: not a class", spec.Name)
		}

		bases, err := resolveAll(spec.Bases, reg, refByName)
		if err != nil {
			return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
		}
		for _, b := range bases {
			c.AddBase(b)
		}

		for _, m := range spec.Members {
			mt, err := m.Type.resolve(reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q member %q: %w", spec.Name, m.Name, err)
			}
			vis, err := parseVisibility(m.Visibility)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q member %q: %w", spec.Name, m.Name, err)
			}
			c.AddMember(m.Name, mt, vis)
		}

		if len(spec.Constraints) > 0 {
			cons, err := resolveAll(spec.Constraints, reg, refByName)
			if err != nil {
				return nil, fmt.Errorf("fixture: declaration %q: %w", spec.Name, err)
			}
			c.Constraints = cons
		}
	}

	targets := make([]resolver.Target, 0, len(doc.Targets))
	for _, t := range doc.Targets {
		d, ok := byName[t.Name]
		if !ok {
			return nil, fmt.Errorf("fixture: target %q: unknown declaration", t.Name)
		}
		s, err := parseState(t.State)
		if err != nil {
			return nil, fmt.Errorf("fixture: target %q: %w", t.Name, err)
		}
		targets = append(targets, resolver.Target{Decl: d, State: s})
	}

	return &Result{Arena: arena, Targets: targets, ByName: byName}, nil
}
