// Package fixture loads YAML-described declaration graphs and resolver
// targets, the way internal/ext loads funxy.yaml — grounded on that same
// file for its ReadFile/Unmarshal/validate shape. It exists so the test
// suite and cmd/declorderdump can describe worked scenarios as data instead
// of hand-written Arena construction calls.
package fixture

// Document is the top-level YAML shape: a flat list of declarations (order
// doesn't express the dependency graph — references are by name, and can
// be cyclic) plus the list of root targets to resolve.
type Document struct {
	Declarations []DeclSpec  `yaml:"declarations"`
	Targets      []TargetSpec `yaml:"targets"`
}

// DeclSpec describes one declaration. Which fields apply depends on Kind:
//
//	namespace:  Name, Parent
//	class:      Name, Parent, Flags, Bases, Members, Constraints
//	variable:   Name, Parent, Flags, Type
//	function:   Name, Parent, Flags, Return, Params, Constraints
//	typealias:  Name, Parent, Aliased
type DeclSpec struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	Flags  []string `yaml:"flags,omitempty"`

	Type    *TypeSpec `yaml:"type,omitempty"`
	Aliased *TypeSpec `yaml:"aliased,omitempty"`

	Return *TypeSpec   `yaml:"return,omitempty"`
	Params []*TypeSpec `yaml:"params,omitempty"`

	Bases       []*TypeSpec `yaml:"bases,omitempty"`
	Members     []MemberSpec `yaml:"members,omitempty"`
	Constraints []*TypeSpec `yaml:"constraints,omitempty"`
}

// MemberSpec describes one class field or method signature.
type MemberSpec struct {
	Name       string    `yaml:"name"`
	Type       *TypeSpec `yaml:"type"`
	Visibility string    `yaml:"visibility,omitempty"` // public|protected|private, default public
}

// TargetSpec names a declaration and the completeness the resolver should
// reach for it.
type TargetSpec struct {
	Name  string `yaml:"name"`
	State string `yaml:"state"` // partial|complete
}
