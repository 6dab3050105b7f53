package decltree

// Flags is a small bitset of declaration modifiers. Extern and Static are
// the minimum set; Template and Exported are added here because the
// resolver's handling of template constraints (contributing dependencies
// tagged Constraint) needs a way to tell a templated Class/Function apart
// from a plain one.
type Flags uint32

const (
	Extern Flags = 1 << iota
	Static
	Template
	Exported
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// With returns f with the given flags set, leaving f untouched.
func (f Flags) With(more Flags) Flags { return f | more }
