package ir

// Factory is the signature of a function that builds one instruction for
// a registered opcode. Scope does not store Factories: it keeps an
// operand syntax and side-effect flag per opcode name and always builds a
// GenericInsn from them. A Builder resolves an opcode string through a
// Scope instead of Go dispatching on a method name, since Go has no
// runtime-undefined-method hook to repurpose (spec §4.6).
type Factory func(fn *Function, typ Type, operands []Value) (Instruction, error)

type opcodeDef struct {
	syntax      *Syntax
	sideEffects bool
}

// Scope is a chained registry of opcode definitions, mirroring the
// parent-delegating lookup of a lexical scope: an unresolved opcode
// walks up to Parent before failing (spec §4.6, grounded on the
// teacher's nested-scope symbol lookup).
type Scope struct {
	Parent *Scope
	defs   map[string]opcodeDef
}

// NewScope creates a scope chained to parent, which may be nil for a
// root scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, defs: make(map[string]opcodeDef)}
}

// Define registers opcode in this scope with the given operand syntax
// and side-effect flag. A definition in a child scope shadows one of the
// same name in a parent.
func (s *Scope) Define(opcode string, syntax *Syntax, sideEffects bool) {
	s.defs[opcode] = opcodeDef{syntax: syntax, sideEffects: sideEffects}
}

// Resolve looks up opcode in this scope, then its ancestors, returning
// false if no scope in the chain defines it.
func (s *Scope) Resolve(opcode string) (*Syntax, bool, bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if def, ok := sc.defs[opcode]; ok {
			return def.syntax, def.sideEffects, true
		}
	}
	return nil, false, false
}

// Build constructs a GenericInsn for opcode in fn, validated against
// whatever syntax this scope (or an ancestor) registered for it. It
// fails with ErrUnknownOpcode if no scope in the chain defines opcode.
func (s *Scope) Build(fn *Function, opcode string, typ Type, operands []Value) (Instruction, error) {
	syntax, sideEffects, ok := s.Resolve(opcode)
	if !ok {
		return nil, newError(UnknownOpcode, "scope has no definition for opcode %q", opcode)
	}
	return NewGenericInsn(fn, opcode, syntax, typ, sideEffects, operands)
}
