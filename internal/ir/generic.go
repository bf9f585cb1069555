package ir

// GenericInsn is a domain-specific instruction whose opcode is data
// rather than a Go type name: it exists so a Scope can register opcode
// strings — "add", "load", "call" — supplied at runtime by a caller
// building an IR for some concrete domain, without needing a dedicated
// Go type per opcode (spec §4.6's dynamic-dispatch opcode resolution,
// carried over as a registry of factories rather than method_missing,
// since Go has no equivalent hook; see DESIGN.md).
type GenericInsn struct {
	instructionBase
	opcode      string
	sideEffects bool
	syntax      *Syntax
}

// NewGenericInsn constructs an instruction for opcode, validating
// operands against syntax if one was registered for it. typ is the
// instruction's result type; sideEffects marks whether the instruction
// must be preserved even with no uses (e.g. a store or a call).
func NewGenericInsn(fn *Function, opcode string, syntax *Syntax, typ Type, sideEffects bool, operands []Value) (*GenericInsn, error) {
	if err := syntax.Validate(operands); err != nil {
		return nil, err
	}
	g := &GenericInsn{opcode: opcode, sideEffects: sideEffects, syntax: syntax}
	g.setSelf(g)
	g.name = fn.reserveName("")
	g.fn = fn
	g.SetType(typ)
	g.SetOperands(operands)
	emitUpdateInstruction(fn, g)
	return g, nil
}

func (g *GenericInsn) Opcode() string       { return g.opcode }
func (g *GenericInsn) HasSideEffects() bool { return g.sideEffects }

// Syntax returns the operand schema this instruction was validated
// against, or nil if it was built without one.
func (g *GenericInsn) Syntax() *Syntax { return g.syntax }
