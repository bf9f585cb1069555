package ir

// Terminator is an Instruction that ends a BasicBlock: it has side
// effects by definition (it transfers control) and must report whether
// control leaves the function entirely (spec §3 "TerminatorInstruction").
type Terminator interface {
	Instruction
	// Exits reports whether this terminator returns from the function.
	Exits() bool
}

// terminatorBase gives every concrete terminator HasSideEffects()==true
// and IsTerminator()==true; Exits is supplied by each concrete subtype,
// since the bare base has no well-defined answer (spec: calling Exits on
// an abstract terminator fails with NOT-IMPLEMENTED — here that is
// simply never constructible, since terminatorBase is never registered
// as an instruction on its own).
type terminatorBase struct {
	instructionBase
}

func (t *terminatorBase) HasSideEffects() bool { return true }
func (t *terminatorBase) IsTerminator() bool   { return true }

var (
	branchSyntax, _     = NewSyntax(Operand("target", Label))
	condBranchSyntax, _ = NewSyntax(Operand("cond", nil), Operand("then", Label), Operand("else", Label))
	returnSyntax, _      = NewSyntax()
	returnValueSyntax, _ = NewSyntax(Operand("value", nil))
)

// BranchInsn is an unconditional jump to a single successor block. It
// never exits the function (spec §3).
type BranchInsn struct {
	terminatorBase
}

// NewBranch constructs a branch to target, validated against
// branchSyntax.
func NewBranch(fn *Function, target *BasicBlock) (*BranchInsn, error) {
	if err := branchSyntax.Validate([]Value{target}); err != nil {
		return nil, err
	}
	b := &BranchInsn{}
	b.setSelf(b)
	b.name = fn.reserveName("")
	b.fn = fn
	b.SetOperands([]Value{target})
	emitUpdateInstruction(fn, b)
	return b, nil
}

func (b *BranchInsn) Opcode() string { return opcodeOf(b) }
func (b *BranchInsn) Exits() bool    { return false }

// Target returns the branch's single successor.
func (b *BranchInsn) Target() *BasicBlock {
	return b.Operands()[0].(*BasicBlock)
}

// SetTarget rewrites the branch's successor.
func (b *BranchInsn) SetTarget(target *BasicBlock) {
	b.SetOperands([]Value{target})
}

// CondBranchInsn jumps to Then if Cond is truthy, Else otherwise. Neither
// arm exits the function.
type CondBranchInsn struct {
	terminatorBase
}

// NewCondBranch constructs a conditional branch, validated against
// condBranchSyntax.
func NewCondBranch(fn *Function, cond Value, then, els *BasicBlock) (*CondBranchInsn, error) {
	if err := condBranchSyntax.Validate([]Value{cond, then, els}); err != nil {
		return nil, err
	}
	c := &CondBranchInsn{}
	c.setSelf(c)
	c.name = fn.reserveName("")
	c.fn = fn
	c.SetOperands([]Value{cond, then, els})
	emitUpdateInstruction(fn, c)
	return c, nil
}

func (c *CondBranchInsn) Opcode() string { return opcodeOf(c) }
func (c *CondBranchInsn) Exits() bool    { return false }

func (c *CondBranchInsn) Cond() Value        { return c.Operands()[0] }
func (c *CondBranchInsn) Then() *BasicBlock  { return c.Operands()[1].(*BasicBlock) }
func (c *CondBranchInsn) Else() *BasicBlock  { return c.Operands()[2].(*BasicBlock) }

// ReturnInsn returns from the function with no value.
type ReturnInsn struct {
	terminatorBase
}

// NewReturn constructs a bare return.
func NewReturn(fn *Function) (*ReturnInsn, error) {
	if err := returnSyntax.Validate(nil); err != nil {
		return nil, err
	}
	r := &ReturnInsn{}
	r.setSelf(r)
	r.name = fn.reserveName("")
	r.fn = fn
	emitUpdateInstruction(fn, r)
	return r, nil
}

func (r *ReturnInsn) Opcode() string { return opcodeOf(r) }
func (r *ReturnInsn) Exits() bool    { return true }

// ReturnValueInsn returns value from the function.
type ReturnValueInsn struct {
	terminatorBase
}

// NewReturnValue constructs a return of a single value.
func NewReturnValue(fn *Function, value Value) (*ReturnValueInsn, error) {
	if err := returnValueSyntax.Validate([]Value{value}); err != nil {
		return nil, err
	}
	r := &ReturnValueInsn{}
	r.setSelf(r)
	r.name = fn.reserveName("")
	r.fn = fn
	r.SetOperands([]Value{value})
	emitUpdateInstruction(fn, r)
	return r, nil
}

func (r *ReturnValueInsn) Opcode() string { return opcodeOf(r) }
func (r *ReturnValueInsn) Exits() bool    { return true }

// Value returns the returned operand.
func (r *ReturnValueInsn) Value() Value { return r.Operands()[0] }
